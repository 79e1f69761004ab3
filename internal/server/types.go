package server

import (
	"time"

	"textfreq/internal/domain"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AnalyzeTextRequest is the body of POST /api/analyze.
type AnalyzeTextRequest struct {
	Text string `json:"text" binding:"required"`
	N    int    `json:"n"`
}

// AnalysisResponse pairs a document with its analysis.
type AnalysisResponse struct {
	Document domain.Document         `json:"document"`
	Result   domain.ProcessingResult `json:"result"`
}

// ProcessingResponse pairs a document with its processing report.
type ProcessingResponse struct {
	Document domain.Document         `json:"document"`
	Report   domain.ProcessingReport `json:"report"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status      string    `json:"status"`
	StopwordSet string    `json:"stopword_set"`
	Timestamp   time.Time `json:"timestamp"`
	Uptime      string    `json:"uptime"`
}
