package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"textfreq/internal/domain"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyDocument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDocumentTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.JSON(status, APIResponse{Success: false, Error: err.Error()})
}

func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, APIResponse{Success: true, Data: data})
}

// ngramQuery reads the n_grama query parameter. Missing values select the
// configured default; unparsable values fall back to 1.
func (s *Server) ngramQuery(c *gin.Context) int {
	raw, ok := c.GetQuery("n_grama")
	if !ok {
		return s.cfg.Analysis.DefaultNGram
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "ok",
		StopwordSet: s.stopwords,
		Timestamp:   time.Now(),
		Uptime:      time.Since(s.startTime).String(),
	})
}

func (s *Server) handleUpload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("missing file field: %w", err))
		return
	}
	if limit := s.cfg.Analysis.MaxInputBytes; limit > 0 && header.Size > limit {
		respondError(c, http.StatusRequestEntityTooLarge,
			fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrDocumentTooLarge, header.Size, limit))
		return
	}

	f, err := header.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	doc, err := s.docs.Upload(header.Filename, data)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}
	respondOK(c, http.StatusCreated, doc)
}

func (s *Server) handleList(c *gin.Context) {
	docs, err := s.docs.List()
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	respondOK(c, http.StatusOK, docs)
}

func (s *Server) handleGet(c *gin.Context) {
	doc, err := s.docs.Get(c.Param("id"))
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}
	respondOK(c, http.StatusOK, doc)
}

func (s *Server) handleDelete(c *gin.Context) {
	if err := s.docs.Delete(c.Param("id")); err != nil {
		respondError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: "document deleted"})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	s.analyzeDocument(c, s.ngramQuery(c))
}

func (s *Server) handleAnalyzeSize(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("invalid n-gram size %q", c.Param("n")))
		return
	}
	s.analyzeDocument(c, n)
}

func (s *Server) analyzeDocument(c *gin.Context, n int) {
	doc, result, err := s.docs.Analyze(c.Param("id"), n)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}
	respondOK(c, http.StatusOK, AnalysisResponse{Document: doc, Result: result})
}

func (s *Server) handleProcessing(c *gin.Context) {
	doc, report, err := s.docs.Process(c.Param("id"))
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}
	respondOK(c, http.StatusOK, ProcessingResponse{Document: doc, Report: report})
}

func (s *Server) handleAnalyzeText(c *gin.Context) {
	var req AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}
	if limit := s.cfg.Analysis.MaxInputBytes; limit > 0 && int64(len(req.Text)) > limit {
		respondError(c, http.StatusRequestEntityTooLarge,
			fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrDocumentTooLarge, len(req.Text), limit))
		return
	}

	n := req.N
	if n == 0 {
		n = s.cfg.Analysis.DefaultNGram
	}
	respondOK(c, http.StatusOK, s.analyzer.Analyze(req.Text, s.cfg.ClampNGram(n)))
}
