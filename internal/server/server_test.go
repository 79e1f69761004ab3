package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"textfreq/config"
	"textfreq/internal/adapter/analyzer"
	"textfreq/internal/adapter/memstore"
	"textfreq/internal/domain"
	"textfreq/internal/usecase"
)

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.Server.Debug = true

	tok := analyzer.NewTokenizer(nil)
	az := usecase.NewAnalyzeUseCase(tok, cfg.Analysis.TopK)
	docs := usecase.NewDocumentUseCase(memstore.NewMemoryStore(), az, cfg, zap.NewNop())
	return New(docs, az, tok.StopwordVersion(), cfg, zap.NewNop())
}

func uploadRequest(t *testing.T, name, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	part.Write([]byte(content))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/documents", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the envelope and its data into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) APIResponse {
	t.Helper()
	var raw struct {
		APIResponse
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid JSON response %q: %v", rec.Body.String(), err)
	}
	if out != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, out); err != nil {
			t.Fatalf("invalid data payload: %v", err)
		}
	}
	return raw.APIResponse
}

func upload(t *testing.T, s *Server, name, content string) domain.Document {
	t.Helper()
	rec := do(s, uploadRequest(t, name, content))
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var doc domain.Document
	decode(t, rec, &doc)
	return doc
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var health HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if health.Status != "ok" || health.StopwordSet == "" {
		t.Errorf("unexpected health response %+v", health)
	}
}

func TestUploadListGetDelete(t *testing.T) {
	s := newTestServer(t, nil)
	doc := upload(t, s, "cuento.txt", "El niño juega. El niño ríe.")
	if doc.ID == "" || doc.Name != "cuento.txt" {
		t.Fatalf("unexpected document %+v", doc)
	}

	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/documents", nil))
	var list []domain.Document
	decode(t, rec, &list)
	if rec.Code != http.StatusOK || len(list) != 1 || list[0].ID != doc.ID {
		t.Fatalf("list = %d %+v", rec.Code, list)
	}

	rec = do(s, httptest.NewRequest(http.MethodGet, "/api/documents/"+doc.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = do(s, httptest.NewRequest(http.MethodDelete, "/api/documents/"+doc.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}

	rec = do(s, httptest.NewRequest(http.MethodGet, "/api/documents/"+doc.ID, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestUploadErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Analysis.MaxInputBytes = 32
	s := newTestServer(t, cfg)

	tests := []struct {
		name   string
		req    *http.Request
		status int
	}{
		{"empty", uploadRequest(t, "vacio.txt", "  \n "), http.StatusBadRequest},
		{"too large", uploadRequest(t, "grande.txt", strings.Repeat("palabra ", 10)), http.StatusRequestEntityTooLarge},
		{"missing file", httptest.NewRequest(http.MethodPost, "/api/documents", nil), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(s, tt.req)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
			if resp := decode(t, rec, nil); resp.Success || resp.Error == "" {
				t.Errorf("expected error envelope, got %+v", resp)
			}
		})
	}
}

func TestAnalyzeDocument(t *testing.T) {
	s := newTestServer(t, nil)
	doc := upload(t, s, "gatos.txt", "el gato negro y el gato blanco; el gato negro duerme")

	tests := []struct {
		name  string
		path  string
		wantN int
	}{
		{"default", "/api/documents/" + doc.ID + "/analyze", 1},
		{"query", "/api/documents/" + doc.ID + "/analyze?n_grama=2", 2},
		{"invalid query", "/api/documents/" + doc.ID + "/analyze?n_grama=abc", 1},
		{"clamped", "/api/documents/" + doc.ID + "/analyze?n_grama=0", 1},
		{"path", "/api/documents/" + doc.ID + "/analyze/3", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(s, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			var resp AnalysisResponse
			decode(t, rec, &resp)
			if resp.Result.NGramSize != tt.wantN {
				t.Errorf("n = %d, want %d", resp.Result.NGramSize, tt.wantN)
			}
			if len(resp.Result.TopUnigrams) == 0 || resp.Result.TopUnigrams[0] != (domain.FrequencyEntry{Item: "gato", Count: 3}) {
				t.Errorf("top unigram = %+v, want gato:3", resp.Result.TopUnigrams)
			}
			if resp.Document.ID != doc.ID {
				t.Errorf("document id = %q", resp.Document.ID)
			}
		})
	}

	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/documents/"+doc.ID+"/analyze?n_grama=2", nil))
	var resp AnalysisResponse
	decode(t, rec, &resp)
	if len(resp.Result.TopNGrams) == 0 || resp.Result.TopNGrams[0] != (domain.FrequencyEntry{Item: "gato negro", Count: 2}) {
		t.Errorf("top bigram = %+v, want gato negro:2", resp.Result.TopNGrams)
	}
}

func TestAnalyzeDocumentErrors(t *testing.T) {
	s := newTestServer(t, nil)
	doc := upload(t, s, "a.txt", "texto de prueba")

	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/documents/"+doc.ID+"/analyze/dos", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid path size status = %d, want 400", rec.Code)
	}

	rec = do(s, httptest.NewRequest(http.MethodGet, "/api/documents/missing/analyze", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing document status = %d, want 404", rec.Code)
	}
}

func TestProcessing(t *testing.T) {
	s := newTestServer(t, nil)
	doc := upload(t, s, "a.txt", "¡Hola! El pingüino come jamón.")

	rec := do(s, httptest.NewRequest(http.MethodGet, "/api/documents/"+doc.ID+"/processing", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp ProcessingResponse
	decode(t, rec, &resp)
	if resp.Report.ProcessedText != "hola pingüino come jamon" {
		t.Errorf("processed text = %q", resp.Report.ProcessedText)
	}
	if resp.Report.StopwordSetVersion == "" {
		t.Error("expected stopword set version")
	}
}

func TestAnalyzeText(t *testing.T) {
	s := newTestServer(t, nil)

	body := `{"text": "sol y luna, sol y mar", "n": 2}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := do(s, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result domain.ProcessingResult
	decode(t, rec, &result)
	if result.NGramSize != 2 {
		t.Errorf("n = %d, want 2", result.NGramSize)
	}
	want := []domain.FrequencyEntry{{Item: "sol", Count: 2}, {Item: "luna", Count: 1}, {Item: "mar", Count: 1}}
	if len(result.TopUnigrams) != len(want) {
		t.Fatalf("unigrams = %+v", result.TopUnigrams)
	}
	for i := range want {
		if result.TopUnigrams[i] != want[i] {
			t.Errorf("unigram[%d] = %+v, want %+v", i, result.TopUnigrams[i], want[i])
		}
	}

	req = httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"n": 2}`))
	req.Header.Set("Content-Type", "application/json")
	if rec := do(s, req); rec.Code != http.StatusBadRequest {
		t.Errorf("missing text status = %d, want 400", rec.Code)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrDocumentNotFound, http.StatusNotFound},
		{domain.ErrEmptyDocument, http.StatusBadRequest},
		{domain.ErrDocumentTooLarge, http.StatusRequestEntityTooLarge},
		{bytes.ErrTooLarge, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
