package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"textfreq/config"
	"textfreq/internal/adapter/fs"
	"textfreq/internal/domain"
	"textfreq/internal/port"
)

// DocumentUseCase stores uploaded documents and analyzes them on demand.
type DocumentUseCase struct {
	store    port.DocumentStore
	analyzer *AnalyzeUseCase
	cfg      *config.Config
	logger   *zap.Logger
	cache    port.DocumentCache
	now      func() time.Time
}

// NewDocumentUseCase creates a new document use case.
func NewDocumentUseCase(
	store port.DocumentStore,
	analyzer *AnalyzeUseCase,
	cfg *config.Config,
	logger *zap.Logger,
) *DocumentUseCase {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentUseCase{
		store:    store,
		analyzer: analyzer,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// SetCache keeps recently uploaded or loaded documents in memory so repeated
// requests for the same id skip the store. Analysis results are never cached.
func (u *DocumentUseCase) SetCache(cache port.DocumentCache) {
	u.cache = cache
}

// Upload decodes data, rejecting empty or oversized payloads, and stores
// it as a new document.
func (u *DocumentUseCase) Upload(name string, data []byte) (domain.Document, error) {
	if limit := u.cfg.Analysis.MaxInputBytes; limit > 0 && int64(len(data)) > limit {
		return domain.Document{}, fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrDocumentTooLarge, len(data), limit)
	}

	text, encoding := fs.DecodeText(data)
	return u.storeText(name, text, encoding, int64(len(data)))
}

// storeText stores decoded text as a new document. size is the byte size of
// the raw payload.
func (u *DocumentUseCase) storeText(name, text, encoding string, size int64) (domain.Document, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Document{}, domain.ErrEmptyDocument
	}

	doc := domain.Document{
		ID:         uuid.NewString(),
		Name:       filepath.Base(name),
		UploadedAt: u.now(),
		Size:       size,
		Encoding:   encoding,
		Hash:       contentHash(text),
	}
	if err := u.store.PutDocument(doc, text); err != nil {
		return domain.Document{}, fmt.Errorf("failed to store document: %w", err)
	}
	if u.cache != nil {
		u.cache.Put(doc, text)
	}

	u.logger.Info("document uploaded",
		zap.String("id", doc.ID),
		zap.String("name", doc.Name),
		zap.Int64("size", doc.Size),
		zap.String("encoding", encoding),
	)
	return doc, nil
}

func (u *DocumentUseCase) List() ([]domain.Document, error) {
	return u.store.ListDocuments()
}

func (u *DocumentUseCase) Get(id string) (domain.Document, error) {
	return u.store.GetDocument(id)
}

// Content returns the decoded text of a document.
func (u *DocumentUseCase) Content(id string) (string, error) {
	return u.store.GetContent(id)
}

func (u *DocumentUseCase) Delete(id string) error {
	if u.cache != nil {
		u.cache.Remove(id)
	}
	if err := u.store.DeleteDocument(id); err != nil {
		return err
	}
	u.logger.Info("document deleted", zap.String("id", id))
	return nil
}

// Analyze clamps n to the configured range and analyzes the document.
func (u *DocumentUseCase) Analyze(id string, n int) (domain.Document, domain.ProcessingResult, error) {
	doc, text, err := u.load(id)
	if err != nil {
		return domain.Document{}, domain.ProcessingResult{}, err
	}

	start := time.Now()
	n = u.cfg.ClampNGram(n)
	result := u.analyzer.Analyze(text, n)

	u.logger.Debug("document analyzed",
		zap.String("id", id),
		zap.Int("ngram", n),
		zap.Int("filtered_tokens", result.TotalFilteredTokens),
		zap.Duration("elapsed", time.Since(start)),
	)
	return doc, result, nil
}

// Compare analyzes the document once per size. Sizes are clamped; an
// empty list uses the configured comparison sizes.
func (u *DocumentUseCase) Compare(id string, sizes []int) (domain.Document, []domain.ProcessingResult, error) {
	doc, text, err := u.load(id)
	if err != nil {
		return domain.Document{}, nil, err
	}
	return doc, u.analyzer.Compare(text, u.ClampSizes(sizes)), nil
}

// ClampSizes clamps every size to the configured range. An empty list
// yields the configured comparison sizes.
func (u *DocumentUseCase) ClampSizes(sizes []int) []int {
	if len(sizes) == 0 {
		sizes = u.cfg.Analysis.CompareSizes
	}
	clamped := make([]int, len(sizes))
	for i, n := range sizes {
		clamped[i] = u.cfg.ClampNGram(n)
	}
	return clamped
}

// Process builds the processing report of a document.
func (u *DocumentUseCase) Process(id string) (domain.Document, domain.ProcessingReport, error) {
	doc, text, err := u.load(id)
	if err != nil {
		return domain.Document{}, domain.ProcessingReport{}, err
	}
	return doc, u.analyzer.Inspect(text), nil
}

func (u *DocumentUseCase) load(id string) (domain.Document, string, error) {
	if u.cache != nil {
		if doc, text, ok := u.cache.Get(id); ok {
			return doc, text, nil
		}
	}

	doc, err := u.store.GetDocument(id)
	if err != nil {
		return domain.Document{}, "", err
	}
	text, err := u.store.GetContent(id)
	if err != nil {
		return domain.Document{}, "", err
	}
	if u.cache != nil {
		u.cache.Put(doc, text)
	}
	return doc, text, nil
}

func contentHash(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:16])
}
