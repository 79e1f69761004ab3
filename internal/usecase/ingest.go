package usecase

import (
	"fmt"

	"go.uber.org/zap"
	"textfreq/internal/adapter/fs"
	"textfreq/internal/domain"
	"textfreq/internal/port"
)

// IngestResult contains the results of a batch ingest.
type IngestResult struct {
	FilesUploaded int
	FilesSkipped  int
	Documents     []domain.Document
	Errors        []string
}

// ProgressFunc is called after each file with the number processed so far.
type ProgressFunc func(processed, total int, currentFile string)

// Ingest uploads every file the walker finds under root. Files whose
// decoded content is already stored are skipped.
func (u *DocumentUseCase) Ingest(walker port.FileWalker, root string, progress ProgressFunc) (*IngestResult, error) {
	files, err := walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	result := &IngestResult{}
	for i, file := range files {
		if err := u.ingestFile(file, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to ingest %s: %v", file.Path, err))
		}
		if progress != nil {
			progress(i+1, len(files), file.Path)
		}
	}

	u.logger.Info("ingest finished",
		zap.String("root", root),
		zap.Int("uploaded", result.FilesUploaded),
		zap.Int("skipped", result.FilesSkipped),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

func (u *DocumentUseCase) ingestFile(file port.FileInfo, result *IngestResult) error {
	if limit := u.cfg.Analysis.MaxInputBytes; limit > 0 && file.Size > limit {
		return fmt.Errorf("%w: %d bytes (limit %d)", domain.ErrDocumentTooLarge, file.Size, limit)
	}

	text, encoding, err := fs.ReadFile(file.Path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if _, exists, err := u.store.FindByHash(contentHash(text)); err != nil {
		return err
	} else if exists {
		result.FilesSkipped++
		return nil
	}

	doc, err := u.storeText(file.Path, text, encoding, file.Size)
	if err != nil {
		return err
	}
	result.FilesUploaded++
	result.Documents = append(result.Documents, doc)
	return nil
}
