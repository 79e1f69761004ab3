package port

import "textfreq/internal/domain"

// DocumentStore persists uploaded documents and their decoded text.
type DocumentStore interface {
	PutDocument(doc domain.Document, content string) error

	// GetDocument returns domain.ErrDocumentNotFound for unknown ids.
	GetDocument(id string) (domain.Document, error)

	GetContent(id string) (string, error)

	FindByHash(hash string) (domain.Document, bool, error)

	// ListDocuments returns documents newest first.
	ListDocuments() ([]domain.Document, error)

	DeleteDocument(id string) error

	Close() error
}
