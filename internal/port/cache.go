package port

import "textfreq/internal/domain"

// DocumentCache holds recently used documents and their decoded text.
type DocumentCache interface {
	Get(id string) (domain.Document, string, bool)
	Put(doc domain.Document, content string)
	Remove(id string)
}
