package memstore

import (
	"fmt"
	"sort"
	"sync"

	"textfreq/internal/domain"
)

type MemoryStore struct {
	mu       sync.RWMutex
	docs     map[string]domain.Document
	contents map[string]string
	hashes   map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:     make(map[string]domain.Document),
		contents: make(map[string]string),
		hashes:   make(map[string]string),
	}
}

func (s *MemoryStore) PutDocument(doc domain.Document, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.docs[doc.ID]; ok && s.hashes[prev.Hash] == doc.ID {
		delete(s.hashes, prev.Hash)
	}
	s.docs[doc.ID] = doc
	s.contents[doc.ID] = content
	if doc.Hash != "" {
		s.hashes[doc.Hash] = doc.ID
	}
	return nil
}

func (s *MemoryStore) GetDocument(id string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
	}
	return doc, nil
}

func (s *MemoryStore) GetContent(id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.contents[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
	}
	return content, nil
}

func (s *MemoryStore) FindByHash(hash string) (domain.Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.hashes[hash]
	if !ok {
		return domain.Document{}, false, nil
	}
	return s.docs[id], true, nil
}

func (s *MemoryStore) ListDocuments() ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		if docs[i].UploadedAt.Equal(docs[j].UploadedAt) {
			return docs[i].ID > docs[j].ID
		}
		return docs[i].UploadedAt.After(docs[j].UploadedAt)
	})
	return docs, nil
}

func (s *MemoryStore) DeleteDocument(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
	}
	if s.hashes[doc.Hash] == id {
		delete(s.hashes, doc.Hash)
	}
	delete(s.docs, id)
	delete(s.contents, id)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
