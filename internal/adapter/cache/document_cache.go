package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"textfreq/internal/domain"
)

const (
	defaultSize = 128
	defaultTTL  = 10 * time.Minute
)

type cachedDocument struct {
	doc     domain.Document
	content string
}

// DocumentCache is an LRU cache of stored documents and their decoded text,
// keyed by document id. Entries expire after ttl.
type DocumentCache struct {
	lru *expirable.LRU[string, cachedDocument]
}

func NewDocumentCache(maxSize int, ttl time.Duration) *DocumentCache {
	if maxSize <= 0 {
		maxSize = defaultSize
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &DocumentCache{
		lru: expirable.NewLRU[string, cachedDocument](maxSize, nil, ttl),
	}
}

func (c *DocumentCache) Get(id string) (domain.Document, string, bool) {
	entry, ok := c.lru.Get(id)
	if !ok {
		return domain.Document{}, "", false
	}
	return entry.doc, entry.content, true
}

func (c *DocumentCache) Put(doc domain.Document, content string) {
	c.lru.Add(doc.ID, cachedDocument{doc: doc, content: content})
}

func (c *DocumentCache) Remove(id string) {
	c.lru.Remove(id)
}

// Purge drops every entry.
func (c *DocumentCache) Purge() {
	c.lru.Purge()
}

func (c *DocumentCache) Size() int {
	return c.lru.Len()
}
