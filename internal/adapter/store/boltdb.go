package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"textfreq/internal/domain"
)

var (
	bucketDocs     = []byte("docs")
	bucketContents = []byte("contents")
	bucketUploads  = []byte("uploads")
	bucketHashes   = []byte("hashes")
	bucketMeta     = []byte("meta")
)

type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		buckets := [][]byte{bucketDocs, bucketContents, bucketUploads, bucketHashes, bucketMeta}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

type docMeta struct {
	Name       string `json:"name"`
	UploadedAt int64  `json:"uploaded_at"`
	Size       int64  `json:"size"`
	Encoding   string `json:"encoding"`
	Hash       string `json:"hash"`
}

func (m docMeta) toDocument(id string) domain.Document {
	return domain.Document{
		ID:         id,
		Name:       m.Name,
		UploadedAt: time.Unix(0, m.UploadedAt),
		Size:       m.Size,
		Encoding:   m.Encoding,
		Hash:       m.Hash,
	}
}

// uploadKey orders the uploads index by time, then id.
func uploadKey(uploadedAt int64, id string) []byte {
	key := make([]byte, 8, 8+len(id))
	binary.BigEndian.PutUint64(key, uint64(uploadedAt))
	return append(key, id...)
}

func (s *BoltStore) PutDocument(doc domain.Document, content string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := docMeta{
			Name:       doc.Name,
			UploadedAt: doc.UploadedAt.UnixNano(),
			Size:       doc.Size,
			Encoding:   doc.Encoding,
			Hash:       doc.Hash,
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}

		docs := tx.Bucket(bucketDocs)
		if prev := docs.Get([]byte(doc.ID)); prev != nil {
			if err := removeIndexes(tx, doc.ID, prev); err != nil {
				return err
			}
		}
		if err := docs.Put([]byte(doc.ID), data); err != nil {
			return err
		}
		if err := tx.Bucket(bucketContents).Put([]byte(doc.ID), []byte(content)); err != nil {
			return err
		}
		if err := tx.Bucket(bucketUploads).Put(uploadKey(meta.UploadedAt, doc.ID), []byte(doc.ID)); err != nil {
			return err
		}
		if meta.Hash != "" {
			return tx.Bucket(bucketHashes).Put([]byte(meta.Hash), []byte(doc.ID))
		}
		return nil
	})
}

func (s *BoltStore) GetDocument(id string) (domain.Document, error) {
	var doc domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
		}
		var meta docMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		doc = meta.toDocument(id)
		return nil
	})
	return doc, err
}

func (s *BoltStore) GetContent(id string) (string, error) {
	var content string
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketContents).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
		}
		content = string(data)
		return nil
	})
	return content, err
}

func (s *BoltStore) FindByHash(hash string) (domain.Document, bool, error) {
	var id []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketHashes).Get([]byte(hash)); v != nil {
			id = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || id == nil {
		return domain.Document{}, false, err
	}
	doc, err := s.GetDocument(string(id))
	if err != nil {
		return domain.Document{}, false, err
	}
	return doc, true, nil
}

func (s *BoltStore) ListDocuments() ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		docBucket := tx.Bucket(bucketDocs)
		c := tx.Bucket(bucketUploads).Cursor()
		for k, id := c.Last(); k != nil; k, id = c.Prev() {
			data := docBucket.Get(id)
			if data == nil {
				continue
			}
			var meta docMeta
			if err := json.Unmarshal(data, &meta); err != nil {
				return err
			}
			docs = append(docs, meta.toDocument(string(id)))
		}
		return nil
	})
	return docs, err
}

func (s *BoltStore) DeleteDocument(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		docs := tx.Bucket(bucketDocs)
		data := docs.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, id)
		}
		if err := removeIndexes(tx, id, data); err != nil {
			return err
		}
		if err := tx.Bucket(bucketContents).Delete([]byte(id)); err != nil {
			return err
		}
		return docs.Delete([]byte(id))
	})
}

func removeIndexes(tx *bbolt.Tx, id string, metaData []byte) error {
	var meta docMeta
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return err
	}
	if err := tx.Bucket(bucketUploads).Delete(uploadKey(meta.UploadedAt, id)); err != nil {
		return err
	}
	if meta.Hash == "" {
		return nil
	}
	hashes := tx.Bucket(bucketHashes)
	if string(hashes.Get([]byte(meta.Hash))) == id {
		return hashes.Delete([]byte(meta.Hash))
	}
	return nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
