package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
)

var _ domain.DocumentStore = (*InMemoryDocumentStore)(nil)

type memoryDocument struct {
	doc domain.Document
	seq uint64
}

// InMemoryDocumentStore keeps every collection in process memory. Used by tests and DB_DRIVER=memory.
type InMemoryDocumentStore struct {
	store map[domain.CollectionPath]map[string]*memoryDocument
	seq   uint64

	mu sync.RWMutex
}

func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		store: make(map[domain.CollectionPath]map[string]*memoryDocument),
	}
}

func cloneDocument(d domain.Document) *domain.Document {
	out := d
	out.Data = append([]byte(nil), d.Data...)
	return &out
}

func (s *InMemoryDocumentStore) Get(ctx context.Context, path domain.CollectionPath, id string) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	md, ok := s.store[path][id]
	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return cloneDocument(md.doc), nil
}

func (s *InMemoryDocumentStore) Put(ctx context.Context, path domain.CollectionPath, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateDocumentData(doc.Data); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = now
	}

	coll, ok := s.store[path]
	if !ok {
		coll = make(map[string]*memoryDocument)
		s.store[path] = coll
	}

	if existing, ok := coll[doc.ID]; ok {
		doc.CreatedAt = existing.doc.CreatedAt
		existing.doc = *cloneDocument(*doc)
		return nil
	}

	s.seq++
	coll[doc.ID] = &memoryDocument{doc: *cloneDocument(*doc), seq: s.seq}
	return nil
}

func (s *InMemoryDocumentStore) Replace(ctx context.Context, path domain.CollectionPath, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := domain.ValidateDocumentData(doc.Data); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.store[path][doc.ID]
	if !ok {
		return domain.ErrDocumentNotFound
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now().UTC()
	}
	doc.CreatedAt = existing.doc.CreatedAt
	existing.doc = *cloneDocument(*doc)
	return nil
}

func (s *InMemoryDocumentStore) Delete(ctx context.Context, path domain.CollectionPath, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store[path][id]; !ok {
		return domain.ErrDocumentNotFound
	}
	delete(s.store[path], id)
	return nil
}

func (s *InMemoryDocumentStore) QueryRange(ctx context.Context, path domain.CollectionPath, field, start, end string) ([]*domain.Document, error) {
	if err := domain.ValidateFieldName(field); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	type hit struct {
		key string
		md  *memoryDocument
	}
	var hits []hit
	for _, md := range s.store[path] {
		var fields map[string]any
		if err := json.Unmarshal(md.doc.Data, &fields); err != nil {
			return nil, fmt.Errorf("document %s is corrupt: %w", md.doc.ID, err)
		}
		v, ok := fields[field].(string)
		if !ok || v < start || v > end {
			continue
		}
		hits = append(hits, hit{key: v, md: md})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].key != hits[j].key {
			return hits[i].key < hits[j].key
		}
		return hits[i].md.seq < hits[j].md.seq
	})

	docs := make([]*domain.Document, 0, len(hits))
	for _, h := range hits {
		docs = append(docs, cloneDocument(h.md.doc))
	}
	return docs, nil
}

func (s *InMemoryDocumentStore) QueryAll(ctx context.Context, path domain.CollectionPath) ([]*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	mds := make([]*memoryDocument, 0, len(s.store[path]))
	for _, md := range s.store[path] {
		mds = append(mds, md)
	}
	sort.Slice(mds, func(i, j int) bool {
		return mds[i].seq < mds[j].seq
	})

	docs := make([]*domain.Document, 0, len(mds))
	for _, md := range mds {
		docs = append(docs, cloneDocument(md.doc))
	}
	return docs, nil
}

func (s *InMemoryDocumentStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
