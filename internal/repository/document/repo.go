package document

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cerebro-kb/cerebro/internal/db"
	"github.com/cerebro-kb/cerebro/internal/domain"
	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
)

const keyPrefix = "cerebro:doc:"

// store is the consumer interface for documents (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo persists documents as Redis hashes, one hash per document.
type Repo struct {
	store store
}

// New creates a document repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Put creates or updates a document.
func (r *Repo) Put(ctx context.Context, doc domdoc.Document) error {
	key := docKey(doc.ID())
	if err := r.store.HSet(ctx, key, buildHashFields(doc)); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// PutMulti stores multiple documents in a single pipelined round-trip.
func (r *Repo) PutMulti(ctx context.Context, docs []domdoc.Document) error {
	if len(docs) == 0 {
		return nil
	}
	items := make([]db.HashSetItem, len(docs))
	for i, doc := range docs {
		items[i] = db.HashSetItem{Key: docKey(doc.ID()), Fields: buildHashFields(doc)}
	}
	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("hset multi: %w", err)
	}
	return nil
}

// Get returns a document by ID.
func (r *Repo) Get(ctx context.Context, id string) (domdoc.Document, error) {
	key := docKey(id)
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domdoc.Document{}, domain.ErrDocumentNotFound
		}
		return domdoc.Document{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	// HGETALL on a missing key returns an empty map, not an error.
	if len(fields) == 0 {
		return domdoc.Document{}, domain.ErrDocumentNotFound
	}
	return parseHashFields(id, fields), nil
}

// List returns all documents ordered by ID.
func (r *Repo) List(ctx context.Context) ([]domdoc.Document, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("scan documents: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys)

	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi: %w", err)
	}

	docs := make([]domdoc.Document, 0, len(hashes))
	for i, fields := range hashes {
		if len(fields) == 0 {
			continue
		}
		docs = append(docs, parseHashFields(strings.TrimPrefix(keys[i], keyPrefix), fields))
	}
	return docs, nil
}

// Delete removes a document. Missing documents are not an error.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := docKey(id)
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// Count returns the number of stored documents.
func (r *Repo) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return 0, fmt.Errorf("scan documents: %w", err)
	}
	return len(keys), nil
}

func docKey(id string) string {
	return keyPrefix + id
}
