package search

import (
	"context"

	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
)

// Repository defines the storage contract for search operations.
type Repository interface {
	List(ctx context.Context) ([]domdoc.Document, error)
	Get(ctx context.Context, id string) (domdoc.Document, error)
	PutMulti(ctx context.Context, docs []domdoc.Document) error
}
