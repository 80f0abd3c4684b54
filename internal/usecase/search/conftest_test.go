package search

import (
	"context"

	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
)

// mockRepository implements Repository for tests.
type mockRepository struct {
	listFn     func(ctx context.Context) ([]domdoc.Document, error)
	getFn      func(ctx context.Context, id string) (domdoc.Document, error)
	putMultiFn func(ctx context.Context, docs []domdoc.Document) error

	putMultiCalls int
}

func (m *mockRepository) List(ctx context.Context) ([]domdoc.Document, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (domdoc.Document, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domdoc.Document{}, nil
}

func (m *mockRepository) PutMulti(ctx context.Context, docs []domdoc.Document) error {
	m.putMultiCalls++
	if m.putMultiFn != nil {
		return m.putMultiFn(ctx, docs)
	}
	return nil
}
