package cerebro

import (
	"context"

	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
	"github.com/cerebro-kb/cerebro/internal/domain/querylog"
	"github.com/cerebro-kb/cerebro/internal/domain/rank"
	queryuc "github.com/cerebro-kb/cerebro/internal/usecase/query"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	documentsFn func(ctx context.Context) ([]domdoc.Document, error)
	seedFn      func(ctx context.Context) (int, error)
	searchFn    func(ctx context.Context, query string) ([]rank.ScoredDocument, error)
	getByIDFn   func(ctx context.Context, id string) (domdoc.Document, error)
}

func (m *mockSearchUC) Documents(ctx context.Context) ([]domdoc.Document, error) {
	return m.documentsFn(ctx)
}

func (m *mockSearchUC) Seed(ctx context.Context) (int, error) {
	return m.seedFn(ctx)
}

func (m *mockSearchUC) Search(ctx context.Context, query string) ([]rank.ScoredDocument, error) {
	return m.searchFn(ctx, query)
}

func (m *mockSearchUC) GetByID(ctx context.Context, id string) (domdoc.Document, error) {
	return m.getByIDFn(ctx, id)
}

// --- queryUseCase mock ---

type mockQueryUC struct {
	askFn func(ctx context.Context, query string, useLLM bool) (queryuc.Response, error)
}

func (m *mockQueryUC) Ask(ctx context.Context, query string, useLLM bool) (queryuc.Response, error) {
	return m.askFn(ctx, query, useLLM)
}

// --- logsUseCase mock ---

type mockLogsUC struct {
	listFn  func(ctx context.Context, limit int) ([]querylog.Entry, error)
	clearFn func(ctx context.Context) error
}

func (m *mockLogsUC) List(ctx context.Context, limit int) ([]querylog.Entry, error) {
	return m.listFn(ctx, limit)
}

func (m *mockLogsUC) Clear(ctx context.Context) error {
	return m.clearFn(ctx)
}
