package query

import (
	"context"

	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
	"github.com/cerebro-kb/cerebro/internal/domain/querylog"
	"github.com/cerebro-kb/cerebro/internal/domain/rank"
)

// --- Mocks ---

type mockSearcher struct {
	searchFn    func(ctx context.Context, query string) ([]rank.ScoredDocument, error)
	documentsFn func(ctx context.Context) ([]domdoc.Document, error)
}

func (m *mockSearcher) Search(ctx context.Context, query string) ([]rank.ScoredDocument, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query)
	}
	return nil, nil
}

func (m *mockSearcher) Documents(ctx context.Context) ([]domdoc.Document, error) {
	if m.documentsFn != nil {
		return m.documentsFn(ctx)
	}
	return nil, nil
}

type mockGenerator struct {
	generateFn func(ctx context.Context, query string, docs []domdoc.Document) (Answer, error)
	calls      int
	lastDocs   []domdoc.Document
}

func (m *mockGenerator) Generate(ctx context.Context, query string, docs []domdoc.Document) (Answer, error) {
	m.calls++
	m.lastDocs = docs
	if m.generateFn != nil {
		return m.generateFn(ctx, query, docs)
	}
	return Answer{Text: "generated answer"}, nil
}

type mockLogWriter struct {
	addFn   func(ctx context.Context, e querylog.Entry) error
	entries []querylog.Entry
}

func (m *mockLogWriter) Add(ctx context.Context, e querylog.Entry) error {
	m.entries = append(m.entries, e)
	if m.addFn != nil {
		return m.addFn(ctx, e)
	}
	return nil
}

func scoredDoc(id, title, section, content string) rank.ScoredDocument {
	return rank.ScoredDocument{
		Document:     domdoc.Reconstruct(id, title, section, content),
		KeywordScore: 0.8,
		Score:        0.7,
		Relevance:    rank.RelevanceHigh,
	}
}
