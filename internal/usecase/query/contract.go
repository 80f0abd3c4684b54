package query

import (
	"context"

	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
	"github.com/cerebro-kb/cerebro/internal/domain/querylog"
	"github.com/cerebro-kb/cerebro/internal/domain/rank"
)

// Searcher ranks documents against a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]rank.ScoredDocument, error)
	Documents(ctx context.Context) ([]domdoc.Document, error)
}

// Answer is a generated response with provider metadata.
type Answer struct {
	Text       string
	Model      string
	TokensUsed int
}

// Generator phrases an answer from a query and its context documents.
type Generator interface {
	Generate(ctx context.Context, query string, docs []domdoc.Document) (Answer, error)
}

// LogWriter records query-log entries.
type LogWriter interface {
	Add(ctx context.Context, e querylog.Entry) error
}
