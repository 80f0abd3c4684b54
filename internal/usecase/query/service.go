package query

import (
	"context"
	"time"

	"go.uber.org/zap"

	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
	"github.com/cerebro-kb/cerebro/internal/domain/querylog"
	"github.com/cerebro-kb/cerebro/internal/domain/rank"
	"github.com/cerebro-kb/cerebro/internal/logger"
)

// Response is the answer to one user query.
type Response struct {
	Query      string
	Answer     string
	Sources    []querylog.Source
	Timestamp  time.Time
	LLMEnabled bool
}

// Service answers user queries: it ranks documents, phrases an answer via
// the configured language model (falling back to deterministic bullet
// extraction), and records the query in the log.
type Service struct {
	searcher  Searcher
	generator Generator
	logs      LogWriter
}

// New creates a query service. generator may be nil; answers then always use
// the extraction fallback.
func New(searcher Searcher, generator Generator, logs LogWriter) *Service {
	return &Service{searcher: searcher, generator: generator, logs: logs}
}

// LLMEnabled reports whether a language model generator is configured.
func (s *Service) LLMEnabled() bool { return s.generator != nil }

// Ask answers a query. A generator failure degrades to the extraction
// fallback; only search/storage failures propagate.
func (s *Service) Ask(ctx context.Context, query string, useLLM bool) (Response, error) {
	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		return Response{}, err
	}

	sources := make([]querylog.Source, 0, len(results))
	for _, r := range results {
		sources = append(sources, querylog.Source{
			Title:   r.Document.Title(),
			Section: r.Document.Section(),
		})
	}

	answer := s.answer(ctx, query, results, useLLM)

	entry := querylog.New(query, len(results) > 0, sources)
	if err := s.logs.Add(ctx, entry); err != nil {
		logger.FromContext(ctx).Warn("failed to log query", zap.Error(err))
	}

	return Response{
		Query:      query,
		Answer:     answer,
		Sources:    sources,
		Timestamp:  time.Now().UTC(),
		LLMEnabled: s.LLMEnabled(),
	}, nil
}

func (s *Service) answer(ctx context.Context, query string, results []rank.ScoredDocument, useLLM bool) string {
	if !useLLM || s.generator == nil {
		return extractAnswer(results)
	}

	// Context for the model: matched documents, or the whole set when
	// nothing matched so the model can still say what it knows.
	docs := make([]domdoc.Document, 0, len(results))
	for _, r := range results {
		docs = append(docs, r.Document)
	}
	if len(docs) == 0 {
		all, err := s.searcher.Documents(ctx)
		if err == nil {
			docs = all
		}
	}

	ans, err := s.generator.Generate(ctx, query, docs)
	if err != nil {
		logger.FromContext(ctx).Warn("llm generation failed, using extraction fallback", zap.Error(err))
		return extractAnswer(results)
	}
	return ans.Text
}
