package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
	"github.com/cerebro-kb/cerebro/internal/domain"
	"github.com/cerebro-kb/cerebro/internal/domain/rank"
	"github.com/cerebro-kb/cerebro/internal/metrics"
)

// Service ranks the stored document set against free-text queries.
type Service struct {
	repo    Repository
	ranker  *rank.Ranker
	samples []domdoc.Document
}

// New creates a search service.
func New(repo Repository, ranker *rank.Ranker) *Service {
	return &Service{repo: repo, ranker: ranker}
}

// WithSamples sets documents seeded into an empty knowledge base.
func (s *Service) WithSamples(docs []domdoc.Document) *Service {
	s.samples = docs
	return s
}

// Documents returns all stored documents, seeding the sample set first when
// the store is empty.
func (s *Service) Documents(ctx context.Context) ([]domdoc.Document, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if len(docs) > 0 || len(s.samples) == 0 {
		return docs, nil
	}

	if err := s.repo.PutMulti(ctx, s.samples); err != nil {
		return nil, fmt.Errorf("seed documents: %w", err)
	}
	docs, err = s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents after seed: %w", err)
	}
	return docs, nil
}

// Seed force-loads the sample documents.
func (s *Service) Seed(ctx context.Context) (int, error) {
	if err := s.repo.PutMulti(ctx, s.samples); err != nil {
		return 0, fmt.Errorf("seed documents: %w", err)
	}
	return len(s.samples), nil
}

// Search ranks all stored documents against the query. An empty query is
// rejected here; an empty result list is not an error.
func (s *Service) Search(ctx context.Context, query string) ([]rank.ScoredDocument, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}

	docs, err := s.Documents(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := s.ranker.Rank(query, docs)
	metrics.RankingDuration.Observe(time.Since(start).Seconds())
	metrics.SearchesTotal.WithLabelValues(answeredLabel(len(results) > 0)).Inc()
	metrics.SearchResults.Observe(float64(len(results)))

	return results, nil
}

// GetByID returns a single document.
func (s *Service) GetByID(ctx context.Context, id string) (domdoc.Document, error) {
	doc, err := s.repo.Get(ctx, id)
	if err != nil {
		return domdoc.Document{}, fmt.Errorf("get document %s: %w", id, err)
	}
	return doc, nil
}

// FilterBySection returns the documents whose section matches
// (case-insensitive).
func FilterBySection(docs []domdoc.Document, section string) []domdoc.Document {
	out := make([]domdoc.Document, 0, len(docs))
	for _, d := range docs {
		if strings.EqualFold(d.Section(), section) {
			out = append(out, d)
		}
	}
	return out
}

func answeredLabel(answered bool) string {
	if answered {
		return "answered"
	}
	return "unanswered"
}
