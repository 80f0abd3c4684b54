package cerebro

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cerebro-kb/cerebro/internal/db"
	dbRedis "github.com/cerebro-kb/cerebro/internal/db/redis"
	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
	"github.com/cerebro-kb/cerebro/internal/domain/querylog"
	"github.com/cerebro-kb/cerebro/internal/domain/rank"
	documentrepo "github.com/cerebro-kb/cerebro/internal/repository/document"
	querylogrepo "github.com/cerebro-kb/cerebro/internal/repository/querylog"
	"github.com/cerebro-kb/cerebro/internal/seed"
	logsuc "github.com/cerebro-kb/cerebro/internal/usecase/logs"
	queryuc "github.com/cerebro-kb/cerebro/internal/usecase/query"
	searchuc "github.com/cerebro-kb/cerebro/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the use cases.
type searchUseCase interface {
	Documents(ctx context.Context) ([]domdoc.Document, error)
	Seed(ctx context.Context) (int, error)
	Search(ctx context.Context, query string) ([]rank.ScoredDocument, error)
	GetByID(ctx context.Context, id string) (domdoc.Document, error)
}

type queryUseCase interface {
	Ask(ctx context.Context, query string, useLLM bool) (queryuc.Response, error)
}

type logsUseCase interface {
	List(ctx context.Context, limit int) ([]querylog.Entry, error)
	Clear(ctx context.Context) error
}

// Client is the cerebro SDK entry point.
type Client struct {
	store     db.Store
	searchSvc searchUseCase
	querySvc  queryUseCase
	logsSvc   logsUseCase
	logger    *slog.Logger
}

// New creates a cerebro Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		minScore:     rank.DefaultMinScore,
		topK:         rank.DefaultTopK,
		embeddingDim: rank.DefaultDimensions,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("cerebro: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("cerebro: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("cerebro: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	docRepo := documentrepo.New(store)
	logRepo := querylogrepo.New(store)

	embedder := rank.NewEmbedder(cfg.embeddingDim)
	ranker := rank.NewRanker(embedder).WithLimits(cfg.minScore, cfg.topK)

	searchSvc := searchuc.New(docRepo, ranker)
	if !cfg.noSamples {
		searchSvc = searchSvc.WithSamples(seed.Documents())
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		store:     store,
		searchSvc: searchSvc,
		querySvc:  queryuc.New(searchSvc, nil, logRepo),
		logsSvc:   logsuc.New(logRepo),
		logger:    logger,
	}
}

// Close releases the database connection.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Documents lists all stored documents, seeding the samples into an
// empty knowledge base first.
func (c *Client) Documents(ctx context.Context) ([]Document, error) {
	docs, err := c.searchSvc.Documents(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Document, len(docs))
	for i, d := range docs {
		out[i] = documentFromDomain(d)
	}
	return out, nil
}

// Document returns a single document by id.
func (c *Client) Document(ctx context.Context, id string) (Document, error) {
	doc, err := c.searchSvc.GetByID(ctx, id)
	if err != nil {
		return Document{}, err
	}
	return documentFromDomain(doc), nil
}

// Seed force-loads the sample policy documents.
func (c *Client) Seed(ctx context.Context) (int, error) {
	return c.searchSvc.Seed(ctx)
}

// Search ranks the stored documents against the query.
func (c *Client) Search(ctx context.Context, query string) ([]ScoredDocument, error) {
	start := time.Now()
	results, err := c.searchSvc.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("search",
		slog.String("query", query),
		slog.Int("results", len(results)),
		slog.Duration("took", time.Since(start)),
	)

	out := make([]ScoredDocument, len(results))
	for i, r := range results {
		out[i] = scoredFromDomain(r)
	}
	return out, nil
}

// Ask answers a question from the stored documents using deterministic
// bullet extraction, and records the query in the log.
func (c *Client) Ask(ctx context.Context, query string) (Answer, error) {
	resp, err := c.querySvc.Ask(ctx, query, false)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		Query:     resp.Query,
		Text:      resp.Answer,
		Sources:   sourcesFromDomain(resp.Sources),
		Timestamp: resp.Timestamp,
	}, nil
}

// Logs lists recorded queries, newest first. limit <= 0 returns all.
func (c *Client) Logs(ctx context.Context, limit int) ([]LogEntry, error) {
	entries, err := c.logsSvc.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]LogEntry, len(entries))
	for i, e := range entries {
		out[i] = logEntryFromDomain(e)
	}
	return out, nil
}

// ClearLogs removes all recorded queries.
func (c *Client) ClearLogs(ctx context.Context) error {
	return c.logsSvc.Clear(ctx)
}
