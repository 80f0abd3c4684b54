package querylog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cerebro-kb/cerebro/internal/domain/querylog"
)

const logKey = "cerebro:logs"

// store is the consumer interface for query logs (ISP).
type store interface {
	LPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LLen(ctx context.Context, key string) (int64, error)
	Del(ctx context.Context, key string) error
}

// entryDTO is the JSON wire format of a stored log entry.
type entryDTO struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Query     string            `json:"query"`
	Answered  bool              `json:"answered"`
	Sources   []querylog.Source `json:"sources"`
}

// Repo persists query-log entries as a Redis list of JSON values,
// newest first.
type Repo struct {
	store store
}

// New creates a query-log repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Add appends an entry to the log.
func (r *Repo) Add(ctx context.Context, e querylog.Entry) error {
	dto := entryDTO{
		ID:        e.ID(),
		Timestamp: e.Timestamp(),
		Query:     e.Query(),
		Answered:  e.Answered(),
		Sources:   e.Sources(),
	}
	data, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("marshal log entry: %w", err)
	}
	if err := r.store.LPush(ctx, logKey, string(data)); err != nil {
		return fmt.Errorf("lpush log entry: %w", err)
	}
	return nil
}

// List returns entries newest first. limit <= 0 returns all entries.
// Entries that fail to decode are skipped rather than failing the read.
func (r *Repo) List(ctx context.Context, limit int) ([]querylog.Entry, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	items, err := r.store.LRange(ctx, logKey, 0, stop)
	if err != nil {
		return nil, fmt.Errorf("lrange logs: %w", err)
	}

	entries := make([]querylog.Entry, 0, len(items))
	for _, item := range items {
		var dto entryDTO
		if err := json.Unmarshal([]byte(item), &dto); err != nil {
			continue
		}
		entries = append(entries, querylog.Reconstruct(
			dto.ID, dto.Timestamp, dto.Query, dto.Answered, dto.Sources,
		))
	}
	return entries, nil
}

// Count returns the number of logged queries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.LLen(ctx, logKey)
	if err != nil {
		return 0, fmt.Errorf("llen logs: %w", err)
	}
	return int(n), nil
}

// Clear removes all entries.
func (r *Repo) Clear(ctx context.Context) error {
	if err := r.store.Del(ctx, logKey); err != nil {
		return fmt.Errorf("del logs: %w", err)
	}
	return nil
}
