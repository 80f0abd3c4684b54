// Package logs exposes the query log: listing, clearing, and export.
package logs

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cerebro-kb/cerebro/internal/domain"
	"github.com/cerebro-kb/cerebro/internal/domain/querylog"
)

// Repository is the query-log storage contract.
type Repository interface {
	List(ctx context.Context, limit int) ([]querylog.Entry, error)
	Clear(ctx context.Context) error
}

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// exportEntry is the serialization shape of one log entry.
type exportEntry struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Query     string            `json:"query"`
	Answered  bool              `json:"answered"`
	Sources   []querylog.Source `json:"sources"`
}

// Service reads and exports the query log.
type Service struct {
	repo Repository
}

// New creates a logs service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns log entries newest first. limit <= 0 returns all.
func (s *Service) List(ctx context.Context, limit int) ([]querylog.Entry, error) {
	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return entries, nil
}

// Clear removes all log entries.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear logs: %w", err)
	}
	return nil
}

// Export renders the full log as JSON or CSV.
func (s *Service) Export(ctx context.Context, format string) ([]byte, error) {
	entries, err := s.repo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	switch format {
	case FormatJSON:
		return exportJSON(entries)
	case FormatCSV:
		return exportCSV(entries)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

func exportJSON(entries []querylog.Entry) ([]byte, error) {
	out := make([]exportEntry, len(entries))
	for i, e := range entries {
		out[i] = toExport(e)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal logs: %w", err)
	}
	return data, nil
}

func exportCSV(entries []querylog.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "timestamp", "query", "answered", "sources"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range entries {
		sources, err := json.Marshal(e.Sources())
		if err != nil {
			return nil, fmt.Errorf("marshal sources: %w", err)
		}
		row := []string{
			e.ID(),
			e.Timestamp().Format(time.RFC3339),
			e.Query(),
			strconv.FormatBool(e.Answered()),
			string(sources),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func toExport(e querylog.Entry) exportEntry {
	return exportEntry{
		ID:        e.ID(),
		Timestamp: e.Timestamp(),
		Query:     e.Query(),
		Answered:  e.Answered(),
		Sources:   e.Sources(),
	}
}
