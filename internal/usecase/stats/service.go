// Package stats aggregates usage statistics from the document store and
// the query log.
package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cerebro-kb/cerebro/internal/domain/querylog"
)

// DocumentCounter counts stored documents.
type DocumentCounter interface {
	Count(ctx context.Context) (int, error)
}

// LogReader reads query-log entries, newest first.
type LogReader interface {
	List(ctx context.Context, limit int) ([]querylog.Entry, error)
}

// VectorStore reports on the standalone vector index.
type VectorStore interface {
	Len() int
}

// NameCount is a name with its occurrence count.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Report is a snapshot of system statistics.
type Report struct {
	TotalDocuments  int
	TotalQueries    int
	AnsweredQueries int
	ResponseRate    string
	TopSources      []NameCount
	TopQueries      []NameCount
	FirstQuery      *time.Time
	LastQuery       *time.Time
	VectorStoreSize int
	VectorStoreOK   bool
}

const (
	topSourcesLimit = 3
	topQueriesLimit = 5
)

// Service computes the stats report.
type Service struct {
	docs DocumentCounter
	logs LogReader
	vecs VectorStore
}

// New creates a stats service. vecs may be nil.
func New(docs DocumentCounter, logs LogReader, vecs VectorStore) *Service {
	return &Service{docs: docs, logs: logs, vecs: vecs}
}

// Report aggregates document counts, query analytics, and vector store state.
func (s *Service) Report(ctx context.Context) (Report, error) {
	docCount, err := s.docs.Count(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("count documents: %w", err)
	}

	entries, err := s.logs.List(ctx, 0)
	if err != nil {
		return Report{}, fmt.Errorf("list logs: %w", err)
	}

	answered := 0
	sourceUsage := make(map[string]int)
	queryFreq := make(map[string]int)
	for _, e := range entries {
		if e.Answered() {
			answered++
		}
		for _, src := range e.Sources() {
			sourceUsage[src.Title]++
		}
		queryFreq[strings.ToLower(e.Query())]++
	}

	report := Report{
		TotalDocuments:  docCount,
		TotalQueries:    len(entries),
		AnsweredQueries: answered,
		ResponseRate:    responseRate(answered, len(entries)),
		TopSources:      topCounts(sourceUsage, topSourcesLimit),
		TopQueries:      topCounts(queryFreq, topQueriesLimit),
	}

	// Entries are newest first.
	if len(entries) > 0 {
		first := entries[len(entries)-1].Timestamp()
		last := entries[0].Timestamp()
		report.FirstQuery = &first
		report.LastQuery = &last
	}

	if s.vecs != nil {
		report.VectorStoreOK = true
		report.VectorStoreSize = s.vecs.Len()
	}

	return report, nil
}

func responseRate(answered, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(answered)/float64(total)*100)
}

// topCounts returns the n highest counts, name-ordered within equal counts
// for deterministic output.
func topCounts(m map[string]int, n int) []NameCount {
	out := make([]NameCount, 0, len(m))
	for name, count := range m {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
