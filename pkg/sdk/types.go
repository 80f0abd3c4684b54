package cerebro

import (
	"time"

	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
	"github.com/cerebro-kb/cerebro/internal/domain/querylog"
	"github.com/cerebro-kb/cerebro/internal/domain/rank"
)

// Document is a knowledge-base document.
type Document struct {
	ID      string
	Title   string
	Section string
	Content string
}

// ScoredDocument is a document with its ranking scores.
type ScoredDocument struct {
	Document       Document
	Score          float64
	KeywordScore   float64
	EmbeddingScore float64
	Relevance      string
}

// Answer is the response to a question.
type Answer struct {
	Query     string
	Text      string
	Sources   []Source
	Timestamp time.Time
}

// Source names a document an answer was drawn from.
type Source struct {
	Title   string
	Section string
}

// LogEntry is one recorded query.
type LogEntry struct {
	ID        string
	Timestamp time.Time
	Query     string
	Answered  bool
	Sources   []Source
}

func documentFromDomain(d domdoc.Document) Document {
	return Document{
		ID:      d.ID(),
		Title:   d.Title(),
		Section: d.Section(),
		Content: d.Content(),
	}
}

func scoredFromDomain(r rank.ScoredDocument) ScoredDocument {
	return ScoredDocument{
		Document:       documentFromDomain(r.Document),
		Score:          r.Score,
		KeywordScore:   r.KeywordScore,
		EmbeddingScore: r.EmbeddingScore,
		Relevance:      r.Relevance,
	}
}

func sourcesFromDomain(in []querylog.Source) []Source {
	out := make([]Source, len(in))
	for i, s := range in {
		out[i] = Source{Title: s.Title, Section: s.Section}
	}
	return out
}

func logEntryFromDomain(e querylog.Entry) LogEntry {
	return LogEntry{
		ID:        e.ID(),
		Timestamp: e.Timestamp(),
		Query:     e.Query(),
		Answered:  e.Answered(),
		Sources:   sourcesFromDomain(e.Sources()),
	}
}
