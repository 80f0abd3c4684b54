package querylog

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies a document that contributed to an answer.
type Source struct {
	Title   string `json:"title"`
	Section string `json:"section"`
}

// Entry is one logged query (immutable value object).
type Entry struct {
	id        string
	timestamp time.Time
	query     string
	answered  bool
	sources   []Source
}

// New creates an entry with a fresh short id and the current UTC time.
func New(query string, answered bool, sources []Source) Entry {
	return Entry{
		id:        uuid.NewString()[:8],
		timestamp: time.Now().UTC(),
		query:     query,
		answered:  answered,
		sources:   sources,
	}
}

// Reconstruct creates an Entry without generating id/timestamp (storage hydration).
func Reconstruct(id string, timestamp time.Time, query string, answered bool, sources []Source) Entry {
	return Entry{id: id, timestamp: timestamp, query: query, answered: answered, sources: sources}
}

// ID returns the entry identifier.
func (e *Entry) ID() string { return e.id }

// Timestamp returns when the query was logged.
func (e *Entry) Timestamp() time.Time { return e.timestamp }

// Query returns the query text.
func (e *Entry) Query() string { return e.query }

// Answered reports whether the query produced any results.
func (e *Entry) Answered() bool { return e.answered }

// Sources returns the documents used to answer the query.
func (e *Entry) Sources() []Source { return e.sources }
