// Package vectorstore is a small self-contained vector index with JSON
// file persistence. It is independent of the hybrid ranking path and
// uses its own embedding scheme.
package vectorstore

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Dimensions is the fixed embedding width. Texts shorter than this pad
// with zeros; longer texts are truncated.
const Dimensions = 100

// DefaultTopK is the default number of search results.
const DefaultTopK = 3

const dbFileName = "db.json"

// Result is a search hit.
type Result struct {
	DocID    string            `json:"doc_id"`
	Score    float64           `json:"score"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
}

// Document is a stored entry with its vector.
type Document struct {
	ID       string            `json:"id"`
	Vector   []float64         `json:"vector"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
}

type record struct {
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata"`
	CreatedAt string            `json:"created_at"`
}

type fileState struct {
	Vectors  map[string][]float64 `json:"vectors"`
	Metadata map[string]record    `json:"metadata"`
}

// Store is an in-memory vector index persisted to <path>/db.json.
type Store struct {
	path string

	mu       sync.RWMutex
	vectors  map[string][]float64
	metadata map[string]record
}

// New creates a store rooted at path and loads any persisted state.
// An unreadable or corrupt db file starts the store empty.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	s := &Store{
		path:     path,
		vectors:  make(map[string][]float64),
		metadata: make(map[string]record),
	}
	s.load()
	return s, nil
}

// Add stores a document, replacing any existing entry with the same id.
func (s *Store) Add(docID, content string, metadata map[string]string) error {
	if metadata == nil {
		metadata = map[string]string{}
	}

	s.mu.Lock()
	s.vectors[docID] = embed(content)
	s.metadata[docID] = record{
		Content:   content,
		Metadata:  metadata,
		CreatedAt: time.Now().String(),
	}
	err := s.saveLocked()
	s.mu.Unlock()
	return err
}

// Search returns the topK most similar documents. topK <= 0 uses
// DefaultTopK.
func (s *Store) Search(query string, topK int) []Result {
	if topK <= 0 {
		topK = DefaultTopK
	}
	queryVec := embed(query)

	s.mu.RLock()
	results := make([]Result, 0, len(s.vectors))
	for docID, vec := range s.vectors {
		score := similarity(queryVec, vec)
		if score > 0.0 {
			rec := s.metadata[docID]
			results = append(results, Result{
				DocID:    docID,
				Score:    score,
				Content:  rec.Content,
				Metadata: rec.Metadata,
			})
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Get returns a stored document, or false when the id is unknown.
func (s *Store) Get(docID string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.metadata[docID]
	if !ok {
		return Document{}, false
	}
	return Document{
		ID:       docID,
		Vector:   s.vectors[docID],
		Content:  rec.Content,
		Metadata: rec.Metadata,
	}, true
}

// Delete removes a document. Reports whether it existed.
func (s *Store) Delete(docID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vectors[docID]; !ok {
		return false
	}
	delete(s.vectors, docID)
	delete(s.metadata, docID)
	_ = s.saveLocked()
	return true
}

// All returns every stored document, id-ordered.
func (s *Store) All() []Document {
	s.mu.RLock()
	ids := make([]string, 0, len(s.vectors))
	for id := range s.vectors {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)

	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := s.Get(id); ok {
			docs = append(docs, doc)
		}
	}
	return docs
}

// Clear removes all documents.
func (s *Store) Clear() {
	s.mu.Lock()
	s.vectors = make(map[string][]float64)
	s.metadata = make(map[string]record)
	_ = s.saveLocked()
	s.mu.Unlock()
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vectors)
}

// embed maps the first Dimensions runes of the lowercased text onto a
// fixed-width vector as code point / 256. This is intentionally
// different arithmetic from the ranking embedder.
func embed(text string) []float64 {
	lowered := strings.ToLower(text)
	vector := make([]float64, Dimensions)
	for i, r := range []rune(lowered) {
		if i >= Dimensions {
			break
		}
		vector[i] = float64(r) / 256.0
	}
	return vector
}

// similarity is cosine similarity shifted into [0, 1].
func similarity(v1, v2 []float64) float64 {
	if len(v1) == 0 || len(v2) == 0 {
		return 0.0
	}

	n := len(v1)
	if len(v2) < n {
		n = len(v2)
	}

	var dot, sq1, sq2 float64
	for i := 0; i < n; i++ {
		dot += v1[i] * v2[i]
		sq1 += v1[i] * v1[i]
		sq2 += v2[i] * v2[i]
	}

	mag1 := math.Sqrt(sq1)
	if mag1 == 0 {
		mag1 = 1.0
	}
	mag2 := math.Sqrt(sq2)
	if mag2 == 0 {
		mag2 = 1.0
	}

	sim := dot / (mag1 * mag2)
	return (sim + 1.0) / 2.0
}

func (s *Store) load() {
	data, err := os.ReadFile(filepath.Join(s.path, dbFileName))
	if err != nil {
		return
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		return
	}
	if state.Vectors != nil {
		s.vectors = state.Vectors
	}
	if state.Metadata != nil {
		s.metadata = state.Metadata
	}
}

// saveLocked persists the current state. Callers hold the write lock.
func (s *Store) saveLocked() error {
	state := fileState{Vectors: s.vectors, Metadata: s.metadata}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal vector store: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.path, dbFileName), data, 0o644); err != nil {
		return fmt.Errorf("write vector store: %w", err)
	}
	return nil
}
