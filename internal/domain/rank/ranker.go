package rank

import (
	"math"
	"sort"
	"strings"

	"github.com/cerebro-kb/cerebro/internal/domain/document"
)

// Default ranking parameters.
const (
	DefaultMinScore = 0.3
	DefaultTopK     = 3
)

// Combined score weights.
const (
	keywordWeight   = 0.7
	embeddingWeight = 0.3
)

// ScoredDocument is a ranked search hit: the document plus its component and
// combined scores, each rounded to 4 decimal places. Produced fresh per
// query, never persisted.
type ScoredDocument struct {
	Document       document.Document
	KeywordScore   float64
	EmbeddingScore float64
	Score          float64
	Relevance      string
}

// Ranker combines the lexical and embedding relevance signals into a single
// ranking over a caller-supplied document set. It holds no state of its own;
// the embedder (when present) carries the memoization cache.
type Ranker struct {
	lexical  LexicalScorer
	embedder *Embedder
	minScore float64
	topK     int
}

// NewRanker creates a ranker. embedder may be nil: without it the embedding
// score is defined to be 0 and ranking is purely lexical.
func NewRanker(embedder *Embedder) *Ranker {
	return &Ranker{
		embedder: embedder,
		minScore: DefaultMinScore,
		topK:     DefaultTopK,
	}
}

// WithLimits overrides the minimum combined score and the result cap.
// Non-positive values keep the defaults.
func (r *Ranker) WithLimits(minScore float64, topK int) *Ranker {
	if minScore > 0 {
		r.minScore = minScore
	}
	if topK > 0 {
		r.topK = topK
	}
	return r
}

// Rank scores every document against the query and returns at most TopK
// results with a combined score of at least MinScore, ordered by descending
// score. Ties keep document input order. An empty query or document set
// yields an empty result, never an error.
func (r *Ranker) Rank(query string, docs []document.Document) []ScoredDocument {
	if query == "" || len(docs) == 0 {
		return nil
	}

	queryWords := strings.Fields(Normalize(query))

	scored := make([]ScoredDocument, 0, len(docs))
	for _, doc := range docs {
		kw := r.lexical.Score(queryWords, doc)

		emb := 0.0
		if r.embedder != nil {
			emb = r.embedder.Similarity(query, doc.Content())
		}

		combined := math.Min(1.0, kw*keywordWeight+emb*embeddingWeight)
		if combined < r.minScore {
			continue
		}

		combined = round4(combined)
		scored = append(scored, ScoredDocument{
			Document:       doc,
			KeywordScore:   round4(kw),
			EmbeddingScore: round4(emb),
			Score:          combined,
			Relevance:      Label(combined),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > r.topK {
		scored = scored[:r.topK]
	}

	return scored
}

// round4 rounds to 4 decimal places, the wire precision of all scores.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
