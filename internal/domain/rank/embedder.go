package rank

import (
	"math"
	"strings"
	"sync"
)

// DefaultDimensions is the embedding vector length for the hybrid ranking path.
const DefaultDimensions = 128

// embeddingKeywords boost the leading vector positions when present in the text.
var embeddingKeywords = []string{
	"policy", "leave", "work", "remote", "support", "expense", "onboard", "hr",
}

// Embedder derives deterministic pseudo-embeddings from text and memoizes
// them by exact input string. The cache key is case-sensitive even though
// the embedding itself lowercases the input. Safe for concurrent use; cache
// writes are idempotent per key, so a racing miss at worst recomputes.
type Embedder struct {
	dim   int
	mu    sync.RWMutex
	cache map[string][]float64
}

// NewEmbedder creates an embedder with a fresh, empty cache.
// dim <= 0 falls back to DefaultDimensions.
func NewEmbedder(dim int) *Embedder {
	if dim <= 0 {
		dim = DefaultDimensions
	}
	return &Embedder{dim: dim, cache: make(map[string][]float64)}
}

// Dimensions returns the embedding vector length.
func (e *Embedder) Dimensions() int { return e.dim }

// CacheLen returns the number of memoized texts.
func (e *Embedder) CacheLen() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.cache)
}

// Embed returns the embedding vector for text, computing and caching it on
// first use. Callers must not mutate the returned slice.
func (e *Embedder) Embed(text string) []float64 {
	e.mu.RLock()
	v, ok := e.cache[text]
	e.mu.RUnlock()
	if ok {
		return v
	}

	v = e.compute(text)

	e.mu.Lock()
	e.cache[text] = v
	e.mu.Unlock()
	return v
}

// Similarity maps the cosine similarity of the two texts' embeddings
// into [0, 1].
func (e *Embedder) Similarity(a, b string) float64 {
	return Cosine(e.Embed(a), e.Embed(b))
}

func (e *Embedder) compute(text string) []float64 {
	lowered := strings.ToLower(text)

	v := make([]float64, e.dim)
	for i, r := range []rune(lowered) {
		if i >= e.dim {
			break
		}
		v[i] = float64(r%256) / 256.0
	}

	// Keyword boosts are additive and may stack across overlapping matches.
	for _, kw := range embeddingKeywords {
		if !strings.Contains(lowered, kw) {
			continue
		}
		n := len(kw)
		if n > e.dim {
			n = e.dim
		}
		for i := range n {
			v[i] += 0.1
		}
	}

	var sum float64
	for _, x := range v {
		sum += x * x
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		norm = 1.0
	}
	for i := range v {
		v[i] /= norm
	}

	return v
}

// Cosine computes the cosine similarity of two vectors mapped from the
// theoretical [-1, 1] range into [0, 1]. Vectors of different lengths are
// truncated to the shorter one; a zero magnitude counts as 1.0. Empty input
// yields 0.
func Cosine(v1, v2 []float64) float64 {
	if len(v1) == 0 || len(v2) == 0 {
		return 0
	}

	n := min(len(v1), len(v2))

	var dot, s1, s2 float64
	for i := range n {
		dot += v1[i] * v2[i]
		s1 += v1[i] * v1[i]
		s2 += v2[i] * v2[i]
	}

	mag1 := math.Sqrt(s1)
	mag2 := math.Sqrt(s2)
	if mag1 == 0 {
		mag1 = 1.0
	}
	if mag2 == 0 {
		mag2 = 1.0
	}

	raw := 0.0
	if mag1*mag2 > 0 {
		raw = dot / (mag1 * mag2)
	}

	return (raw + 1.0) / 2.0
}
