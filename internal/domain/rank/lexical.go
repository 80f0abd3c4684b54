package rank

import (
	"math"
	"strings"

	"github.com/cerebro-kb/cerebro/internal/domain/document"
)

// Lexical score composition.
const (
	wordMatchWeight = 0.6
	phraseBonus     = 0.3
	titleWordBonus  = 0.15
	titleBonusCap   = 0.25
)

// LexicalScorer computes a 0-1 keyword relevance score for one
// (query words, document) pair from word overlap, exact phrase containment,
// and a title/section word bonus. Stateless and pure.
type LexicalScorer struct{}

// Score scores a document against the normalized query words.
// Empty queryWords yields 0.
func (LexicalScorer) Score(queryWords []string, doc document.Document) float64 {
	if len(queryWords) == 0 {
		return 0
	}

	docText := Normalize(doc.Title() + " " + doc.Section() + " " + doc.Content())
	docWords := make(map[string]struct{})
	for _, w := range strings.Fields(docText) {
		docWords[w] = struct{}{}
	}

	matches := 0
	for _, w := range queryWords {
		if _, ok := docWords[w]; ok {
			matches++
		}
	}
	wordMatch := float64(matches) / float64(len(queryWords))

	// The phrase check runs against the raw lowercased content, not the
	// normalized text: punctuation inside the content can block a match.
	phrase := 0.0
	if strings.Contains(strings.ToLower(doc.Content()), strings.Join(queryWords, " ")) {
		phrase = phraseBonus
	}

	titleWords := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(doc.Title() + " " + doc.Section())) {
		titleWords[w] = struct{}{}
	}
	title := 0.0
	for _, w := range queryWords {
		if _, ok := titleWords[w]; ok {
			title += titleWordBonus
		}
	}

	return math.Min(1.0, wordMatch*wordMatchWeight+phrase+math.Min(title, titleBonusCap))
}
