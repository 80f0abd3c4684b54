package document

import (
	domdoc "github.com/cerebro-kb/cerebro/internal/domain/document"
)

// buildHashFields converts a domain Document into a flat map for HSET.
func buildHashFields(doc domdoc.Document) map[string]string {
	return map[string]string{
		"title":   doc.Title(),
		"section": doc.Section(),
		"content": doc.Content(),
	}
}

// parseHashFields hydrates a domain Document from a stored hash.
func parseHashFields(id string, m map[string]string) domdoc.Document {
	return domdoc.Reconstruct(id, m["title"], m["section"], m["content"])
}
