package document

import (
	"fmt"
	"regexp"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxContentSize is the maximum document content size in bytes.
const MaxContentSize = 65536 // 64KB

// Document is a knowledge-base document (immutable value object).
type Document struct {
	id      string
	title   string
	section string
	content string
}

// New validates and creates a Document.
// ID: ^[a-zA-Z0-9_-]+$, 1-64 chars. Title, section, and content are all
// required; a document without a section is rejected here rather than
// papered over with defaults in the scoring code.
func New(id, title, section, content string) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("document ID is required")
	}
	if len(id) > 64 {
		return Document{}, fmt.Errorf("document ID too long (max 64)")
	}
	if !idRegex.MatchString(id) {
		return Document{}, fmt.Errorf("document ID must be alphanumeric with underscores and hyphens")
	}
	if title == "" {
		return Document{}, fmt.Errorf("title is required")
	}
	if section == "" {
		return Document{}, fmt.Errorf("section is required")
	}
	if content == "" {
		return Document{}, fmt.Errorf("content is required")
	}
	if len(content) > MaxContentSize {
		return Document{}, fmt.Errorf("content too large (max %d bytes)", MaxContentSize)
	}

	return Document{id: id, title: title, section: section, content: content}, nil
}

// Reconstruct creates a Document without validation (storage hydration).
func Reconstruct(id, title, section, content string) Document {
	return Document{id: id, title: title, section: section, content: content}
}

// ID returns the document identifier.
func (d *Document) ID() string { return d.id }

// Title returns the document title.
func (d *Document) Title() string { return d.title }

// Section returns the category the document belongs to.
func (d *Document) Section() string { return d.section }

// Content returns the document text body.
func (d *Document) Content() string { return d.content }
