package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrEmptyQuery signals a blank query string.
	ErrEmptyQuery = errors.New("query cannot be empty")
	// ErrLLMUnavailable signals that no language model is configured.
	ErrLLMUnavailable = errors.New("language model not configured")
	// ErrLLMProviderError signals a language model provider failure.
	ErrLLMProviderError = errors.New("language model provider error")
	// ErrCalendarUnavailable signals that no calendar provider is configured.
	ErrCalendarUnavailable = errors.New("calendar provider not configured")
	// ErrUnsupportedFormat signals an unknown export format.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
