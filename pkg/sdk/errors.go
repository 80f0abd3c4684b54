package cerebro

import "github.com/cerebro-kb/cerebro/internal/domain"

// Sentinel errors returned by Client operations. Match with errors.Is.
var (
	ErrEmptyQuery       = domain.ErrEmptyQuery
	ErrDocumentNotFound = domain.ErrDocumentNotFound
	ErrNotFound         = domain.ErrNotFound
)
