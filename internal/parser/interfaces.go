package parser

import (
	"io"

	"github.com/Belphemur/popcorn/internal/models"
)

// Parser defines a generic interface for parsing HTML content.
// A page that parses but holds nothing of interest yields an empty slice,
// not an error; errors are reserved for unreadable documents.
type Parser[T any] interface {
	ParseHtml(body io.Reader) ([]T, error)
}

var _ Parser[models.SearchResult] = (*SearchParser)(nil)
