package parser

import (
	"io"

	"golang.org/x/net/html/charset"
)

// NewUTF8Reader wraps an io.Reader with automatic character encoding detection and conversion to UTF-8.
// IMDb serves localised pages, so titles may arrive in a legacy encoding.
//
// The charset is taken from, in order:
// 1. the charset parameter of contentType (the response Content-Type header), when given
// 2. HTML <meta charset="..."> or <meta http-equiv="Content-Type"> tags
// 3. Byte order marks (BOM)
// 4. Heuristic detection if none of the above are present
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	return charset.NewReader(body, contentType)
}
