package parser

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/Belphemur/popcorn/internal/models"
	"github.com/Belphemur/popcorn/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

// findPage renders a Titles-only find page declaring the given charset. The
// title is written byte for byte, so it must already be in that charset.
func findPage(charset string, row testutil.SearchRowOptions) []byte {
	page := testutil.GenerateTitlesPageHTML([]testutil.SearchRowOptions{row})
	return []byte(strings.Replace(page, `charset="utf-8"`, `charset="`+charset+`"`, 1))
}

func TestNewUTF8Reader_FindPages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		body        []byte
		contentType string
		want        models.SearchResult
	}{
		{
			name:        "utf-8 localised title",
			body:        findPage("utf-8", testutil.SearchRowOptions{IMDBID: "tt2861424", Title: "Рик и Морти", Extra: "(2013) (TV Series)"}),
			contentType: "text/html",
			want:        models.SearchResult{Label: "Рик и Морти (2013) (TV Series)", IMDBID: "tt2861424"},
		},
		{
			name:        "latin-1 meta charset",
			body:        findPage("ISO-8859-1", testutil.SearchRowOptions{IMDBID: "tt0211915", Title: "Am\xe9lie", Extra: "(2001)"}),
			contentType: "text/html",
			want:        models.SearchResult{Label: "Amélie (2001)", IMDBID: "tt0211915"},
		},
		{
			// 0x92 is a right single quote in windows-1252 and a control code in latin-1
			name:        "windows-1252 meta charset",
			body:        findPage("windows-1252", testutil.SearchRowOptions{IMDBID: "tt0240772", Title: "Ocean\x92s Eleven", Extra: "(2001)"}),
			contentType: "",
			want:        models.SearchResult{Label: "Ocean’s Eleven (2001)", IMDBID: "tt0240772"},
		},
		{
			name:        "content-type header wins over meta",
			body:        findPage("utf-8", testutil.SearchRowOptions{IMDBID: "tt0211915", Title: "Le Fabuleux Destin d'Am\xe9lie Poulain", Extra: "(2001)"}),
			contentType: "text/html; charset=ISO-8859-1",
			want:        models.SearchResult{Label: "Le Fabuleux Destin d'Amélie Poulain (2001)", IMDBID: "tt0211915"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reader, err := NewUTF8Reader(bytes.NewReader(tt.body), tt.contentType)
			if err != nil {
				t.Fatalf("NewUTF8Reader failed: %v", err)
			}

			results, err := NewSearchParser().ParseHtml(reader)
			if err != nil {
				t.Fatalf("ParseHtml failed: %v", err)
			}
			if diff := cmp.Diff([]models.SearchResult{tt.want}, results); diff != "" {
				t.Errorf("decoded results mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewUTF8Reader_UTF8FindPageUnchanged(t *testing.T) {
	t.Parallel()
	input := findPage("utf-8", testutil.SearchRowOptions{IMDBID: "tt2861424", Title: "Рик и Морти", Extra: "(2013) (TV Series)"})

	reader, err := NewUTF8Reader(bytes.NewReader(input), "text/html; charset=utf-8")
	if err != nil {
		t.Fatalf("NewUTF8Reader failed: %v", err)
	}

	output, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Failed to read from UTF-8 reader: %v", err)
	}
	if !bytes.Equal(output, input) {
		t.Errorf("Expected a UTF-8 find page to pass through unchanged")
	}
}
