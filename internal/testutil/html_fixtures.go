package testutil

import (
	"fmt"
	"strings"
)

// IntPtr is a helper for creating *int values in tests
func IntPtr(v int) *int {
	return &v
}

// SearchRowOptions contains options for generating a find-page result row
type SearchRowOptions struct {
	IMDBID string
	Title  string
	Extra  string // trailing text such as "(2013) (TV Series)"
	Href   string // overrides the generated /title/{IMDBID}/ link when set
	NoLink bool
}

// FindSectionOptions describes one findSection block of the IMDb find page
type FindSectionOptions struct {
	Header string // "Titles", "Names", "Keywords", ...
	Rows   []SearchRowOptions
}

// GenerateFindPageHTML generates an IMDb find page with the given sections,
// following the legacy /find markup: div.findSection > h3.findSectionHeader
// and a table.findList of rows whose second cell is td.result_text.
func GenerateFindPageHTML(sections []FindSectionOptions) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Find - IMDb</title></head>
<body>
<div id="main">
	<h1 class="findHeader">Results for <span class="findSearchTerm">"query"</span></h1>
`)

	for _, section := range sections {
		fmt.Fprintf(&sb, `
	<div class="findSection">
		<h3 class="findSectionHeader"><a name="%s"></a>%s</h3>
		<table class="findList">
`, strings.ToLower(section.Header), section.Header)

		for i, row := range section.Rows {
			parity := "odd"
			if i%2 == 1 {
				parity = "even"
			}

			href := row.Href
			if href == "" {
				href = fmt.Sprintf("/title/%s/?ref_=fn_al_tt_%d", row.IMDBID, i+1)
			}

			titleHTML := fmt.Sprintf(`<a href="%s">%s</a>`, href, row.Title)
			if row.NoLink {
				titleHTML = row.Title
			}

			fmt.Fprintf(&sb, `			<tr class="findResult %s">
				<td class="primary_photo"><img src="https://m.media-amazon.com/images/%d.jpg" /></td>
				<td class="result_text"> %s %s </td>
			</tr>
`, parity, i, titleHTML, row.Extra)
		}

		sb.WriteString(`		</table>
		<div class="findMoreMatches">View: <a href="/find?s=tt">More title matches</a></div>
	</div>
`)
	}

	sb.WriteString(`</div>
</body>
</html>`)

	return sb.String()
}

// GenerateTitlesPageHTML is a shortcut for a find page holding only a
// Titles section.
func GenerateTitlesPageHTML(rows []SearchRowOptions) string {
	return GenerateFindPageHTML([]FindSectionOptions{{Header: "Titles", Rows: rows}})
}

// GenerateEmptyHTML generates a minimal HTML page with no sections
func GenerateEmptyHTML() string {
	return `<html><body><div id="main"><h1 class="findHeader">No results found for "zzzz"</h1></div></body></html>`
}
