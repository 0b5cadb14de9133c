package volumes

import (
	"net/url"
	"strings"
)

// BuildTerm builds the escaped q parameter for a search.
//
//	query only:      {query}
//	query and genre: {query}+subject:{genre}
//	genre only:      subject:{genre}
//
// ok is false when both inputs are empty; no request should be made.
func BuildTerm(query, genre string) (term string, ok bool) {
	switch {
	case query != "" && genre != "":
		return escapeComponent(query) + "+subject:" + escapeComponent(genre), true
	case query != "":
		return escapeComponent(query), true
	case genre != "":
		return "subject:" + escapeComponent(genre), true
	default:
		return "", false
	}
}

// escapeComponent escapes s for use inside a query value. Spaces become
// %20 so the literal "+" separating the subject constraint stays unambiguous.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
