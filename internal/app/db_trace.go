package app

import (
	"regexp"
	"strings"
)

// Span attributes should stay readable; anything longer than this is
// almost certainly a bulk insert whose tail adds no signal.
const tracedQueryLimit = 512

var collapseWhitespace = regexp.MustCompile(`\s+`)

// formatDBQueryForTrace flattens a query to a single line and caps its
// length before it is attached to a database span.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	flat := collapseWhitespace.ReplaceAllString(query, " ")
	if len(flat) <= tracedQueryLimit {
		return flat
	}

	return flat[:tracedQueryLimit] + "..."
}
