// Package text provides the plain-text helpers used to parse delimiter
// separated parameter lists, wrap documentation strings to a column width,
// and scan names for embedded integers.
package text

import "strings"

// SplitList splits s at every occurrence of delimiter and trims leading and
// trailing whitespace from each piece. Empty pieces are kept, including those
// produced by adjacent delimiters, and a whitespace-only input yields a
// single empty piece. The empty string is the one exception and yields no
// pieces at all.
func SplitList(s, delimiter string) []string {
	if s == "" {
		return nil
	}

	var pieces []string
	for _, piece := range strings.Split(s, delimiter) {
		pieces = append(pieces, strings.TrimSpace(piece))
	}
	return pieces
}
