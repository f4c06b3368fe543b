// Package answers holds the canned answers returned for well-known questions
// without consulting a generator.
package answers

import (
	"sort"
	"strings"
)

// Lookup returns the canned answer for question. Matching is exact after
// lower-casing; whitespace and punctuation are significant.
func Lookup(question string) (string, bool) {
	a, ok := table[strings.ToLower(question)]
	return a, ok
}

// Keys returns the canonical questions in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
