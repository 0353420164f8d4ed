package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// exoticQuotes are quote characters that show up when metadata is pasted from
// word processors or chat tools.
var exoticQuotes = map[rune]bool{
	'“': true, '”': true, '«': true, '»': true, '„': true,
	'‟': true, '❝': true, '❞': true, '＂': true,
}

var quoteNormalizer = runes.Map(func(r rune) rune {
	if exoticQuotes[r] {
		return '"'
	}
	return r
})

// NormalizeQuotes replaces typographic double quotes with ASCII double quotes.
func NormalizeQuotes(s string) string {
	out, _, err := transform.String(quoteNormalizer, s)
	if err != nil {
		return s
	}
	return out
}

// Truncate cuts s to at most max characters.
func Truncate(s string, max int) string {
	if max < 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// Dedupe returns items without repeats, keeping the first occurrence order.
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// TrailingSegments splits path on sep and returns its last n segments.
func TrailingSegments(path, sep string, n int) ([]string, error) {
	parts := strings.Split(path, sep)
	if len(parts) < n {
		return nil, fmt.Errorf("path %q has %d segments, need %d", path, len(parts), n)
	}
	return parts[len(parts)-n:], nil
}
