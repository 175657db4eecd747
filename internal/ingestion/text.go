// Package ingestion normalizes raw job text and prepares it for prompting.
package ingestion

import (
	"regexp"
	"strings"
	"unicode"
)

// tagPattern matches markup-like tag sequences, non-greedy.
var tagPattern = regexp.MustCompile(`<[^<]+?>`)

// CleanText normalizes raw text: tags are stripped, whitespace runs collapse to
// single spaces, non-printable runes are dropped, line endings are normalized and
// runs of three or more newlines are reduced to two. It never fails.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}

	// 1. Remove tags
	text := tagPattern.ReplaceAllString(raw, "")

	// 2. Collapse whitespace (reads the tag-stripped text)
	text = strings.Join(strings.Fields(text), " ")

	// 3. Drop non-printable characters
	text = strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)

	// 4. Normalize line endings
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// 5. Remove excessive line breaks
	text = removeExcessiveBlankLines(text)

	return strings.TrimSpace(text)
}

// removeExcessiveBlankLines reduces consecutive newlines to at most two.
func removeExcessiveBlankLines(content string) string {
	for strings.Contains(content, "\n\n\n") {
		content = strings.ReplaceAll(content, "\n\n\n", "\n\n")
	}
	return content
}
