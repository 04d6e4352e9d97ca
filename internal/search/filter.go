package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines splits content into lines. "\n" and "\r\n" both end a line and
// are not part of it. A trailing line ending does not start a new,
// empty line.
func Lines(content string) []string {
	var out []string
	for line := range strings.Lines(content) {
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		out = append(out, line)
	}
	return out
}

// Search returns the lines of content that contain query, in file order.
// When caseSensitive is false both sides are lower-cased before the
// comparison, but the original line is returned. The returned strings
// share memory with content.
func Search(query, content string, caseSensitive bool) []string {
	lines := Lines(content)
	if caseSensitive {
		return filter(lines, func(line string) bool {
			return strings.Contains(line, query)
		})
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(query)
	return filter(lines, func(line string) bool {
		return strings.Contains(lower.String(line), needle)
	})
}

func filter(lines []string, keep func(string) bool) []string {
	var out []string
	for _, line := range lines {
		if keep(line) {
			out = append(out, line)
		}
	}
	return out
}
