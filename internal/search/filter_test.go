package search

import (
	"reflect"
	"strings"
	"testing"
)

func TestSearch_CaseSensitive(t *testing.T) {
	query := "Duct"
	content := "Rust:\nsafe, fast, productive.\nPick three.\nPick three.\nDuct tape."
	got := Search(query, content, true)
	if want := []string{"Duct tape."}; !reflect.DeepEqual(got, want) {
		t.Errorf("Search = %q, want %q", got, want)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	query := "DuCt"
	content := "Rust:\nsafe, fast, productive.\nPick three."
	got := Search(query, content, false)
	if want := []string{"safe, fast, productive."}; !reflect.DeepEqual(got, want) {
		t.Errorf("Search = %q, want %q", got, want)
	}
}

func TestSearch_KeepsOrderAndDuplicates(t *testing.T) {
	content := "b one\na\nb two\nb one\n"
	got := Search("b", content, true)
	want := []string{"b one", "b two", "b one"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search = %q, want %q", got, want)
	}
}

func TestSearch_EmptyQueryMatchesEveryLine(t *testing.T) {
	content := "alpha\n\nBeta\r\ngamma"
	want := []string{"alpha", "", "Beta", "gamma"}
	for _, caseSensitive := range []bool{true, false} {
		got := Search("", content, caseSensitive)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("caseSensitive=%v: Search = %q, want %q", caseSensitive, got, want)
		}
	}
}

func TestSearch_NoMatches(t *testing.T) {
	if got := Search("zebra", "Rust:\nPick three.", true); len(got) != 0 {
		t.Errorf("Search = %q, want none", got)
	}
	if got := Search("x", "", false); len(got) != 0 {
		t.Errorf("Search on empty content = %q, want none", got)
	}
}

func TestSearch_CaseSensitiveIsExact(t *testing.T) {
	content := "Rust:\nTrust me.\nrusty"
	got := Search("rust", content, true)
	if want := []string{"Trust me.", "rusty"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Search = %q, want %q", got, want)
	}
}

func TestSearch_InsensitiveEqualsFoldedSensitive(t *testing.T) {
	content := "Rust:\nsafe, FAST, productive.\nTrust me.\nÜber ALLES\nstraße"
	queries := []string{"rust", "FaSt", "über", "E.", "STRASSE", "", "ß"}
	folded := strings.ToLower(content)
	for _, q := range queries {
		got := Search(q, content, false)
		ref := Search(strings.ToLower(q), folded, true)
		if len(got) != len(ref) {
			t.Fatalf("query %q: %d matches, folded reference has %d", q, len(got), len(ref))
		}
		for i := range got {
			if strings.ToLower(got[i]) != ref[i] {
				t.Errorf("query %q: match %d = %q, reference %q", q, i, got[i], ref[i])
			}
		}
	}
}

func TestSearch_ReturnsOriginalCasing(t *testing.T) {
	got := Search("über", "ÜBER ALLES\nnothing", false)
	if want := []string{"ÜBER ALLES"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Search = %q, want %q", got, want)
	}
}

func TestSearch_ResultIsSubsequenceOfLines(t *testing.T) {
	content := "a1\nb2\na3\r\nc4\na5"
	lines := Lines(content)
	got := Search("a", content, true)
	j := 0
	for _, m := range got {
		for j < len(lines) && lines[j] != m {
			j++
		}
		if j == len(lines) {
			t.Fatalf("match %q is not in order within %q", m, lines)
		}
		j++
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single no newline", "abc", []string{"abc"}},
		{"trailing newline", "abc\n", []string{"abc"}},
		{"only newline", "\n", []string{""}},
		{"blank middle", "a\n\nb", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr kept", "a\rb\nc\r", []string{"a\rb", "c\r"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}
