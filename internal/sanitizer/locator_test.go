package sanitizer

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []MatchSpan
	}{
		{
			name:     "no urls",
			input:    "just some words",
			expected: nil,
		},
		{
			name:     "with scheme",
			input:    "go https://example.com/a?b=c now",
			expected: []MatchSpan{{Text: "https://example.com/a?b=c", Offset: 3}},
		},
		{
			name:     "without scheme",
			input:    "open.spotify.com/track/1",
			expected: []MatchSpan{{Text: "open.spotify.com/track/1", Offset: 0}},
		},
		{
			name:  "two urls",
			input: "x.com/a y.org/b",
			expected: []MatchSpan{
				{Text: "x.com/a", Offset: 0},
				{Text: "y.org/b", Offset: 8},
			},
		},
		{
			name:     "trailing period",
			input:    "see https://example.com/a.",
			expected: []MatchSpan{{Text: "https://example.com/a", Offset: 4}},
		},
		{
			name:     "unbalanced paren",
			input:    "(https://example.com/a)",
			expected: []MatchSpan{{Text: "https://example.com/a", Offset: 1}},
		},
		{
			name:     "balanced paren kept",
			input:    "https://en.wikipedia.org/wiki/Go_(language)",
			expected: []MatchSpan{{Text: "https://en.wikipedia.org/wiki/Go_(language)", Offset: 0}},
		},
		{
			name:  "markdown links back to back",
			input: "[a](https://youtu.be/x?si=1)[b](https://example.com/keep)",
			expected: []MatchSpan{
				{Text: "https://youtu.be/x?si=1", Offset: 4},
				{Text: "https://example.com/keep", Offset: 32},
			},
		},
		{
			name:  "comma separated",
			input: "https://youtu.be/x?si=1,https://example.com/keep",
			expected: []MatchSpan{
				{Text: "https://youtu.be/x?si=1", Offset: 0},
				{Text: "https://example.com/keep", Offset: 24},
			},
		},
		{
			name:  "pipe separated",
			input: "https://google.com/search?q=a&ved=1|https://example.com",
			expected: []MatchSpan{
				{Text: "https://google.com/search?q=a&ved=1", Offset: 0},
				{Text: "https://example.com", Offset: 36},
			},
		},
		{
			name:     "nested url in query value",
			input:    "https://google.com/url?q=https://example.com/a",
			expected: []MatchSpan{{Text: "https://google.com/url?q=https://example.com/a", Offset: 0}},
		},
		{
			name:     "port",
			input:    "http://example.com:8080/x",
			expected: []MatchSpan{{Text: "http://example.com:8080/x", Offset: 0}},
		},
		{
			name:     "stops at quote",
			input:    `href="https://example.com/a"`,
			expected: []MatchSpan{{Text: "https://example.com/a", Offset: 6}},
		},
		{
			name:     "tld longer than six letters",
			input:    "docs.example.community",
			expected: nil,
		},
		{
			name:     "numbers are not hosts",
			input:    "pi is 3.14159",
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(Locate(tc.input))
			assert.Equal(t, tc.expected, got)
			for _, span := range got {
				assert.Equal(t, span.Text, tc.input[span.Offset:span.End()])
			}
		})
	}
}

func TestLocate_Restartable(t *testing.T) {
	seq := Locate("a.com b.com c.com")

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Len(t, first, 3)
	assert.Equal(t, first, second)
}

func TestLocate_StopsEarly(t *testing.T) {
	var got []MatchSpan
	for span := range Locate("a.com b.com c.com") {
		got = append(got, span)
		if len(got) == 2 {
			break
		}
	}

	require.Len(t, got, 2)
	assert.Equal(t, "b.com", got[1].Text)
}

func TestLocate_NonOverlappingLeftToRight(t *testing.T) {
	text := strings.Repeat("https://youtu.be/x?si=1 text ", 50)

	prevEnd := 0
	count := 0
	for span := range Locate(text) {
		assert.GreaterOrEqual(t, span.Offset, prevEnd)
		prevEnd = span.End()
		count++
	}
	assert.Equal(t, 50, count)
}

func TestCutTail(t *testing.T) {
	tests := map[string]string{
		"https://a.com/x)[b](https://b.com)": "https://a.com/x",
		"https://a.com/x]":                   "https://a.com/x",
		"https://a.com/(x)/y":                "https://a.com/(x)/y",
		"https://a.com/[x]":                  "https://a.com/[x]",
		"https://a.com/x,https://b.com":      "https://a.com/x,",
		"a.com/x;ftp://b.com":                "a.com/x;",
		"https://a.com/r?u=https://b.com":    "https://a.com/r?u=https://b.com",
		"https://a.com/x":                    "https://a.com/x",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, cutTail(input), input)
	}
}

func TestTrimTrailingPunctuation(t *testing.T) {
	tests := map[string]string{
		"https://a.com/x.":     "https://a.com/x",
		"https://a.com/x?!":    "https://a.com/x",
		"https://a.com/x),":    "https://a.com/x",
		"https://a.com/(x)":    "https://a.com/(x)",
		"https://a.com/[x]]":   "https://a.com/[x]",
		"https://a.com/x?a=1;": "https://a.com/x?a=1",
		"https://a.com/x|":     "https://a.com/x",
		"":                     "",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, trimTrailingPunctuation(input), input)
	}
}
