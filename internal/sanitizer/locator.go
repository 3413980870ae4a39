package sanitizer

import (
	"iter"
	"regexp"
	"strings"
)

// MatchSpan - кандидат в URL и его смещение (в байтах) в исходном тексте
type MatchSpan struct {
	Text   string
	Offset int
}

// End возвращает смещение первого байта после кандидата
func (m MatchSpan) End() int {
	return m.Offset + len(m.Text)
}

// urlPattern: [scheme://]label.label.tld[:port][/?#tail]
// RE2 гарантирует линейное время, поэтому длинный буфер обмена не страшен.
var urlPattern = regexp.MustCompile(
	`(?:[a-zA-Z][a-zA-Z0-9+.\-]*://)?` +
		`(?:[\p{L}\p{N}](?:[\p{L}\p{N}\-]*[\p{L}\p{N}])?\.)+[a-zA-Z]{1,6}\b` +
		`(?::\d{1,5})?` +
		"(?:[/?#][^\\s<>\"'`]*)?",
)

// Locate лениво перечисляет кандидатов в URL слева направо.
// Кандидаты не пересекаются; последовательность можно обходить повторно.
func Locate(text string) iter.Seq[MatchSpan] {
	return func(yield func(MatchSpan) bool) {
		offset := 0
		for offset < len(text) {
			loc := urlPattern.FindStringIndex(text[offset:])
			if loc == nil {
				return
			}

			start := offset + loc[0]
			raw := cutTail(text[start : offset+loc[1]])
			candidate := trimTrailingPunctuation(raw)
			if candidate != "" {
				if !yield(MatchSpan{Text: candidate, Offset: start}) {
					return
				}
			}
			// остаток после обрезки сканируется заново: там может начинаться следующая ссылка
			offset = start + len(raw)
		}
	}
}

// cutTail обрезает совпадение на непарной закрывающей скобке и перед вторым
// "scheme://", если тот не стоит сразу после "=":
// "[a](https://a.com/x)[b](https://b.com)" -> "https://a.com/x".
// Вложенная ссылка в значении параметра ("?u=https://b.com") остается частью URL.
func cutTail(s string) string {
	parens, brackets := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			parens++
		case ')':
			if parens == 0 {
				return s[:i]
			}
			parens--
		case '[':
			brackets++
		case ']':
			if brackets == 0 {
				return s[:i]
			}
			brackets--
		case ':':
			if !strings.HasPrefix(s[i:], "://") {
				continue
			}
			start := schemeStart(s, i)
			if start > 0 && s[start-1] != '=' {
				return s[:start]
			}
		}
	}
	return s
}

// schemeStart возвращает начало схемы, которая заканчивается на s[colon]
func schemeStart(s string, colon int) int {
	i := colon
	for i > 0 && isSchemeChar(s[i-1]) {
		i--
	}
	for i < colon && !isASCIILetter(s[i]) {
		i++
	}
	if i == colon {
		return -1
	}
	return i
}

func isSchemeChar(c byte) bool {
	return isASCIILetter(c) || c >= '0' && c <= '9' || c == '+' || c == '.' || c == '-'
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// trimTrailingPunctuation отрезает знаки препинания, закрывающие предложение,
// и непарные закрывающие скобки: "(см. https://x.com/a)." -> "https://x.com/a"
func trimTrailingPunctuation(s string) string {
	for s != "" {
		last := s[len(s)-1]
		switch last {
		case '.', ',', '!', '?', ';', ':', '|':
			s = s[:len(s)-1]
			continue
		case ')':
			if strings.Count(s, "(") < strings.Count(s, ")") {
				s = s[:len(s)-1]
				continue
			}
		case ']':
			if strings.Count(s, "[") < strings.Count(s, "]") {
				s = s[:len(s)-1]
				continue
			}
		case '}':
			if strings.Count(s, "{") < strings.Count(s, "}") {
				s = s[:len(s)-1]
				continue
			}
		}
		break
	}
	return s
}
