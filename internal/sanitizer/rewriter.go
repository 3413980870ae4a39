package sanitizer

import "strings"

// Rewrite возвращает очищенный текст и список замен. Текст вне
// найденных URL не меняется: замены делаются по смещениям, а не поиском строки.
func (s *Sanitizer) Rewrite(text string) (string, []Change) {
	if text == "" {
		return text, nil
	}

	var (
		b       strings.Builder
		changes []Change
		last    int
	)
	for span := range Locate(text) {
		cleaned, ok := s.rewriteURL(span.Text)
		if !ok {
			continue
		}

		if changes == nil {
			b.Grow(len(text))
		}
		b.WriteString(text[last:span.Offset])
		b.WriteString(cleaned)
		last = span.End()

		changes = append(changes, Change{Offset: span.Offset, From: span.Text, To: cleaned})
	}

	if len(changes) == 0 {
		return text, nil
	}
	b.WriteString(text[last:])
	return b.String(), changes
}

// rewriteURL применяет правила к одному кандидату. false - оставить как есть:
// кандидат не разобрался или ничего не поменялось.
func (s *Sanitizer) rewriteURL(raw string) (string, bool) {
	u, err := Parse(raw)
	if err != nil {
		return "", false
	}

	changed := false
	for _, action := range s.actionsFor(u.Host) {
		if action.apply(u) {
			changed = true
		}
	}
	if !changed {
		return "", false
	}

	cleaned := u.String()
	return cleaned, cleaned != raw
}
