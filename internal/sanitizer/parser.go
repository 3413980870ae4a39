package sanitizer

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

var errNotURL = errors.New("не похоже на URL")

// QueryPair хранит параметр запроса в исходном (экранированном) виде.
// Name - раскодированный ключ в нижнем регистре, по нему ищутся правила.
type QueryPair struct {
	Key      string
	Value    string
	HasValue bool
	Name     string
}

func (p QueryPair) String() string {
	if !p.HasValue {
		return p.Key
	}
	return p.Key + "=" + p.Value
}

// ParsedURL - разобранный кандидат. Все поля, кроме Host, содержат байты
// исходного текста без перекодирования, чтобы String() без изменений
// возвращал то же, что было на входе.
type ParsedURL struct {
	Scheme      string
	Authority   string
	Host        string
	Segments    []string
	Query       []QueryPair
	Fragment    string
	HasFragment bool
}

// Parse разбирает кандидат как абсолютный URL. Если схемы нет,
// для проверки подставляется https://, но в Scheme она не попадает.
func Parse(raw string) (*ParsedURL, error) {
	p := &ParsedURL{}
	rest := raw

	if i := strings.Index(rest, "://"); i > 0 && isScheme(rest[:i]) {
		p.Scheme = rest[:i]
		rest = rest[i+3:]
	}

	full := raw
	if p.Scheme == "" {
		full = "https://" + raw
	}
	u, err := url.Parse(full)
	if err != nil {
		return nil, fmt.Errorf("разбор %q: %w", raw, err)
	}
	if u.Hostname() == "" || u.Opaque != "" {
		return nil, errNotURL
	}
	p.Host = normalizeHost(u.Hostname())

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		p.Fragment = rest[i+1:]
		p.HasFragment = true
		rest = rest[:i]
	}

	var rawQuery string
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rawQuery = rest[i+1:]
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, '/'); i >= 0 {
		p.Authority = rest[:i]
		p.Segments = strings.Split(rest[i:], "/")
	} else {
		p.Authority = rest
	}

	if rawQuery != "" {
		p.Query, err = parseQuery(rawQuery)
		if err != nil {
			return nil, fmt.Errorf("разбор запроса %q: %w", raw, err)
		}
	}

	return p, nil
}

func parseQuery(raw string) ([]QueryPair, error) {
	pieces := strings.Split(raw, "&")
	pairs := make([]QueryPair, 0, len(pieces))
	for _, piece := range pieces {
		pair := QueryPair{Key: piece}
		if i := strings.IndexByte(piece, '='); i >= 0 {
			pair.Key, pair.Value, pair.HasValue = piece[:i], piece[i+1:], true
		}

		name, err := url.QueryUnescape(pair.Key)
		if err != nil {
			return nil, err
		}
		if _, err := url.QueryUnescape(pair.Value); err != nil {
			return nil, err
		}
		pair.Name = strings.ToLower(name)

		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// String собирает URL обратно. Схема выводится, только если была в исходнике;
// пустой запрос опускается вместе с "?".
func (u *ParsedURL) String() string {
	var b strings.Builder
	if u.Scheme != "" {
		b.WriteString(u.Scheme)
		b.WriteString("://")
	}
	b.WriteString(u.Authority)
	b.WriteString(strings.Join(u.Segments, "/"))

	if len(u.Query) > 0 {
		b.WriteByte('?')
		for i, pair := range u.Query {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(pair.String())
		}
	}

	if u.HasFragment {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}
	return b.String()
}

// normalizeHost приводит хост к ключу таблицы правил: нижний регистр,
// punycode, без завершающей точки и без "www.".
func normalizeHost(host string) string {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if ascii, err := idna.ToASCII(host); err == nil {
		host = strings.ToLower(ascii)
	}
	return strings.TrimPrefix(host, "www.")
}

func isScheme(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return s != ""
}
