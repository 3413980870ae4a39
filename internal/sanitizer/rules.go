package sanitizer

import (
	"fmt"
	"strings"
)

// Action - одно действие очистки URL. Возвращает true, если URL изменился.
type Action interface {
	fmt.Stringer
	apply(u *ParsedURL) bool
}

// StripParams удаляет параметры запроса по ключу (без учета регистра).
// Ключ, оканчивающийся на "*", сравнивается по префиксу: "pd_rd_*".
type StripParams []string

func (s StripParams) matches(name string) bool {
	for _, key := range s {
		key = strings.ToLower(key)
		if prefix, ok := strings.CutSuffix(key, "*"); ok {
			if strings.HasPrefix(name, prefix) {
				return true
			}
			continue
		}
		if name == key {
			return true
		}
	}
	return false
}

func (s StripParams) apply(u *ParsedURL) bool {
	if len(u.Query) == 0 {
		return false
	}

	kept := make([]QueryPair, 0, len(u.Query))
	removed := false
	for _, pair := range u.Query {
		if s.matches(pair.Name) {
			removed = true
			continue
		}
		// пустые куски вроде "a=1&&b=2" выбрасываем, чтобы не оставлять "?&"
		if pair.Key == "" && !pair.HasValue {
			continue
		}
		kept = append(kept, pair)
	}

	if !removed {
		return false
	}
	u.Query = kept
	return true
}

func (s StripParams) String() string {
	return "параметры: " + strings.Join(s, ", ")
}

// TrimPathSegment отбрасывает последний сегмент пути, если он начинается с Prefix.
// Повторяется, пока последний сегмент подходит: "/dp/X/ref=a/ref=b" -> "/dp/X".
type TrimPathSegment struct {
	Prefix string
}

func (t TrimPathSegment) apply(u *ParsedURL) bool {
	trimmed := false
	for n := len(u.Segments); n >= 2 && strings.HasPrefix(u.Segments[n-1], t.Prefix); n-- {
		if n == 2 {
			// корневой "/" остается: "/ref=x" -> "/"
			u.Segments = []string{"", ""}
			return true
		}
		u.Segments = u.Segments[:n-1]
		trimmed = true
	}
	return trimmed
}

func (t TrimPathSegment) String() string {
	return "сегмент пути: /" + t.Prefix + "…"
}

// DomainRule связывает набор хостов с действиями очистки
type DomainRule struct {
	Hosts   []string
	Actions []Action
}

// defaultParams удаляются с любого домена
var defaultParams = []string{
	"utm_source",
	"utm_medium",
	"utm_name",
	"utm_term",
	"utm_content",
}

const utmCampaign = "utm_campaign"

var amazonHosts = []string{
	"amazon.com",
	"smile.amazon.com",
	"amazon.ca",
	"amazon.co.uk",
	"amazon.de",
	"amazon.fr",
	"amazon.it",
	"amazon.es",
	"amazon.co.jp",
	"amazon.in",
	"amazon.com.au",
}

var domainRules = []DomainRule{
	{
		Hosts:   []string{"youtu.be", "youtube.com", "m.youtube.com", "music.youtube.com"},
		Actions: []Action{StripParams{"si"}},
	},
	{
		Hosts:   []string{"open.spotify.com"},
		Actions: []Action{StripParams{"si"}},
	},
	{
		Hosts: amazonHosts,
		Actions: []Action{
			StripParams{
				"crid", "dib", "dib_tag", "keywords", "qid", "sprefix", "sr",
				"pd_rd_*", "pf_rd_*",
				"linkCode", "tag", "linkId", "geniuslink",
				"ref", "ref_", "content-id", "psc", "th",
			},
			TrimPathSegment{Prefix: "ref="},
		},
	},
	{
		Hosts: []string{"google.com"},
		Actions: []Action{StripParams{
			"gs_lcrp", "gs_lp", "sca_esv", "ei", "iflsig", "sclient", "rlz",
			"bih", "biw", "dpr", "ved", "sa", "fbs", "source", "sourceid",
		}},
	},
	{
		Hosts:   []string{"instagram.com"},
		Actions: []Action{StripParams{"igsh", "igshid"}},
	},
	{
		Hosts:   []string{"x.com", "twitter.com", "mobile.twitter.com"},
		Actions: []Action{StripParams{"t", "s"}},
	},
	{
		Hosts: []string{"ebay.com"},
		Actions: []Action{StripParams{
			"_trksid", "mkcid", "mkevt", "mkrid", "ssspo", "sssrc", "ssuid",
			"widget_ver", "media",
		}},
	},
	{
		Hosts:   []string{"walmart.com"},
		Actions: []Action{StripParams{"sid", "from"}},
	},
}

// ruleTable - индекс правил по нормализованному хосту. После построения
// только читается, поэтому безопасен для конкурентного использования.
type ruleTable map[string]*DomainRule

func newRuleTable(rules []DomainRule) ruleTable {
	table := make(ruleTable)
	for i := range rules {
		rule := &rules[i]
		for _, host := range rule.Hosts {
			table[normalizeHost(host)] = rule
		}
	}
	return table
}

func (t ruleTable) lookup(host string) (*DomainRule, bool) {
	rule, ok := t[normalizeHost(host)]
	return rule, ok
}
