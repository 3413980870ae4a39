package sanitizer

import (
	"sort"
	"strings"
)

// Sanitizer находит URL в тексте и убирает из них трекинговые параметры.
// Не хранит изменяемого состояния, один экземпляр можно вызывать из
// нескольких горутин.
type Sanitizer struct {
	defaults StripParams
	rules    ruleTable
}

type options struct {
	stripCampaign bool
	extra         []string
}

type Option func(*options)

// WithUTMCampaign включает или выключает удаление utm_campaign
func WithUTMCampaign(strip bool) Option {
	return func(o *options) {
		o.stripCampaign = strip
	}
}

// WithExtraParams добавляет ключи к набору, который удаляется с любого домена
func WithExtraParams(keys ...string) Option {
	return func(o *options) {
		for _, key := range keys {
			if key = strings.TrimSpace(key); key != "" {
				o.extra = append(o.extra, key)
			}
		}
	}
}

func New(opts ...Option) *Sanitizer {
	o := options{stripCampaign: true}
	for _, opt := range opts {
		opt(&o)
	}

	defaults := make(StripParams, 0, len(defaultParams)+1+len(o.extra))
	defaults = append(defaults, defaultParams...)
	if o.stripCampaign {
		defaults = append(defaults, utmCampaign)
	}
	defaults = append(defaults, o.extra...)

	return &Sanitizer{
		defaults: defaults,
		rules:    newRuleTable(domainRules),
	}
}

var std = New()

// Sanitize очищает текст правилами по умолчанию
func Sanitize(text string) string {
	return std.Sanitize(text)
}

// Change описывает один переписанный URL
type Change struct {
	Offset int
	From   string
	To     string
}

func (s *Sanitizer) Sanitize(text string) string {
	result, _ := s.Rewrite(text)
	return result
}

// DefaultParams возвращает ключи, удаляемые с любого домена
func (s *Sanitizer) DefaultParams() []string {
	return append([]string(nil), s.defaults...)
}

// HostRule - строка таблицы правил для вывода пользователю
type HostRule struct {
	Host    string
	Actions []Action
}

// Rules возвращает таблицу правил, отсортированную по хосту
func (s *Sanitizer) Rules() []HostRule {
	result := make([]HostRule, 0, len(s.rules))
	for host, rule := range s.rules {
		result = append(result, HostRule{Host: host, Actions: rule.Actions})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Host < result[j].Host
	})
	return result
}

// actionsFor собирает действия заново для каждого URL: набор по умолчанию
// плюс правило домена. Ключи одного URL не влияют на другие.
func (s *Sanitizer) actionsFor(host string) []Action {
	actions := []Action{s.defaults}
	if rule, ok := s.rules.lookup(host); ok {
		actions = append(actions, rule.Actions...)
	}
	return actions
}
