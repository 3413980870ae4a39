package commands

import (
	"fmt"
	"io"

	"clipboardCleanse/internal/cli/ui"
	"clipboardCleanse/internal/sanitizer"

	"go.uber.org/zap"
)

// SanitizeHandler обрабатывает текст, введенный в консоли
type SanitizeHandler struct {
	cleaner *sanitizer.Sanitizer
	out     io.Writer
	log     *zap.Logger
}

func NewSanitizeHandler(cleaner *sanitizer.Sanitizer, out io.Writer, log *zap.Logger) *SanitizeHandler {
	return &SanitizeHandler{
		cleaner: cleaner,
		out:     out,
		log:     log,
	}
}

// Clean очищает строку и показывает, какие ссылки изменились
func (h *SanitizeHandler) Clean(text string) {
	result, changes := h.cleaner.Rewrite(text)
	if len(changes) == 0 {
		fmt.Fprintln(h.out, ui.ColorGray+ui.IconCheckmark+" Трекинговых параметров не найдено"+ui.ColorReset)
		return
	}

	h.log.Debug("Текст очищен в консоли", zap.Int("urls", len(changes)))

	fmt.Fprintf(h.out, ui.ColorCyan+ui.IconLink+" Очищено ссылок: %d"+ui.ColorReset+"\n", len(changes))
	for _, c := range changes {
		ui.PrintChange(h.out, c)
	}
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, result)
}

// Rules выводит параметры по умолчанию и таблицу доменов
func (h *SanitizeHandler) Rules() {
	fmt.Fprint(h.out, "\n"+ui.ColorBold+"=== "+ui.IconList+" Правила ==="+ui.ColorReset+"\n")
	ui.PrintRule(h.out, sanitizer.HostRule{
		Host:    "*",
		Actions: []sanitizer.Action{sanitizer.StripParams(h.cleaner.DefaultParams())},
	})
	for _, rule := range h.cleaner.Rules() {
		ui.PrintRule(h.out, rule)
	}
	fmt.Fprintln(h.out)
}
