package clipboard

import (
	"context"
	"time"

	"clipboardCleanse/internal/sanitizer"

	"go.uber.org/zap"
)

const DefaultInterval = 500 * time.Millisecond

// Rewriter очищает текст и сообщает, какие URL были заменены
type Rewriter interface {
	Rewrite(text string) (string, []sanitizer.Change)
}

// Version - последнее увиденное содержимое буфера. Передается из опроса
// в опрос, чтобы не обрабатывать один и тот же текст дважды.
type Version struct {
	text string
	seen bool
}

func (v Version) Text() string {
	return v.text
}

type Watcher struct {
	source   Source
	cleaner  Rewriter
	log      *zap.Logger
	interval time.Duration
}

func NewWatcher(source Source, cleaner Rewriter, log *zap.Logger, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{
		source:   source,
		cleaner:  cleaner,
		log:      log,
		interval: interval,
	}
}

// Run опрашивает буфер обмена до отмены контекста
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Debug("Наблюдение за буфером обмена запущено", zap.Duration("interval", w.interval))

	var last Version
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Наблюдение за буфером обмена остановлено")
			return ctx.Err()
		case <-ticker.C:
			last = w.Poll(last)
		}
	}
}

// Poll выполняет одну проверку буфера и возвращает новую версию
func (w *Watcher) Poll(last Version) Version {
	text, err := w.source.ReadText()
	if err != nil {
		w.log.Warn("Не удалось прочитать буфер обмена", zap.Error(err))
		return last
	}
	if last.seen && text == last.text {
		return last
	}

	current := Version{text: text, seen: true}

	cleaned, changes := w.cleaner.Rewrite(text)
	if len(changes) == 0 {
		return current
	}

	if err := w.source.WriteText(cleaned); err != nil {
		w.log.Error("Не удалось записать очищенный текст в буфер обмена", zap.Error(err))
		return current
	}

	for _, c := range changes {
		w.log.Debug("URL очищен", zap.String("from", c.From), zap.String("to", c.To))
	}
	w.log.Info("Скопированный текст очищен", zap.Int("urls", len(changes)))

	return Version{text: cleaned, seen: true}
}
