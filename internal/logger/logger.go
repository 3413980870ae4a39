package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap - логгер приложения. Обработчикам, которым нужен только *zap.Logger,
// передается поле Logger.
type Zap struct {
	*zap.Logger
}

// New создает логгер: env "prod" - JSON, иначе консольный вывод для разработки.
// Пишет в stderr; file, если задан, добавляется к выводу.
func New(env, level, file string) (*Zap, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if env == "prod" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if file != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, file)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("создание логгера: %w", err)
	}
	return &Zap{Logger: l}, nil
}

// ParseLevel принимает debug, info, warn/warning, error без учета регистра
func ParseLevel(level string) (zapcore.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return zapcore.InfoLevel, fmt.Errorf("неверный уровень логирования %q: ожидается debug, info, warning или error", level)
	}
	return zapcore.ParseLevel(level)
}

// Nop возвращает логгер, который ничего не пишет
func Nop() *Zap {
	return &Zap{Logger: zap.NewNop()}
}
