package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clipboardCleanse/internal/cli"
	"clipboardCleanse/internal/clipboard"
	"clipboardCleanse/internal/config"
	"clipboardCleanse/internal/logger"
	"clipboardCleanse/internal/sanitizer"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level, cfg.Logger.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log, err = logger.New(cfg.Logger.Env, "info", cfg.Logger.File)
		if err != nil {
			panic(err)
		}
		log.Error("Неверный уровень логирования в конфигурации", zap.String("level", cfg.Logger.Level))
	}
	defer log.Sync()

	log.Info("Загружена конфигурация",
		zap.String("path", cfg.Path),
		zap.String("log_level", cfg.Logger.Level),
		zap.String("log_file", cfg.Logger.File),
		zap.Duration("poll_interval", cfg.Clipboard.PollInterval),
		zap.Bool("strip_utm_campaign", cfg.Sanitizer.StripUTMCampaign),
		zap.Strings("extra_params", cfg.Sanitizer.ExtraParams),
	)

	cleaner := sanitizer.New(
		sanitizer.WithUTMCampaign(cfg.Sanitizer.StripUTMCampaign),
		sanitizer.WithExtraParams(cfg.Sanitizer.ExtraParams...),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mode := "watch"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "watch":
		watch(ctx, cfg, cleaner, log)

	case "console":
		cli.New(cleaner, log).Run(ctx)

	case "pipe":
		n, err := cli.Pipe(cleaner, os.Stdin, os.Stdout)
		if err != nil {
			log.Fatal("Ошибка обработки ввода", zap.Error(err))
		}
		log.Debug("Ввод очищен", zap.Int("urls", n))

	default:
		fmt.Fprintf(os.Stderr, "использование: %s [watch|console|pipe]\n", os.Args[0])
		os.Exit(2)
	}
}

func watch(ctx context.Context, cfg *config.Cfg, cleaner *sanitizer.Sanitizer, log *logger.Zap) {
	source, err := clipboard.NewSystem()
	if err != nil {
		log.Fatal("Буфер обмена недоступен", zap.Error(err))
	}

	w := clipboard.NewWatcher(source, cleaner, log.Logger, cfg.Clipboard.PollInterval)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Наблюдение за буфером обмена прервано", zap.Error(err))
	}
	log.Info("Завершение работы")
}
