package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPollInterval = 500 * time.Millisecond
	pathEnv             = "CLIPBOARD_CLEANSE_CONFIG"
)

type Cfg struct {
	Path      string
	Logger    Logger
	Clipboard Clipboard
	Sanitizer Sanitizer
}

type Logger struct {
	Env   string
	Level string
	File  string
}

type Clipboard struct {
	PollInterval time.Duration
}

type Sanitizer struct {
	StripUTMCampaign bool
	ExtraParams      []string
}

// defaults записываются в новый файл конфигурации
var defaults = map[string]string{
	"ENV":                   "dev",
	"LOG_LEVEL":             "info",
	"LOG_FILE":              "",
	"POLL_INTERVAL_MS":      "500",
	"STRIP_UTM_CAMPAIGN":    "true",
	"EXTRA_TRACKING_PARAMS": "",
}

// Load читает .env из рабочего каталога и пользовательский файл конфигурации.
// Переменные окружения процесса имеют приоритет над файлами.
func Load() (*Cfg, error) {
	_ = godotenv.Load()

	path, err := FilePath()
	if err != nil {
		return nil, err
	}
	if err := ensureFile(path); err != nil {
		return nil, err
	}
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
	}

	cfg := &Cfg{
		Path: path,
		Logger: Logger{
			Env:   env("ENV", "dev"),
			Level: env("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
		},
		Clipboard: Clipboard{
			PollInterval: envMillis("POLL_INTERVAL_MS", defaultPollInterval),
		},
		Sanitizer: Sanitizer{
			StripUTMCampaign: envBoolDefault("STRIP_UTM_CAMPAIGN", true),
			ExtraParams:      envList("EXTRA_TRACKING_PARAMS"),
		},
	}

	return cfg, nil
}

// FilePath возвращает путь к файлу конфигурации:
// $CLIPBOARD_CLEANSE_CONFIG или ~/.config/clipboard_cleanse/config.env
func FilePath() (string, error) {
	if p := os.Getenv(pathEnv); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("домашний каталог: %w", err)
	}
	return filepath.Join(home, ".config", "clipboard_cleanse", "config.env"), nil
}

// ensureFile создает файл с настройками по умолчанию, если его нет
func ensureFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("проверка %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("создание каталога конфигурации: %w", err)
	}
	if err := godotenv.Write(defaults, path); err != nil {
		return fmt.Errorf("запись конфигурации по умолчанию: %w", err)
	}
	return nil
}

func env(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envMillis(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Millisecond
		}
	}
	return defaultValue
}

func envBoolDefault(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultValue
}

func envList(key string) []string {
	var result []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
