package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("системный буфер обмена недоступен")

// Source - буфер обмена, из которого читается и в который пишется текст
type Source interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System работает с буфером обмена ОС
type System struct{}

func NewSystem() (*System, error) {
	if clipboard.Unsupported {
		return nil, ErrUnavailable
	}
	return &System{}, nil
}

func (System) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("чтение буфера обмена: %w", err)
	}
	return text, nil
}

func (System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("запись в буфер обмена: %w", err)
	}
	return nil
}
