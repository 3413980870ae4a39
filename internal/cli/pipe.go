package cli

import (
	"fmt"
	"io"

	"clipboardCleanse/internal/sanitizer"
)

// Pipe читает весь ввод и пишет его очищенным. Возвращает число замененных URL.
func Pipe(cleaner *sanitizer.Sanitizer, r io.Reader, w io.Writer) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("чтение ввода: %w", err)
	}

	result, changes := cleaner.Rewrite(string(data))
	if _, err := io.WriteString(w, result); err != nil {
		return 0, fmt.Errorf("запись вывода: %w", err)
	}
	return len(changes), nil
}
