package ui

import (
	"fmt"
	"io"
)

// PrintWelcome выводит приветствие
func PrintWelcome(w io.Writer) {
	fmt.Fprintln(w, ColorBold+IconBroom+" Clipboard Cleanse"+ColorReset)
	fmt.Fprintln(w, ColorGray+"Убирает трекинговые параметры из ссылок в тексте"+ColorReset)
	fmt.Fprintln(w)
	PrintHelp(w)
}

// PrintHelp выводит список доступных команд
func PrintHelp(w io.Writer) {
	fmt.Fprintln(w, ColorYellow+IconList+" Доступные команды:"+ColorReset)
	fmt.Fprintln(w, "  "+ColorGreen+"<текст>"+ColorReset+"      - Очистить ссылки в тексте")
	fmt.Fprintln(w, "  "+ColorGreen+"rules"+ColorReset+"        - Таблица правил по доменам")
	fmt.Fprintln(w, "  "+ColorGreen+"clear"+ColorReset+"        - Очистить экран")
	fmt.Fprintln(w, "  "+ColorGreen+"help"+ColorReset+"         - Эта справка")
	fmt.Fprintln(w, "  "+ColorGreen+"exit"+ColorReset+"         - Выход")
	fmt.Fprintln(w)
}
