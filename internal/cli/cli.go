package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"clipboardCleanse/internal/cli/commands"
	"clipboardCleanse/internal/cli/ui"
	"clipboardCleanse/internal/logger"
	"clipboardCleanse/internal/sanitizer"

	"github.com/chzyer/readline"
	"go.uber.org/zap"
)

type CLI struct {
	log             *logger.Zap
	rl              *readline.Instance
	in              *bufio.Reader
	out             io.Writer
	sanitizeHandler *commands.SanitizeHandler
}

func New(cleaner *sanitizer.Sanitizer, log *logger.Zap) *CLI {
	cli := newCLI(cleaner, log, os.Stdin, os.Stdout)

	// Инициализация readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".clipboard-cleanse-history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Warn("Не удалось инициализировать readline, будет использован fallback режим")
	} else {
		cli.rl = rl
	}

	return cli
}

func newCLI(cleaner *sanitizer.Sanitizer, log *logger.Zap, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		log:             log,
		in:              bufio.NewReader(in),
		out:             out,
		sanitizeHandler: commands.NewSanitizeHandler(cleaner, out, log.Logger),
	}
}

func (c *CLI) readLine() (string, error) {
	if c.rl != nil {
		return c.rl.Readline()
	}
	// Fallback для работы без readline
	fmt.Fprint(c.out, ui.ColorCyan+"> "+ui.ColorReset)
	line, err := c.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CLI) closeReadline() {
	if c.rl != nil {
		c.rl.Close()
	}
}

// Run читает строки, пока не введен exit, не закончился ввод или не отменен контекст
func (c *CLI) Run(ctx context.Context) {
	ui.PrintWelcome(c.out)
	defer c.closeReadline()

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out, "\n"+ui.ColorCyan+ui.IconWave+" Получен сигнал завершения..."+ui.ColorReset)
			return
		default:
		}

		line, err := c.readLine()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return
		} else if err != nil {
			c.log.Error("Ошибка чтения ввода", zap.Error(err))
			fmt.Fprintln(c.out, "\n"+ui.ColorRed+ui.IconCross+" Ошибка чтения ввода: "+err.Error()+ui.ColorReset)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !c.handleCommand(line) {
			return
		}
	}
}

// handleCommand возвращает false, когда пора выходить
func (c *CLI) handleCommand(line string) bool {
	switch line {
	case "exit":
		fmt.Fprintln(c.out, ui.ColorCyan+ui.IconWave+" До свидания!"+ui.ColorReset)
		return false

	case "clear":
		ui.ClearScreen(c.out)

	case "help":
		ui.PrintHelp(c.out)

	case "rules":
		c.sanitizeHandler.Rules()

	default:
		c.sanitizeHandler.Clean(line)
	}
	return true
}
