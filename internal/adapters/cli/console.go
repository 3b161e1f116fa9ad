package cli

import (
	"aimlink-client/internal/core/port"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console - ввод и вывод интерактивных экранов.
// Одно и то же чтение stdin используется мастером и подтверждениями.
type Console struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

var _ port.PrompterPort = (*Console)(nil)

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// SetAssumeYes включает автоматическое подтверждение (флаг --yes).
func (c *Console) SetAssumeYes(v bool) {
	c.assumeYes = v
}

func (c *Console) Out() io.Writer {
	return c.out
}

func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask показывает вопрос и возвращает ответ. Пустой ответ - значение по умолчанию.
func (c *Console) Ask(ctx context.Context, label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(c.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(c.out, "%s: ", label)
	}
	answer, err := c.readLine(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", label, err)
	}
	if strings.TrimSpace(answer) == "" {
		return def, nil
	}
	return answer, nil
}

// Choose - выбор одного значения из списка. Принимает номер или само значение.
func (c *Console) Choose(ctx context.Context, label string, options []string, def string) (string, error) {
	for {
		fmt.Fprintf(c.out, "%s (%s)", label, strings.Join(options, " / "))
		answer, err := c.Ask(ctx, "", def)
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		for i, opt := range options {
			if strings.EqualFold(answer, opt) || answer == fmt.Sprint(i+1) {
				return opt, nil
			}
		}
		fmt.Fprintf(c.out, "Unknown option %q\n", answer)
	}
}

// Confirm реализует диалог подтверждения "Cancel / OK".
func (c *Console) Confirm(ctx context.Context, title, message string) (bool, error) {
	if c.assumeYes {
		return true, nil
	}
	fmt.Fprintf(c.out, "%s\n%s [y/N]: ", title, message)
	answer, err := c.readLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "ok":
		return true, nil
	default:
		return false, nil
	}
}
