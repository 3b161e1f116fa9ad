package deeplink

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/port"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

// schemeSet - схемы ссылок, обработчики которых есть на устройстве.
type schemeSet map[string]struct{}

func newSchemeSet(schemes []string) schemeSet {
	set := make(schemeSet, len(schemes))
	for _, s := range schemes {
		s = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), ":"))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

func (s schemeSet) allows(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return false
	}
	_, ok := s[strings.ToLower(u.Scheme)]
	return ok
}

// BrowserOpener передает ссылку обработчику ОС.
type BrowserOpener struct {
	schemes schemeSet
	open    func(string) error
}

var _ port.LinkOpenerPort = (*BrowserOpener)(nil)

func NewBrowserOpener(schemes []string) *BrowserOpener {
	return &BrowserOpener{schemes: newSchemeSet(schemes), open: browser.OpenURL}
}

func (o *BrowserOpener) CanOpen(rawURL string) bool {
	return o.schemes.allows(rawURL)
}

func (o *BrowserOpener) Open(ctx context.Context, rawURL string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Debug("Opening link", port.Fields{"url": rawURL})
	if err := o.open(rawURL); err != nil {
		return fmt.Errorf("failed to open %s: %w", rawURL, err)
	}
	return nil
}

// PrintOpener печатает ссылку вместо открытия. Подходит для headless окружений.
type PrintOpener struct {
	schemes schemeSet
	out     io.Writer
}

var _ port.LinkOpenerPort = (*PrintOpener)(nil)

func NewPrintOpener(out io.Writer, schemes []string) *PrintOpener {
	return &PrintOpener{schemes: newSchemeSet(schemes), out: out}
}

func (o *PrintOpener) CanOpen(rawURL string) bool {
	return o.schemes.allows(rawURL)
}

func (o *PrintOpener) Open(_ context.Context, rawURL string) error {
	_, err := fmt.Fprintf(o.out, "Open: %s\n", rawURL)
	return err
}

// New выбирает реализацию по имени из конфигурации.
func New(name string, out io.Writer, schemes []string) (port.LinkOpenerPort, error) {
	switch name {
	case "", "browser":
		return NewBrowserOpener(schemes), nil
	case "print":
		return NewPrintOpener(out, schemes), nil
	default:
		return nil, fmt.Errorf("unknown link opener: %q", name)
	}
}
