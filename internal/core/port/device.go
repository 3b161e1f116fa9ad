package port

import (
	"aimlink-client/internal/core/domain"
	"context"
	"io"
)

// MapRendererPort отрисовывает объекты с координатами.
// Реализация выбирается при старте: терминал, GeoJSON или заглушка для web.
type MapRendererPort interface {
	Render(ctx context.Context, w io.Writer, properties []domain.Property) error
}

// LinkOpenerPort - доступ к обработчикам ссылок ОС (WhatsApp, карты, почта, SMS).
type LinkOpenerPort interface {
	CanOpen(rawURL string) bool
	Open(ctx context.Context, rawURL string) error
}

// PrompterPort - подтверждения действий пользователем.
type PrompterPort interface {
	Confirm(ctx context.Context, title, message string) (bool, error)
}
