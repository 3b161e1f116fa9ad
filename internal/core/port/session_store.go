package port

import (
	"aimlink-client/internal/core/domain"
	"context"
)

// SessionStorePort - локальное хранилище токена администратора.
type SessionStorePort interface {
	// Load возвращает (nil, nil), если сессии нет.
	Load(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}
