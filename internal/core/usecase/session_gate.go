package usecase

import (
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"context"
	"errors"
	"fmt"
)

// sessionGate - общая для админских сценариев проверка сессии.
type sessionGate struct {
	store port.SessionStorePort
}

// require возвращает сохраненную сессию или domain.ErrNotAuthenticated.
func (g sessionGate) require(ctx context.Context) (domain.Session, error) {
	session, err := g.store.Load(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	if session.IsZero() {
		return domain.Session{}, domain.ErrNotAuthenticated
	}
	return *session, nil
}

// expire очищает сохраненную сессию, если сервер ответил 401.
// Ошибка возвращается как есть.
func (g sessionGate) expire(ctx context.Context, logger port.LoggerPort, err error) error {
	if !errors.Is(err, domain.ErrSessionExpired) {
		return err
	}
	logger.Warn("Session rejected by backend, clearing stored credentials", nil)
	if clearErr := g.store.Clear(ctx); clearErr != nil {
		logger.Error("Failed to clear expired session", clearErr, nil)
	}
	return err
}
