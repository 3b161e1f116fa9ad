package usecase

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"context"
	"fmt"
	"strings"
)

type LoginUseCase struct {
	auth  port.AuthPort
	store port.SessionStorePort
}

func NewLoginUseCase(auth port.AuthPort, store port.SessionStorePort) *LoginUseCase {
	return &LoginUseCase{auth: auth, store: store}
}

// Execute выполняет вход и сохраняет токен. При ошибке сохраненная сессия не меняется.
func (uc *LoginUseCase) Execute(ctx context.Context, email, password string) (*domain.Session, error) {
	email = strings.TrimSpace(email)
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Login",
		"email":    email,
	})
	ucLogger.Info("Use case started", nil)

	if email == "" || password == "" {
		return nil, domain.NewValidationError("", domain.MsgEnterCredentials)
	}

	session, err := uc.auth.Login(ctx, email, password)
	if err != nil {
		ucLogger.Warn("Login rejected", port.Fields{"error": err.Error()})
		return nil, err
	}
	if session.Email == "" {
		session.Email = email
	}

	if err := uc.store.Save(ctx, *session); err != nil {
		ucLogger.Error("Failed to persist session", err, nil)
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return session, nil
}

type LogoutUseCase struct {
	store port.SessionStorePort
}

func NewLogoutUseCase(store port.SessionStorePort) *LogoutUseCase {
	return &LogoutUseCase{store: store}
}

func (uc *LogoutUseCase) Execute(ctx context.Context) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "Logout"})
	if err := uc.store.Clear(ctx); err != nil {
		ucLogger.Error("Failed to clear session", err, nil)
		return err
	}
	ucLogger.Info("Admin logged out", nil)
	return nil
}

// CurrentSessionUseCase - кто сейчас авторизован. (nil, nil), если никто.
type CurrentSessionUseCase struct {
	store port.SessionStorePort
}

func NewCurrentSessionUseCase(store port.SessionStorePort) *CurrentSessionUseCase {
	return &CurrentSessionUseCase{store: store}
}

func (uc *CurrentSessionUseCase) Execute(ctx context.Context) (*domain.Session, error) {
	return uc.store.Load(ctx)
}
