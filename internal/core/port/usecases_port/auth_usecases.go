package usecases_port

import (
	"aimlink-client/internal/core/domain"
	"context"
)

type LoginUseCasePort interface {
	Execute(ctx context.Context, email, password string) (*domain.Session, error)
}

type LogoutUseCasePort interface {
	Execute(ctx context.Context) error
}

type CurrentSessionUseCasePort interface {
	Execute(ctx context.Context) (*domain.Session, error)
}

type GetDashboardUseCasePort interface {
	Execute(ctx context.Context) (*domain.DashboardView, error)
}
