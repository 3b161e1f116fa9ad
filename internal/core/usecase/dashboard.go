package usecase

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"context"
)

type GetDashboardUseCase struct {
	gate  sessionGate
	admin port.PropertyAdminPort
}

func NewGetDashboardUseCase(store port.SessionStorePort, admin port.PropertyAdminPort) *GetDashboardUseCase {
	return &GetDashboardUseCase{gate: sessionGate{store: store}, admin: admin}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*domain.DashboardView, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetDashboard"})
	ucLogger.Info("Use case started", nil)

	session, err := uc.gate.require(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := uc.admin.GetDashboardStats(ctx, session)
	if err != nil {
		return nil, uc.gate.expire(ctx, ucLogger, err)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return &domain.DashboardView{Email: session.Email, Stats: *stats}, nil
}
