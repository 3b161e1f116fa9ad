package usecase

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"context"
)

type ListLeadsUseCase struct {
	gate  sessionGate
	leads port.LeadsPort
}

func NewListLeadsUseCase(store port.SessionStorePort, leads port.LeadsPort) *ListLeadsUseCase {
	return &ListLeadsUseCase{gate: sessionGate{store: store}, leads: leads}
}

// Execute - заявки с фильтром по статусу. Пустой статус - все заявки.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, status domain.LeadStatus) ([]domain.Lead, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "ListLeads", "status": status})
	ucLogger.Info("Use case started", nil)

	if status != "" && !status.Valid() {
		return nil, domain.NewValidationError("status", domain.MsgInvalidStatus)
	}
	session, err := uc.gate.require(ctx)
	if err != nil {
		return nil, err
	}

	leads, err := uc.leads.ListLeads(ctx, session, status)
	if err != nil {
		ucLogger.Error("Failed to fetch leads", err, nil)
		return nil, uc.gate.expire(ctx, ucLogger, err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(leads)})
	return leads, nil
}

type UpdateLeadStatusUseCase struct {
	gate  sessionGate
	leads port.LeadsPort
}

func NewUpdateLeadStatusUseCase(store port.SessionStorePort, leads port.LeadsPort) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{gate: sessionGate{store: store}, leads: leads}
}

// Execute меняет статус заявки и перечитывает список с текущим фильтром.
// Направление перехода не ограничивается, проверяется только допустимость статуса.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, id string, target, filter domain.LeadStatus) ([]domain.Lead, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "UpdateLeadStatus",
		"lead_id":  id,
		"target":   target,
	})
	ucLogger.Info("Use case started", nil)

	if !target.Valid() {
		return nil, domain.NewValidationError("status", domain.MsgInvalidStatus)
	}
	session, err := uc.gate.require(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := uc.leads.UpdateLeadStatus(ctx, session, id, target); err != nil {
		ucLogger.Error("Failed to update lead status", err, nil)
		return nil, uc.gate.expire(ctx, ucLogger, err)
	}

	leads, err := uc.leads.ListLeads(ctx, session, filter)
	if err != nil {
		ucLogger.Error("Failed to refresh leads", err, nil)
		return nil, uc.gate.expire(ctx, ucLogger, err)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return leads, nil
}
