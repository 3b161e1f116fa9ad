package usecase

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"context"
	"fmt"
)

type AdminListPropertiesUseCase struct {
	gate    sessionGate
	catalog port.PropertyCatalogPort
}

func NewAdminListPropertiesUseCase(store port.SessionStorePort, catalog port.PropertyCatalogPort) *AdminListPropertiesUseCase {
	return &AdminListPropertiesUseCase{gate: sessionGate{store: store}, catalog: catalog}
}

// Execute - список объектов для управления. Пустой status - значение сервера по умолчанию.
func (uc *AdminListPropertiesUseCase) Execute(ctx context.Context, status domain.PropertyStatus) ([]domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "AdminListProperties", "status": status})
	ucLogger.Info("Use case started", nil)

	if _, err := uc.gate.require(ctx); err != nil {
		return nil, err
	}
	if status != "" && !status.Valid() {
		return nil, domain.NewValidationError("status", domain.MsgInvalidStatus)
	}

	properties, err := uc.catalog.ListProperties(ctx, domain.PropertyQuery{Status: status})
	if err != nil {
		ucLogger.Error("Failed to fetch properties", err, nil)
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(properties)})
	return properties, nil
}

type DeletePropertyUseCase struct {
	gate     sessionGate
	admin    port.PropertyAdminPort
	prompter port.PrompterPort
}

func NewDeletePropertyUseCase(store port.SessionStorePort, admin port.PropertyAdminPort, prompter port.PrompterPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{gate: sessionGate{store: store}, admin: admin, prompter: prompter}
}

// Execute удаляет объект после подтверждения. Отказ - domain.ErrConfirmationDeclined, запрос не отправляется.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id string) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "DeleteProperty", "property_id": id})
	ucLogger.Info("Use case started", nil)

	session, err := uc.gate.require(ctx)
	if err != nil {
		return err
	}

	ok, err := uc.prompter.Confirm(ctx, "Delete Property", domain.MsgConfirmDelete)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		ucLogger.Info("Deletion cancelled by user", nil)
		return domain.ErrConfirmationDeclined
	}

	if err := uc.admin.DeleteProperty(ctx, session, id); err != nil {
		ucLogger.Error("Failed to delete property", err, nil)
		return uc.gate.expire(ctx, ucLogger, err)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type PublishPropertyUseCase struct {
	gate     sessionGate
	admin    port.PropertyAdminPort
	prompter port.PrompterPort
}

func NewPublishPropertyUseCase(store port.SessionStorePort, admin port.PropertyAdminPort, prompter port.PrompterPort) *PublishPropertyUseCase {
	return &PublishPropertyUseCase{gate: sessionGate{store: store}, admin: admin, prompter: prompter}
}

// Execute публикует объект с последнего шага мастера.
// Без фото сначала спрашивает подтверждение. При любой ошибке состояние мастера не меняется.
func (uc *PublishPropertyUseCase) Execute(ctx context.Context, state domain.Step3) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":     "PublishProperty",
		"images_count": len(state.Media.Images),
	})
	ucLogger.Info("Use case started", nil)

	session, err := uc.gate.require(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := state.BuildPayload()
	if err != nil {
		return nil, err
	}

	if state.NeedsImageConfirmation() {
		ok, err := uc.prompter.Confirm(ctx, "No Images", domain.MsgPublishNoImages)
		if err != nil {
			return nil, fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			ucLogger.Info("Publishing cancelled by user", nil)
			return nil, domain.ErrConfirmationDeclined
		}
	}

	created, err := uc.admin.CreateProperty(ctx, session, payload)
	if err != nil {
		ucLogger.Error("Failed to publish property", err, nil)
		return nil, uc.gate.expire(ctx, ucLogger, err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": created.ID})
	return created, nil
}

type LoadPropertyForEditUseCase struct {
	gate    sessionGate
	catalog port.PropertyCatalogPort
}

func NewLoadPropertyForEditUseCase(store port.SessionStorePort, catalog port.PropertyCatalogPort) *LoadPropertyForEditUseCase {
	return &LoadPropertyForEditUseCase{gate: sessionGate{store: store}, catalog: catalog}
}

// Execute загружает объект и заполняет форму редактирования.
func (uc *LoadPropertyForEditUseCase) Execute(ctx context.Context, id string) (domain.EditForm, *domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "LoadPropertyForEdit", "property_id": id})

	if _, err := uc.gate.require(ctx); err != nil {
		return domain.EditForm{}, nil, err
	}

	p, err := uc.catalog.GetProperty(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to load property", err, nil)
		return domain.EditForm{}, nil, fmt.Errorf("failed to load property %s: %w", id, err)
	}
	return domain.PrefillEditForm(*p), p, nil
}

type UpdatePropertyUseCase struct {
	gate  sessionGate
	admin port.PropertyAdminPort
}

func NewUpdatePropertyUseCase(store port.SessionStorePort, admin port.PropertyAdminPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{gate: sessionGate{store: store}, admin: admin}
}

// Execute проверяет форму и отправляет частичное обновление.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id string, form domain.EditForm) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "UpdateProperty", "property_id": id})
	ucLogger.Info("Use case started", nil)

	session, err := uc.gate.require(ctx)
	if err != nil {
		return nil, err
	}

	update, err := form.BuildUpdate()
	if err != nil {
		return nil, err
	}

	updated, err := uc.admin.UpdateProperty(ctx, session, id, update)
	if err != nil {
		ucLogger.Error("Failed to update property", err, nil)
		return nil, uc.gate.expire(ctx, ucLogger, err)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
