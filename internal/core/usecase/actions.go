package usecase

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"context"
	"errors"
	"fmt"
	"strings"
)

// openPlan открывает основную ссылку, если платформа ее поддерживает, иначе запасную.
// Возвращает фактически открытую ссылку.
func openPlan(ctx context.Context, opener port.LinkOpenerPort, plan domain.LinkPlan) (string, error) {
	target := plan.Primary
	if !opener.CanOpen(target) && plan.Fallback != "" {
		target = plan.Fallback
	}
	if !opener.CanOpen(target) {
		return "", &domain.LinkError{URL: target, Err: domain.ErrLinkUnavailable}
	}
	if err := opener.Open(ctx, target); err != nil {
		return "", &domain.LinkError{URL: target, Err: err}
	}
	return target, nil
}

type RequestVisitUseCase struct {
	leads port.LeadsPort
}

func NewRequestVisitUseCase(leads port.LeadsPort) *RequestVisitUseCase {
	return &RequestVisitUseCase{leads: leads}
}

// Execute отправляет заявку на просмотр. Имя и телефон обязательны после обрезки пробелов.
func (uc *RequestVisitUseCase) Execute(ctx context.Context, propertyID, name, phone string) (*domain.Lead, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "RequestVisit", "property_id": propertyID})
	ucLogger.Info("Use case started", nil)

	name, phone = strings.TrimSpace(name), strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return nil, domain.NewValidationError("", domain.MsgEnterNamePhone)
	}

	lead, err := uc.leads.CreateLead(ctx, domain.NewLead{
		PropertyID: propertyID,
		Name:       name,
		Phone:      phone,
		Message:    domain.VisitRequestText,
	})
	if err != nil {
		ucLogger.Error("Failed to submit visit request", err, nil)
		return nil, fmt.Errorf("failed to submit visit request: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"lead_id": lead.ID})
	return lead, nil
}

type ContactWhatsAppUseCase struct {
	opener   port.LinkOpenerPort
	platform domain.Platform
}

func NewContactWhatsAppUseCase(opener port.LinkOpenerPort, platform domain.Platform) *ContactWhatsAppUseCase {
	return &ContactWhatsAppUseCase{opener: opener, platform: platform}
}

// Execute открывает чат с агентством. Пустой title - общий вопрос с главной страницы.
// При неудаче LinkError.Fallback содержит контакты для ручной связи.
func (uc *ContactWhatsAppUseCase) Execute(ctx context.Context, title string) (string, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "ContactWhatsApp"})

	text := domain.GeneralInquiryText
	if title != "" {
		text = domain.ContactText(title)
	}

	opened, err := openPlan(ctx, uc.opener, domain.WhatsAppContact(uc.platform, text))
	if err != nil {
		ucLogger.Warn("Could not open WhatsApp", port.Fields{"error": err.Error()})
		var linkErr *domain.LinkError
		if errors.As(err, &linkErr) {
			linkErr.Fallback = domain.ManualContactMessage()
		}
		return "", err
	}
	ucLogger.Info("WhatsApp opened", port.Fields{"url": opened})
	return opened, nil
}

type ViewOnMapUseCase struct {
	opener   port.LinkOpenerPort
	platform domain.Platform
}

func NewViewOnMapUseCase(opener port.LinkOpenerPort, platform domain.Platform) *ViewOnMapUseCase {
	return &ViewOnMapUseCase{opener: opener, platform: platform}
}

func (uc *ViewOnMapUseCase) Execute(ctx context.Context, p domain.Property) (string, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "ViewOnMap", "property_id": p.ID})

	plan, err := domain.MapLink(uc.platform, p)
	if err != nil {
		return "", err
	}
	opened, err := openPlan(ctx, uc.opener, plan)
	if err != nil {
		ucLogger.Warn("Could not open maps", port.Fields{"error": err.Error()})
		return "", err
	}
	return opened, nil
}

type SharePropertyUseCase struct {
	opener port.LinkOpenerPort
}

func NewSharePropertyUseCase(opener port.LinkOpenerPort) *SharePropertyUseCase {
	return &SharePropertyUseCase{opener: opener}
}

// Execute отправляет карточку объекта в выбранный канал. Текст сообщения возвращается всегда,
// для ShareDetails ничего не открывается.
func (uc *SharePropertyUseCase) Execute(ctx context.Context, p domain.Property, channel domain.ShareChannel) (string, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "ShareProperty",
		"property_id": p.ID,
		"channel":     channel,
	})

	message := domain.ShareMessage(p)
	plan, err := domain.ShareLink(channel, p)
	if err != nil {
		return message, err
	}
	if plan.Primary == "" {
		return message, nil
	}

	if _, err := openPlan(ctx, uc.opener, plan); err != nil {
		ucLogger.Warn("Could not open share target", port.Fields{"error": err.Error()})
		return message, err
	}
	ucLogger.Info("Property shared", nil)
	return message, nil
}
