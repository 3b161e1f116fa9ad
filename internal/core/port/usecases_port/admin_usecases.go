package usecases_port

import (
	"aimlink-client/internal/core/domain"
	"context"
)

type AdminListPropertiesUseCasePort interface {
	Execute(ctx context.Context, status domain.PropertyStatus) ([]domain.Property, error)
}

type DeletePropertyUseCasePort interface {
	Execute(ctx context.Context, id string) error
}

type PublishPropertyUseCasePort interface {
	Execute(ctx context.Context, state domain.Step3) (*domain.Property, error)
}

type LoadPropertyForEditUseCasePort interface {
	Execute(ctx context.Context, id string) (domain.EditForm, *domain.Property, error)
}

type UpdatePropertyUseCasePort interface {
	Execute(ctx context.Context, id string, form domain.EditForm) (*domain.Property, error)
}

type ListLeadsUseCasePort interface {
	Execute(ctx context.Context, status domain.LeadStatus) ([]domain.Lead, error)
}

type UpdateLeadStatusUseCasePort interface {
	Execute(ctx context.Context, id string, target, filter domain.LeadStatus) ([]domain.Lead, error)
}
