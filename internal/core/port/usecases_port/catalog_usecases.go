package usecases_port

import (
	"aimlink-client/internal/core/domain"
	"context"
	"io"
)

type HomeCatalogUseCasePort interface {
	Execute(ctx context.Context, query string) (*domain.CatalogView, error)
}

type ListingsUseCasePort interface {
	Execute(ctx context.Context, req domain.ListingsRequest) ([]domain.Property, error)
}

type MapViewUseCasePort interface {
	// Возвращает количество объектов на карте
	Execute(ctx context.Context, w io.Writer) (int, error)
}

type PropertyDetailUseCasePort interface {
	Execute(ctx context.Context, id string) (*domain.Property, error)
}

type RequestVisitUseCasePort interface {
	Execute(ctx context.Context, propertyID, name, phone string) (*domain.Lead, error)
}

type ContactWhatsAppUseCasePort interface {
	Execute(ctx context.Context, title string) (string, error)
}

type ViewOnMapUseCasePort interface {
	Execute(ctx context.Context, p domain.Property) (string, error)
}

type SharePropertyUseCasePort interface {
	Execute(ctx context.Context, p domain.Property, channel domain.ShareChannel) (string, error)
}
