package usecase

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/domain"
	"aimlink-client/internal/core/port"
	"context"
	"fmt"
	"io"
	"strings"
)

type HomeCatalogUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewHomeCatalogUseCase(catalog port.PropertyCatalogPort) *HomeCatalogUseCase {
	return &HomeCatalogUseCase{catalog: catalog}
}

// Execute: первые 6 активных объектов, затем текстовый фильтр.
func (uc *HomeCatalogUseCase) Execute(ctx context.Context, query string) (*domain.CatalogView, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "HomeCatalog", "query": query})
	ucLogger.Info("Use case started", nil)

	properties, err := uc.catalog.ListProperties(ctx, domain.PropertyQuery{Status: domain.StatusActive})
	if err != nil {
		ucLogger.Error("Failed to fetch properties", err, nil)
		return nil, fmt.Errorf("failed to fetch featured properties: %w", err)
	}

	view := &domain.CatalogView{
		Title:      domain.TitleFeatured,
		Properties: domain.FilterProperties(domain.Featured(properties), query),
		EmptyText:  domain.MsgNoPropertiesFound,
	}
	if strings.TrimSpace(query) != "" {
		view.Title = domain.TitleSearchResults
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"shown": len(view.Properties)})
	return view, nil
}

type ListingsUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewListingsUseCase(catalog port.PropertyCatalogPort) *ListingsUseCase {
	return &ListingsUseCase{catalog: catalog}
}

func (uc *ListingsUseCase) Execute(ctx context.Context, req domain.ListingsRequest) ([]domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Listings",
		"area":     req.Area,
	})
	ucLogger.Info("Use case started", nil)

	if req.Area != "" && !req.Area.Valid() {
		return nil, domain.NewValidationError("area", domain.MsgInvalidArea)
	}
	if req.PropertyType != "" && !req.PropertyType.Valid() {
		return nil, domain.NewValidationError("property_type", domain.MsgInvalidType)
	}

	properties, err := uc.catalog.ListProperties(ctx, domain.PropertyQuery{
		Status:       domain.StatusActive,
		Area:         req.Area,
		PropertyType: req.PropertyType,
		MinPrice:     req.MinPrice,
		MaxPrice:     req.MaxPrice,
	})
	if err != nil {
		ucLogger.Error("Failed to fetch properties", err, nil)
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}

	result := domain.FilterProperties(properties, req.Query)
	ucLogger.Info("Use case finished successfully", port.Fields{"fetched": len(properties), "shown": len(result)})
	return result, nil
}

type MapViewUseCase struct {
	catalog  port.PropertyCatalogPort
	renderer port.MapRendererPort
}

func NewMapViewUseCase(catalog port.PropertyCatalogPort, renderer port.MapRendererPort) *MapViewUseCase {
	return &MapViewUseCase{catalog: catalog, renderer: renderer}
}

// Execute рисует активные объекты с координатами и возвращает их количество.
func (uc *MapViewUseCase) Execute(ctx context.Context, w io.Writer) (int, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "MapView"})
	ucLogger.Info("Use case started", nil)

	properties, err := uc.catalog.ListProperties(ctx, domain.PropertyQuery{Status: domain.StatusActive})
	if err != nil {
		ucLogger.Error("Failed to fetch properties", err, nil)
		return 0, fmt.Errorf("failed to fetch map properties: %w", err)
	}

	located := make([]domain.Property, 0, len(properties))
	for _, p := range properties {
		if p.HasCoordinates() {
			located = append(located, p)
		}
	}

	if err := uc.renderer.Render(ctx, w, located); err != nil {
		ucLogger.Error("Map renderer failed", err, nil)
		return 0, fmt.Errorf("failed to render map: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"pins": len(located)})
	return len(located), nil
}

type PropertyDetailUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewPropertyDetailUseCase(catalog port.PropertyCatalogPort) *PropertyDetailUseCase {
	return &PropertyDetailUseCase{catalog: catalog}
}

func (uc *PropertyDetailUseCase) Execute(ctx context.Context, id string) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "PropertyDetail", "property_id": id})
	ucLogger.Info("Use case started", nil)

	p, err := uc.catalog.GetProperty(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to load property", err, nil)
		return nil, fmt.Errorf("failed to load property %s: %w", id, err)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return p, nil
}
