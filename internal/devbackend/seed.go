package devbackend

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/port"
	"aimlink-client/internal/devbackend/auth"
	"aimlink-client/internal/devbackend/store"
	"context"
	"errors"
	"fmt"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

// sampleProperties - демонстрационный каталог стенда.
func sampleProperties() []store.Property {
	return []store.Property{
		{
			Title:          "Luxury Penthouse in Achrafieh",
			Area:           "Beirut",
			LocationDetail: "Achrafieh, Sassine Square",
			PriceUSD:       850000,
			PropertyType:   "Apartment",
			SizeSqm:        320,
			Bedrooms:       intPtr(4),
			Bathrooms:      intPtr(3),
			FloorLevel:     strPtr("10th Floor"),
			ViewType:       strPtr("Sea and Mountain View"),
			Description:    "Stunning penthouse apartment with panoramic views of Beirut. Spacious living area, modern kitchen and a large terrace.",
			Latitude:       floatPtr(33.8938),
			Longitude:      floatPtr(35.5018),
			Status:         "active",
		},
		{
			Title:          "Modern Villa in Jounieh",
			Area:           "Mount Lebanon",
			LocationDetail: "Jounieh, Haret Sakhr",
			PriceUSD:       1250000,
			PropertyType:   "Villa",
			SizeSqm:        450,
			Bedrooms:       intPtr(5),
			Bathrooms:      intPtr(4),
			FloorLevel:     strPtr("Ground + 2 Floors"),
			ViewType:       strPtr("Mountain View"),
			Description:    "Exclusive villa with contemporary design, private pool and landscaped garden. Quiet residential area close to the highway.",
			Latitude:       floatPtr(33.9808),
			Longitude:      floatPtr(35.6178),
			Status:         "active",
		},
		{
			Title:          "Prime Office Space in Downtown Beirut",
			Area:           "Beirut",
			LocationDetail: "Downtown, Solidere",
			PriceUSD:       650000,
			PropertyType:   "Office",
			SizeSqm:        280,
			Bathrooms:      intPtr(2),
			FloorLevel:     strPtr("8th Floor"),
			ViewType:       strPtr("City View"),
			Description:    "Premium office space in the business district. Open floor plan with floor-to-ceiling windows and 24/7 security.",
			Latitude:       floatPtr(33.8886),
			Longitude:      floatPtr(35.5003),
			Status:         "active",
		},
		{
			Title:          "Beachfront Apartment in Ramlet el Bayda",
			Area:           "Beirut",
			LocationDetail: "Ramlet el Bayda, Corniche",
			PriceUSD:       720000,
			PropertyType:   "Apartment",
			SizeSqm:        185,
			Bedrooms:       intPtr(3),
			Bathrooms:      intPtr(2),
			FloorLevel:     strPtr("3rd Floor"),
			ViewType:       strPtr("Sea View"),
			Description:    "Beachfront apartment on the Corniche with direct sea views from every room. Recently renovated.",
			Latitude:       floatPtr(33.8863),
			Longitude:      floatPtr(35.4766),
			Status:         "active",
		},
		{
			Title:          "Mountain Chalet in Faraya",
			Area:           "Mount Lebanon",
			LocationDetail: "Faraya, Kfardebian",
			PriceUSD:       450000,
			PropertyType:   "Villa",
			SizeSqm:        220,
			Bedrooms:       intPtr(3),
			Bathrooms:      intPtr(2),
			FloorLevel:     strPtr("2 Floors"),
			ViewType:       strPtr("Mountain and Valley View"),
			Description:    "Cozy mountain retreat with valley views and a stone fireplace. Close to ski resorts.",
			Latitude:       floatPtr(33.9833),
			Longitude:      floatPtr(35.8167),
			Status:         "active",
		},
	}
}

// EnsureAdmin создает администратора, если его еще нет.
func EnsureAdmin(ctx context.Context, repo store.Repository, email, password string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "Seed", "email": email})

	existing, err := repo.FindAdminByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		logger.Debug("Admin already exists, skipping", nil)
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if err := repo.CreateAdmin(ctx, &store.Admin{Email: email, PasswordHash: hash}); err != nil && !errors.Is(err, store.ErrAdminExists) {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	logger.Info("Admin account created", nil)
	return nil
}

// SeedProperties заполняет пустой каталог демонстрационными объектами.
func SeedProperties(ctx context.Context, repo store.Repository) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"component": "Seed"})

	existing, err := repo.ListProperties(ctx, store.PropertyFilter{})
	if err != nil {
		return 0, fmt.Errorf("failed to check catalog: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug("Catalog is not empty, skipping sample properties", port.Fields{"count": len(existing)})
		return 0, nil
	}

	created := 0
	for _, p := range sampleProperties() {
		p := p
		if err := repo.CreateProperty(ctx, &p); err != nil {
			return created, fmt.Errorf("failed to create sample property %q: %w", p.Title, err)
		}
		created++
	}
	logger.Info("Sample properties created", port.Fields{"count": created})
	return created, nil
}
