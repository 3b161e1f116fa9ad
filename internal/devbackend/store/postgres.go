package store

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/port"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// PostgresRepository - реализация Repository для PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(pool *pgxpool.Pool) (*PostgresRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresRepository{pool: pool}, nil
}

func (r *PostgresRepository) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresRepository",
		"method":    method,
	})
}

// Migrate создает таблицы, если их нет.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

const propertyColumns = `id, title, area, location_detail, price_usd, property_type, size_sqm,
	bedrooms, bathrooms, floor_level, view_type, description, images,
	latitude, longitude, status, created_at, updated_at`

func scanProperty(row pgx.Row) (*Property, error) {
	var p Property
	err := row.Scan(
		&p.ID, &p.Title, &p.Area, &p.LocationDetail, &p.PriceUSD, &p.PropertyType, &p.SizeSqm,
		&p.Bedrooms, &p.Bathrooms, &p.FloorLevel, &p.ViewType, &p.Description, &p.Images,
		&p.Latitude, &p.Longitude, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}

// buildPropertyWhere собирает условие выборки и аргументы в порядке плейсхолдеров.
func buildPropertyWhere(filter PropertyFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Area != "" {
		add("area = $%d", filter.Area)
	}
	if filter.PropertyType != "" {
		add("property_type = $%d", filter.PropertyType)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.MinPrice > 0 {
		add("price_usd >= $%d", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		add("price_usd <= $%d", filter.MaxPrice)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *PostgresRepository) ListProperties(ctx context.Context, filter PropertyFilter) ([]Property, error) {
	repoLogger := r.logger(ctx, "ListProperties")

	where, args := buildPropertyWhere(filter)
	query := `SELECT ` + propertyColumns + ` FROM properties` + where + ` ORDER BY created_at DESC LIMIT 1000`

	repoLogger.Debug("Executing query to list properties.", port.Fields{"args": len(args)})
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to list properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	result := make([]Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetProperty(ctx context.Context, id uuid.UUID) (*Property, error) {
	repoLogger := r.logger(ctx, "GetProperty")

	p, err := scanProperty(r.pool.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Warn("Property not found.", port.Fields{"property_id": id.String()})
			return nil, nil
		}
		repoLogger.Error("Failed to get property", err, nil)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) CreateProperty(ctx context.Context, p *Property) error {
	repoLogger := r.logger(ctx, "CreateProperty")

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.UpdatedAt = p.CreatedAt
	if p.Images == nil {
		p.Images = []string{}
	}

	query := `INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.Area, p.LocationDetail, p.PriceUSD, p.PropertyType, p.SizeSqm,
		p.Bedrooms, p.Bathrooms, p.FloorLevel, p.ViewType, p.Description, p.Images,
		p.Latitude, p.Longitude, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to create property", err, nil)
		return fmt.Errorf("failed to create property: %w", err)
	}
	repoLogger.Debug("Property created successfully.", port.Fields{"property_id": p.ID.String()})
	return nil
}

// buildPropertySet - SET-часть UPDATE только для заданных полей патча.
func buildPropertySet(patch PropertyPatch) (string, []any) {
	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Area != nil {
		add("area", *patch.Area)
	}
	if patch.LocationDetail != nil {
		add("location_detail", *patch.LocationDetail)
	}
	if patch.PriceUSD != nil {
		add("price_usd", *patch.PriceUSD)
	}
	if patch.PropertyType != nil {
		add("property_type", *patch.PropertyType)
	}
	if patch.SizeSqm != nil {
		add("size_sqm", *patch.SizeSqm)
	}
	if patch.Bedrooms != nil {
		add("bedrooms", *patch.Bedrooms)
	}
	if patch.Bathrooms != nil {
		add("bathrooms", *patch.Bathrooms)
	}
	if patch.FloorLevel != nil {
		add("floor_level", *patch.FloorLevel)
	}
	if patch.ViewType != nil {
		add("view_type", *patch.ViewType)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Images != nil {
		add("images", *patch.Images)
	}
	if patch.Latitude != nil {
		add("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		add("longitude", *patch.Longitude)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	add("updated_at", time.Now().UTC())
	return strings.Join(sets, ", "), args
}

func (r *PostgresRepository) UpdateProperty(ctx context.Context, id uuid.UUID, patch PropertyPatch) (*Property, error) {
	repoLogger := r.logger(ctx, "UpdateProperty")

	set, args := buildPropertySet(patch)
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE properties SET %s WHERE id = $%d RETURNING %s`, set, len(args), propertyColumns)

	p, err := scanProperty(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		repoLogger.Error("Failed to update property", err, port.Fields{"property_id": id.String()})
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) DeleteProperty(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		r.logger(ctx, "DeleteProperty").Error("Failed to delete property", err, nil)
		return false, fmt.Errorf("failed to delete property: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

const leadColumns = `id, property_id, name, phone, message, status, created_at`

func scanLead(row pgx.Row) (*Lead, error) {
	var l Lead
	if err := row.Scan(&l.ID, &l.PropertyID, &l.Name, &l.Phone, &l.Message, &l.Status, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PostgresRepository) CreateLead(ctx context.Context, lead *Lead) error {
	if lead.ID == uuid.Nil {
		lead.ID = uuid.New()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO leads (`+leadColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		lead.ID, lead.PropertyID, lead.Name, lead.Phone, lead.Message, lead.Status, lead.CreatedAt)
	if err != nil {
		r.logger(ctx, "CreateLead").Error("Failed to create lead", err, nil)
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListLeads(ctx context.Context, status string) ([]Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT 1000`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger(ctx, "ListLeads").Error("Failed to list leads", err, nil)
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	result := make([]Lead, 0)
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		result = append(result, *l)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status string) (*Lead, error) {
	l, err := scanLead(r.pool.QueryRow(ctx,
		`UPDATE leads SET status = $1 WHERE id = $2 RETURNING `+leadColumns, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger(ctx, "UpdateLeadStatus").Error("Failed to update lead", err, nil)
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) FindAdminByEmail(ctx context.Context, email string) (*Admin, error) {
	var a Admin
	err := r.pool.QueryRow(ctx, `SELECT id, email, password_hash, created_at FROM admins WHERE email = $1`, email).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &a, nil
}

func (r *PostgresRepository) CreateAdmin(ctx context.Context, admin *Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO admins (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		admin.ID, admin.Email, admin.PasswordHash, admin.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAdminExists
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := r.pool.QueryRow(ctx, `SELECT
		(SELECT COUNT(*) FROM properties),
		(SELECT COUNT(*) FROM properties WHERE status = 'active'),
		(SELECT COUNT(*) FROM properties WHERE status = 'draft'),
		(SELECT COUNT(*) FROM properties WHERE status = 'sold'),
		(SELECT COUNT(*) FROM leads WHERE status = 'pending'),
		(SELECT COUNT(*) FROM leads)`).
		Scan(&s.TotalProperties, &s.ActiveProperties, &s.DraftProperties, &s.SoldProperties, &s.PendingLeads, &s.TotalLeads)
	if err != nil {
		r.logger(ctx, "Stats").Error("Failed to count stats", err, nil)
		return nil, fmt.Errorf("failed to count stats: %w", err)
	}
	return &s, nil
}
