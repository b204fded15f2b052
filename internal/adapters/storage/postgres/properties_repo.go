package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"boi-na-nuvem/internal/domain/properties"
)

type PropertiesRepo struct {
	db *sql.DB
}

var _ properties.Repository = (*PropertiesRepo)(nil)

func NewPropertiesRepo(db *sql.DB) *PropertiesRepo {
	return &PropertiesRepo{db: db}
}

func (r *PropertiesRepo) Create(ctx context.Context, p properties.Property) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO properties (
			id, name, city, state, area_hectares, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		p.ID,
		p.Name,
		p.City,
		p.State,
		p.AreaHectares,
		p.CreatedAt,
	)
	return err
}

func (r *PropertiesRepo) GetByID(ctx context.Context, id string) (properties.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return properties.Property{}, properties.ErrNotFound
	}

	var p properties.Property
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, city, state, area_hectares, created_at
		FROM properties
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.City, &p.State, &p.AreaHectares, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return properties.Property{}, properties.ErrNotFound
		}
		return properties.Property{}, err
	}
	return p, nil
}

func (r *PropertiesRepo) List(ctx context.Context) ([]properties.Property, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, city, state, area_hectares, created_at
		FROM properties
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]properties.Property, 0)
	for rows.Next() {
		var p properties.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.City, &p.State, &p.AreaHectares, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
