package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"boi-na-nuvem/internal/domain/address"
	"boi-na-nuvem/internal/domain/buyers"
)

type BuyersRepo struct {
	db *sql.DB
}

var _ buyers.Repository = (*BuyersRepo)(nil)

func NewBuyersRepo(db *sql.DB) *BuyersRepo {
	return &BuyersRepo{db: db}
}

const buyerColumns = `
			id, name, document, email, phone,
			address, property_id,
			created_at, updated_at, deleted_at`

func (r *BuyersRepo) Create(ctx context.Context, b buyers.Buyer) error {
	addr, err := encodeAddress(b.Address)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO buyers (`+buyerColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		b.ID,
		b.Name,
		b.Document,
		b.Email,
		b.Phone,
		addr,
		b.PropertyID,
		b.CreatedAt,
		b.UpdatedAt,
		toNullTime(b.DeletedAt),
	)
	return err
}

func (r *BuyersRepo) GetByID(ctx context.Context, id string) (buyers.Buyer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return buyers.Buyer{}, buyers.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT`+buyerColumns+`
		FROM buyers
		WHERE id = $1 AND deleted_at IS NULL
	`, id)

	b, err := scanBuyer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return buyers.Buyer{}, buyers.ErrNotFound
		}
		return buyers.Buyer{}, err
	}
	return b, nil
}

func (r *BuyersRepo) List(ctx context.Context) ([]buyers.Buyer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+buyerColumns+`
		FROM buyers
		WHERE deleted_at IS NULL
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]buyers.Buyer, 0)
	for rows.Next() {
		b, err := scanBuyer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// SoftDelete: COALESCE conserva la fecha del primer borrado.
func (r *BuyersRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE buyers
		SET
			deleted_at = COALESCE(deleted_at, $2),
			updated_at = CASE WHEN deleted_at IS NULL THEN $2 ELSE updated_at END
		WHERE id = $1
	`, id, at)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return buyers.ErrNotFound
	}
	return nil
}

func scanBuyer(s scanner) (buyers.Buyer, error) {
	var (
		b       buyers.Buyer
		addr    []byte
		deleted sql.NullTime
	)
	if err := s.Scan(
		&b.ID,
		&b.Name,
		&b.Document,
		&b.Email,
		&b.Phone,
		&addr,
		&b.PropertyID,
		&b.CreatedAt,
		&b.UpdatedAt,
		&deleted,
	); err != nil {
		return buyers.Buyer{}, err
	}

	a, err := decodeAddress(addr)
	if err != nil {
		return buyers.Buyer{}, err
	}
	b.Address = a
	b.DeletedAt = fromNullTime(deleted)
	return b, nil
}

// address se guarda como JSONB.
func encodeAddress(a address.Address) (string, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeAddress(raw []byte) (address.Address, error) {
	var a address.Address
	if len(raw) == 0 {
		return a, nil
	}
	err := json.Unmarshal(raw, &a)
	return a, err
}
