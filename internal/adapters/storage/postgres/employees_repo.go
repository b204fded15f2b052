package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"boi-na-nuvem/internal/domain/employees"
)

type EmployeesRepo struct {
	db *sql.DB
}

var _ employees.Repository = (*EmployeesRepo)(nil)

func NewEmployeesRepo(db *sql.DB) *EmployeesRepo {
	return &EmployeesRepo{db: db}
}

const employeeColumns = `
			id, name, role, email, phone, salary,
			address, property_id, hired_at,
			created_at, updated_at, deleted_at`

func (r *EmployeesRepo) Create(ctx context.Context, e employees.Employee) error {
	addr, err := encodeAddress(e.Address)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO employees (`+employeeColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		e.ID,
		e.Name,
		string(e.Role),
		e.Email,
		e.Phone,
		e.Salary,
		addr,
		e.PropertyID,
		toNullTime(e.HiredAt),
		e.CreatedAt,
		e.UpdatedAt,
		toNullTime(e.DeletedAt),
	)
	return err
}

func (r *EmployeesRepo) GetByID(ctx context.Context, id string) (employees.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return employees.Employee{}, employees.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT`+employeeColumns+`
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`, id)

	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employees.Employee{}, employees.ErrNotFound
		}
		return employees.Employee{}, err
	}
	return e, nil
}

func (r *EmployeesRepo) List(ctx context.Context) ([]employees.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+employeeColumns+`
		FROM employees
		WHERE deleted_at IS NULL
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]employees.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EmployeesRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employees
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
		return employees.ErrNotFound
	}
	return nil
}

func scanEmployee(s scanner) (employees.Employee, error) {
	var (
		e              employees.Employee
		role           string
		addr           []byte
		hired, deleted sql.NullTime
	)
	if err := s.Scan(
		&e.ID,
		&e.Name,
		&role,
		&e.Email,
		&e.Phone,
		&e.Salary,
		&addr,
		&e.PropertyID,
		&hired,
		&e.CreatedAt,
		&e.UpdatedAt,
		&deleted,
	); err != nil {
		return employees.Employee{}, err
	}

	a, err := decodeAddress(addr)
	if err != nil {
		return employees.Employee{}, err
	}
	e.Role = employees.Role(role)
	e.Address = a
	e.HiredAt = fromNullTime(hired)
	e.DeletedAt = fromNullTime(deleted)
	return e, nil
}
