package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"boi-na-nuvem/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

var _ animals.Repository = (*AnimalsRepo)(nil)

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
			id, code, name, breed, sex,
			birth_date, weight_kg,
			status, phase, property_id,
			father_id, mother_id,
			created_at, updated_at, deleted_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		a.ID,
		a.Code,
		a.Name,
		a.Breed,
		string(a.Sex),
		toNullTime(a.BirthDate),
		a.WeightKg,
		string(a.Status),
		string(a.Phase),
		a.PropertyID,
		toNullString(a.Pedigree.FatherID),
		toNullString(a.Pedigree.MotherID),
		a.CreatedAt,
		a.UpdatedAt,
		toNullTime(a.DeletedAt),
	)
	return err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT`+animalColumns+`
		FROM animals
		WHERE id = $1 AND deleted_at IS NULL
	`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+animalColumns+`
		FROM animals
		WHERE deleted_at IS NULL
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) AddLocation(ctx context.Context, l animals.AnimalLocation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animal_locations (
			id, animal_id, location_id, entry_date, exit_date
		) VALUES ($1,$2,$3,$4,$5)
	`,
		l.ID,
		l.AnimalID,
		l.LocationID,
		l.EntryDate,
		toNullTime(l.ExitDate),
	)
	return err
}

func (r *AnimalsRepo) ListLocations(ctx context.Context, animalID string) ([]animals.AnimalLocation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal_id, location_id, entry_date, exit_date
		FROM animal_locations
		WHERE animal_id = $1
		ORDER BY entry_date ASC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.AnimalLocation, 0)
	for rows.Next() {
		var l animals.AnimalLocation
		var exit sql.NullTime
		if err := rows.Scan(&l.ID, &l.AnimalID, &l.LocationID, &l.EntryDate, &exit); err != nil {
			return nil, err
		}
		l.ExitDate = fromNullTime(exit)
		out = append(out, l)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var (
		a              animals.Animal
		sex, st, ph    string
		bd, deleted    sql.NullTime
		father, mother sql.NullString
	)
	if err := s.Scan(
		&a.ID,
		&a.Code,
		&a.Name,
		&a.Breed,
		&sex,
		&bd,
		&a.WeightKg,
		&st,
		&ph,
		&a.PropertyID,
		&father,
		&mother,
		&a.CreatedAt,
		&a.UpdatedAt,
		&deleted,
	); err != nil {
		return animals.Animal{}, err
	}

	a.Sex = animals.Sex(sex)
	a.Status = animals.Status(st)
	a.Phase = animals.Phase(ph)
	// birth_date es DATE; pgx lo mapea a time.Time a medianoche UTC
	a.BirthDate = fromNullTime(bd)
	a.Pedigree = animals.Pedigree{
		FatherID: fromNullString(father),
		MotherID: fromNullString(mother),
	}
	a.DeletedAt = fromNullTime(deleted)
	return a, nil
}
