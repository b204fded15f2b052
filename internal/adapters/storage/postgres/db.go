package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_properties",
		SQL: `CREATE TABLE IF NOT EXISTS properties (
  id            TEXT             PRIMARY KEY,
  name          TEXT             NOT NULL,
  city          TEXT             NOT NULL DEFAULT '',
  state         TEXT             NOT NULL DEFAULT '',
  area_hectares DOUBLE PRECISION NOT NULL DEFAULT 0,
  created_at    TIMESTAMPTZ      NOT NULL
);`,
	},
	{
		Name: "create_table_animals",
		SQL: `CREATE TABLE IF NOT EXISTS animals (
  id          TEXT             PRIMARY KEY,
  code        TEXT             NOT NULL DEFAULT '',
  name        TEXT             NOT NULL,
  breed       TEXT             NOT NULL DEFAULT '',
  sex         TEXT             NOT NULL DEFAULT '',
  birth_date  DATE,
  weight_kg   DOUBLE PRECISION NOT NULL DEFAULT 0,
  status      TEXT             NOT NULL,
  phase       TEXT             NOT NULL,
  property_id TEXT             NOT NULL,
  father_id   TEXT,
  mother_id   TEXT,
  created_at  TIMESTAMPTZ      NOT NULL,
  updated_at  TIMESTAMPTZ      NOT NULL,
  deleted_at  TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_animal_locations",
		SQL: `CREATE TABLE IF NOT EXISTS animal_locations (
  id          TEXT        PRIMARY KEY,
  animal_id   TEXT        NOT NULL REFERENCES animals (id),
  location_id TEXT        NOT NULL,
  entry_date  TIMESTAMPTZ NOT NULL,
  exit_date   TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_buyers",
		SQL: `CREATE TABLE IF NOT EXISTS buyers (
  id          TEXT        PRIMARY KEY,
  name        TEXT        NOT NULL,
  document    TEXT        NOT NULL DEFAULT '',
  email       TEXT        NOT NULL DEFAULT '',
  phone       TEXT        NOT NULL DEFAULT '',
  address     JSONB       NOT NULL DEFAULT '{}',
  property_id TEXT        NOT NULL,
  created_at  TIMESTAMPTZ NOT NULL,
  updated_at  TIMESTAMPTZ NOT NULL,
  deleted_at  TIMESTAMPTZ
);`,
	},
	{
		Name: "create_table_employees",
		SQL: `CREATE TABLE IF NOT EXISTS employees (
  id          TEXT             PRIMARY KEY,
  name        TEXT             NOT NULL,
  role        TEXT             NOT NULL,
  email       TEXT             NOT NULL DEFAULT '',
  phone       TEXT             NOT NULL DEFAULT '',
  salary      DOUBLE PRECISION NOT NULL DEFAULT 0,
  address     JSONB            NOT NULL DEFAULT '{}',
  property_id TEXT             NOT NULL,
  hired_at    DATE,
  created_at  TIMESTAMPTZ      NOT NULL,
  updated_at  TIMESTAMPTZ      NOT NULL,
  deleted_at  TIMESTAMPTZ
);`,
	},
	{
		Name: "create_index_animals_property",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_animals_property_id ON animals (property_id);`,
	},
	{
		Name: "create_index_animal_locations_animal",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_animal_locations_animal_id ON animal_locations (animal_id);`,
	},
}

// Migrate aplica el schema. Todos los pasos son idempotentes.
func Migrate(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db migration failed",
				zap.String("migration_step", step.Name),
				zap.Error(err),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Debug("db migration step",
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db migration done", zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// MaxSequence devuelve el mayor n de los ids "{prefijo}-{n}" guardados.
// El generador de ids arranca desde ahí.
func MaxSequence(ctx context.Context, db *sql.DB) (uint64, error) {
	var n int64
	err := db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(split_part(id, '-', 2)::BIGINT), 0)
		FROM (
			SELECT id FROM properties
			UNION ALL SELECT id FROM animals
			UNION ALL SELECT id FROM buyers
			UNION ALL SELECT id FROM employees
		) ids
		WHERE id ~ '^[A-Z]+-[0-9]+$'
	`).Scan(&n)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n = 0
	}
	return uint64(n), nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
