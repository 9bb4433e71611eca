package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the tables on startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026041501)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS photos (
	id TEXT PRIMARY KEY,
	local TEXT NOT NULL,
	fecha TEXT NOT NULL,
	section TEXT NOT NULL,
	item_id TEXT NOT NULL,
	photo_name TEXT NOT NULL,
	photo_data BYTEA NOT NULL,
	size_bytes BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_photos_local_fecha_item ON photos (local, fecha, item_id);

CREATE TABLE IF NOT EXISTS evaluations (
	id TEXT PRIMARY KEY,
	local TEXT NOT NULL,
	fecha TEXT NOT NULL,
	section TEXT NOT NULL,
	item_id TEXT NOT NULL,
	item_name TEXT NOT NULL,
	status TEXT NOT NULL,
	justificacion TEXT NOT NULL DEFAULT '',
	detalles_observados JSONB NOT NULL DEFAULT '[]'::jsonb,
	recomendaciones JSONB NOT NULL DEFAULT '[]'::jsonb,
	filename TEXT NOT NULL DEFAULT '',
	model TEXT NOT NULL DEFAULT '',
	analyzed_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_evaluations_local_fecha_item ON evaluations (local, fecha, item_id);
CREATE INDEX IF NOT EXISTS idx_evaluations_local_item ON evaluations (local, item_id);

CREATE TABLE IF NOT EXISTS corrections (
	id TEXT PRIMARY KEY,
	item_id TEXT NOT NULL,
	item_name TEXT NOT NULL,
	ai_status TEXT NOT NULL,
	corrected_status TEXT NOT NULL,
	ai_justificacion TEXT NOT NULL DEFAULT '',
	correction_notes TEXT NOT NULL DEFAULT '',
	local TEXT NOT NULL DEFAULT '',
	fecha TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_corrections_item_created ON corrections (item_id, created_at DESC);

CREATE TABLE IF NOT EXISTS audits (
	id TEXT PRIMARY KEY,
	local TEXT NOT NULL,
	fecha TEXT NOT NULL,
	scores JSONB NOT NULL DEFAULT '{}'::jsonb,
	score_global INTEGER NOT NULL DEFAULT 0,
	computed_at TIMESTAMPTZ NOT NULL,
	UNIQUE (local, fecha)
);

CREATE TABLE IF NOT EXISTS desvios (
	id TEXT PRIMARY KEY,
	local TEXT NOT NULL,
	auditoria_fecha TEXT NOT NULL,
	seccion TEXT NOT NULL,
	item_codigo TEXT NOT NULL,
	item_descripcion TEXT NOT NULL DEFAULT '',
	nivel TEXT NOT NULL,
	tipo_desvio TEXT NOT NULL,
	ai_justificacion TEXT NOT NULL DEFAULT '',
	responsable TEXT NOT NULL DEFAULT '',
	fecha_deteccion TIMESTAMPTZ NOT NULL,
	fecha_limite TIMESTAMPTZ,
	estado TEXT NOT NULL,
	fecha_cierre TIMESTAMPTZ,
	comentario_cierre TEXT NOT NULL DEFAULT '',
	reincidente BOOLEAN NOT NULL DEFAULT FALSE,
	veces_detectado INTEGER NOT NULL DEFAULT 1,
	prioridad TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_desvios_local_item_deteccion ON desvios (local, item_codigo, fecha_deteccion);
CREATE INDEX IF NOT EXISTS idx_desvios_estado ON desvios (estado);

CREATE TABLE IF NOT EXISTS decisiones (
	id TEXT PRIMARY KEY,
	desvio_id TEXT NOT NULL UNIQUE,
	item_codigo TEXT NOT NULL,
	local TEXT NOT NULL,
	contexto TEXT NOT NULL DEFAULT '',
	impacto TEXT NOT NULL DEFAULT '',
	propuesta TEXT NOT NULL DEFAULT '',
	estado_decision TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS responsables (
	id TEXT PRIMARY KEY,
	nombre TEXT NOT NULL,
	local TEXT NOT NULL,
	rol TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}
