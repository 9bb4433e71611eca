package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/heladerias/audit-vision/internal/core/domain"
	"github.com/heladerias/audit-vision/internal/core/ports"
)

const deviationColumns = `id, local, auditoria_fecha, seccion, item_codigo, item_descripcion,
	nivel, tipo_desvio, ai_justificacion, responsable, fecha_deteccion, fecha_limite,
	estado, fecha_cierre, comentario_cierre, reincidente, veces_detectado, prioridad`

type DeviationRepository struct {
	db *sql.DB
}

func NewDeviationRepository(db *sql.DB) *DeviationRepository {
	return &DeviationRepository{db: db}
}

func (r *DeviationRepository) Create(ctx context.Context, d *domain.Deviation) error {
	const query = `
		INSERT INTO desvios (` + deviationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.Local, d.AuditoriaFecha, d.Seccion, d.ItemCodigo, d.ItemDescripcion,
		string(d.Nivel), string(d.TipoDesvio), d.AIJustificacion, d.Responsable,
		d.FechaDeteccion, d.FechaLimite, string(d.Estado), d.FechaCierre,
		d.ComentarioCierre, d.Reincidente, d.VecesDetectado, string(d.Prioridad))
	if err != nil {
		return fmt.Errorf("insert deviation: %w", err)
	}
	return nil
}

func (r *DeviationRepository) GetByID(ctx context.Context, id string) (*domain.Deviation, error) {
	query := `SELECT ` + deviationColumns + ` FROM desvios WHERE id = $1`

	d, err := scanDeviationRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get deviation: %w", err)
	}
	return d, nil
}

func (r *DeviationRepository) List(ctx context.Context, filter ports.DeviationFilter) ([]domain.Deviation, error) {
	var conditions []string
	var args []any

	add := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Local != "" {
		add("local = $%d", filter.Local)
	}
	if filter.Estado != "" {
		add("estado = $%d", string(filter.Estado))
	}
	if filter.Fecha != "" {
		add("auditoria_fecha = $%d", filter.Fecha)
	}
	if filter.Tipo != "" {
		add("tipo_desvio = $%d", string(filter.Tipo))
	}
	if filter.OpenOnly {
		conditions = append(conditions, "estado IN ('pendiente', 'en_proceso')")
	}

	query := `SELECT ` + deviationColumns + ` FROM desvios`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY fecha_deteccion DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query deviations: %w", err)
	}
	defer rows.Close()

	return collectDeviations(rows)
}

func (r *DeviationRepository) CountPriorInWindow(ctx context.Context, local, itemCodigo string, since time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM desvios
		WHERE local = $1 AND item_codigo = $2 AND fecha_deteccion >= $3`

	var n int
	if err := r.db.QueryRowContext(ctx, query, local, itemCodigo, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count prior deviations: %w", err)
	}
	return n, nil
}

func (r *DeviationRepository) UpdateAssignment(ctx context.Context, id string, update ports.DeviationUpdate) error {
	var assignments []string
	var args []any

	set := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Responsable != nil {
		set("responsable", *update.Responsable)
	}
	if update.FechaLimite != nil {
		set("fecha_limite", *update.FechaLimite)
	}
	if update.Prioridad != nil {
		set("prioridad", string(*update.Prioridad))
	}
	if len(assignments) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE desvios SET %s WHERE id = $%d",
		strings.Join(assignments, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update deviation assignment: %w", err)
	}
	return requireAffected(res, "update deviation assignment")
}

func (r *DeviationRepository) SetEstado(ctx context.Context, id string, estado domain.EstadoDesvio) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE desvios SET estado = $1 WHERE id = $2`, string(estado), id)
	if err != nil {
		return fmt.Errorf("set deviation estado: %w", err)
	}
	return requireAffected(res, "set deviation estado")
}

func (r *DeviationRepository) Close(ctx context.Context, id string, estado domain.EstadoDesvio, comentario string, closedAt time.Time) error {
	const query = `
		UPDATE desvios
		SET estado = $1, comentario_cierre = $2, fecha_cierre = $3
		WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query, string(estado), comentario, closedAt, id)
	if err != nil {
		return fmt.Errorf("close deviation: %w", err)
	}
	return requireAffected(res, "close deviation")
}

func (r *DeviationRepository) DueWithin(ctx context.Context, local string, horizon time.Time) ([]domain.Deviation, error) {
	query := `
		SELECT ` + deviationColumns + `
		FROM desvios
		WHERE ($1 = '' OR local = $1)
			AND estado IN ('pendiente', 'en_proceso')
			AND fecha_limite IS NOT NULL
			AND fecha_limite <= $2
		ORDER BY fecha_limite`

	rows, err := r.db.QueryContext(ctx, query, local, horizon)
	if err != nil {
		return nil, fmt.Errorf("query due deviations: %w", err)
	}
	defer rows.Close()

	return collectDeviations(rows)
}

// KPIs aggregates the deviation dashboard numbers. The on-time closure rate
// looks at closures within the last 30 days and the average days-to-close at
// the last 90, both relative to now; open and reincident counts are current.
func (r *DeviationRepository) KPIs(ctx context.Context, local string, now time.Time) (*domain.DeviationKPIs, error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE estado IN ('pendiente', 'en_proceso')),
			COUNT(*) FILTER (WHERE estado = 'cumplido'
				AND fecha_cierre >= $2 - interval '30 days'),
			COUNT(*) FILTER (WHERE estado = 'cumplido'
				AND fecha_cierre >= $2 - interval '30 days'
				AND (fecha_limite IS NULL OR fecha_cierre <= fecha_limite)),
			COUNT(*) FILTER (WHERE reincidente AND estado IN ('pendiente', 'en_proceso')),
			COALESCE(AVG(EXTRACT(EPOCH FROM fecha_cierre - fecha_deteccion) / 86400.0)
				FILTER (WHERE estado = 'cumplido' AND fecha_cierre IS NOT NULL
					AND fecha_cierre >= $2 - interval '90 days'), 0)
		FROM desvios
		WHERE $1 = '' OR local = $1`

	var kpis domain.DeviationKPIs
	var cerrados, enPlazo int
	err := r.db.QueryRowContext(ctx, query, local, now).Scan(
		&kpis.Abiertos, &cerrados, &enPlazo, &kpis.ReincidentesActivos, &kpis.AvgDiasCierre)
	if err != nil {
		return nil, fmt.Errorf("query deviation kpis: %w", err)
	}
	if cerrados > 0 {
		kpis.PctCerradosEnPlazo = (enPlazo*100 + cerrados/2) / cerrados
	}
	return &kpis, nil
}

func (r *DeviationRepository) TopReincidentes(ctx context.Context, local string, limit int) ([]domain.ReincidenceEntry, error) {
	const query = `
		SELECT item_codigo, MAX(item_descripcion), local, COUNT(*)
		FROM desvios
		WHERE $1 = '' OR local = $1
		GROUP BY item_codigo, local
		HAVING COUNT(*) > 1
		ORDER BY COUNT(*) DESC, item_codigo
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, local, limit)
	if err != nil {
		return nil, fmt.Errorf("query top reincidentes: %w", err)
	}
	defer rows.Close()

	var entries []domain.ReincidenceEntry
	for rows.Next() {
		var e domain.ReincidenceEntry
		if err := rows.Scan(&e.ItemCodigo, &e.ItemDescripcion, &e.Local, &e.Count); err != nil {
			return nil, fmt.Errorf("scan reincidence entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top reincidentes: %w", err)
	}
	return entries, nil
}

func scanDeviationRow(row rowScanner) (*domain.Deviation, error) {
	var d domain.Deviation
	var nivel, tipo, estado, prioridad string
	var fechaLimite, fechaCierre sql.NullTime
	if err := row.Scan(&d.ID, &d.Local, &d.AuditoriaFecha, &d.Seccion, &d.ItemCodigo,
		&d.ItemDescripcion, &nivel, &tipo, &d.AIJustificacion, &d.Responsable,
		&d.FechaDeteccion, &fechaLimite, &estado, &fechaCierre,
		&d.ComentarioCierre, &d.Reincidente, &d.VecesDetectado, &prioridad); err != nil {
		return nil, err
	}
	d.Nivel = domain.Nivel(nivel)
	d.TipoDesvio = domain.TipoDesvio(tipo)
	d.Estado = domain.EstadoDesvio(estado)
	d.Prioridad = domain.Prioridad(prioridad)
	if fechaLimite.Valid {
		t := fechaLimite.Time
		d.FechaLimite = &t
	}
	if fechaCierre.Valid {
		t := fechaCierre.Time
		d.FechaCierre = &t
	}
	return &d, nil
}

func collectDeviations(rows *sql.Rows) ([]domain.Deviation, error) {
	var deviations []domain.Deviation
	for rows.Next() {
		d, err := scanDeviationRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deviation: %w", err)
		}
		deviations = append(deviations, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deviations: %w", err)
	}
	return deviations, nil
}

func requireAffected(res sql.Result, operation string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", operation, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
