package domain

import (
	"fmt"
	"time"
)

// EstadoDesvio is the lifecycle state of a deviation.
type EstadoDesvio string

const (
	EstadoPendiente  EstadoDesvio = "pendiente"
	EstadoEnProceso  EstadoDesvio = "en_proceso"
	EstadoCumplido   EstadoDesvio = "cumplido"
	EstadoIncumplido EstadoDesvio = "incumplido"
)

func (e EstadoDesvio) Valid() bool {
	switch e {
	case EstadoPendiente, EstadoEnProceso, EstadoCumplido, EstadoIncumplido:
		return true
	}
	return false
}

// Terminal reports whether the state admits no further transitions.
func (e EstadoDesvio) Terminal() bool {
	return e == EstadoCumplido || e == EstadoIncumplido
}

// CanTransition enforces the lifecycle graph: open states may advance or
// terminate, terminal states are immutable. Reopening means creating a new
// deviation, never mutating a closed one.
func (e EstadoDesvio) CanTransition(to EstadoDesvio) bool {
	if !to.Valid() || e.Terminal() || e == to {
		return false
	}
	switch e {
	case EstadoPendiente:
		return true
	case EstadoEnProceso:
		return to != EstadoPendiente
	}
	return false
}

type TipoDesvio string

const (
	TipoOperativo   TipoDesvio = "operativo"
	TipoConductual  TipoDesvio = "conductual"
	TipoEstructural TipoDesvio = "estructural"
)

type Prioridad string

const (
	PrioridadAlta  Prioridad = "alta"
	PrioridadMedia Prioridad = "media"
	PrioridadBaja  Prioridad = "baja"
)

// Nivel is the severity color derived from the triggering verdict.
type Nivel string

const (
	NivelRojo     Nivel = "rojo"
	NivelAmarillo Nivel = "amarillo"
)

// Deviation (desvío) is a tracked non-conformance requiring remediation.
type Deviation struct {
	ID               string       `json:"id"`
	Local            string       `json:"local"`
	AuditoriaFecha   string       `json:"auditoria_fecha"`
	Seccion          string       `json:"seccion"`
	ItemCodigo       string       `json:"item_codigo"`
	ItemDescripcion  string       `json:"item_descripcion"`
	Nivel            Nivel        `json:"nivel"`
	TipoDesvio       TipoDesvio   `json:"tipo_desvio"`
	AIJustificacion  string       `json:"ai_justificacion"`
	Responsable      string       `json:"responsable"`
	FechaDeteccion   time.Time    `json:"fecha_deteccion"`
	FechaLimite      *time.Time   `json:"fecha_limite,omitempty"`
	Estado           EstadoDesvio `json:"estado"`
	FechaCierre      *time.Time   `json:"fecha_cierre,omitempty"`
	ComentarioCierre string       `json:"comentario_cierre"`
	Reincidente      bool         `json:"reincidente"`
	VecesDetectado   int          `json:"veces_detectado"`
	Prioridad        Prioridad    `json:"prioridad"`
}

// RecurrenceWindow is the trailing window used to classify recurrence.
const RecurrenceWindow = 60 * 24 * time.Hour

// StructuralThreshold is the occurrence count (window inclusive of the new
// detection) at which a deviation is promoted to estructural.
const StructuralThreshold = 3

// DefaultClosureComment substitutes an empty closure comment.
const DefaultClosureComment = "Sin comentario"

// ClassifyRecurrence derives tipo, reincidente and the running count from the
// number of prior deviations for the same (local, item) inside the trailing
// window. The count is recomputed from history on every detection, so
// out-of-order creation cannot corrupt it.
func ClassifyRecurrence(priorInWindow int) (tipo TipoDesvio, reincidente bool, veces int) {
	veces = priorInWindow + 1
	tipo = TipoOperativo
	if veces >= StructuralThreshold {
		tipo = TipoEstructural
	}
	return tipo, veces > 1, veces
}

// NewDeviation derives a deviation from a non-passing evaluation.
// No responsible party or due date at creation; a manager assigns those later.
func NewDeviation(id string, ev Evaluation, priorInWindow int, now time.Time) (Deviation, error) {
	if ev.Status == StatusConforme {
		return Deviation{}, fmt.Errorf("new deviation: %w: status %q is passing", ErrInvalidInput, ev.Status)
	}
	tipo, reincidente, veces := ClassifyRecurrence(priorInWindow)

	nivel := NivelAmarillo
	if ev.Status == StatusNoConforme {
		nivel = NivelRojo
	}
	prioridad := PrioridadMedia
	if ev.Status == StatusNoConforme || reincidente {
		prioridad = PrioridadAlta
	}

	return Deviation{
		ID:              id,
		Local:           ev.Local,
		AuditoriaFecha:  ev.Fecha,
		Seccion:         ev.Section,
		ItemCodigo:      ev.ItemID,
		ItemDescripcion: ev.ItemName,
		Nivel:           nivel,
		TipoDesvio:      tipo,
		AIJustificacion: ev.Justificacion,
		FechaDeteccion:  now,
		Estado:          EstadoPendiente,
		Reincidente:     reincidente,
		VecesDetectado:  veces,
		Prioridad:       prioridad,
	}, nil
}

// DeviationKPIs aggregates the remediation health of a location (or all).
type DeviationKPIs struct {
	Abiertos            int     `json:"abiertos"`
	PctCerradosEnPlazo  int     `json:"pct_cerrados_en_plazo"`
	ReincidentesActivos int     `json:"reincidentes_activos"`
	AvgDiasCierre       float64 `json:"avg_dias_cierre"`
}

// ReincidenceEntry is one row of the top-recurring-items table.
type ReincidenceEntry struct {
	ItemCodigo      string `json:"item_codigo"`
	ItemDescripcion string `json:"item_descripcion"`
	Local           string `json:"local"`
	Count           int    `json:"count"`
}

// EstadoDecision is the managerial review state of an escalation.
type EstadoDecision string

const (
	DecisionPendiente  EstadoDecision = "pendiente"
	DecisionAprobado   EstadoDecision = "aprobado"
	DecisionDescartado EstadoDecision = "descartado"
)

func (e EstadoDecision) Valid() bool {
	switch e {
	case DecisionPendiente, DecisionAprobado, DecisionDescartado:
		return true
	}
	return false
}

// Decision is the escalation record created when a structural deviation closes.
type Decision struct {
	ID             string         `json:"id"`
	DesvioID       string         `json:"desvio_id"`
	ItemCodigo     string         `json:"item_codigo"`
	Local          string         `json:"local"`
	Contexto       string         `json:"contexto"`
	Impacto        string         `json:"impacto"`
	Propuesta      string         `json:"propuesta"`
	EstadoDecision EstadoDecision `json:"estado_decision"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Responsable is a named accountable party scoped to a location and role.
type Responsable struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Local     string    `json:"local"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}
