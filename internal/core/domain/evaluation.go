package domain

import "time"

// Status is the verdict level assigned to a photographed checklist item.
type Status string

const (
	StatusConforme    Status = "Conforme"
	StatusObservacion Status = "Observación"
	StatusNoConforme  Status = "No Conforme"
)

func (s Status) Valid() bool {
	switch s {
	case StatusConforme, StatusObservacion, StatusNoConforme:
		return true
	}
	return false
}

// Points maps a status to its conformity score contribution.
func (s Status) Points() int {
	switch s {
	case StatusConforme:
		return 100
	case StatusObservacion:
		return 50
	default:
		return 0
	}
}

// Verdict is the structured output of one vision-classifier call.
type Verdict struct {
	Status             Status   `json:"status"`
	Justificacion      string   `json:"justificacion"`
	DetallesObservados []string `json:"detalles_observados"`
	Recomendaciones    []string `json:"recomendaciones"`
}

// Evaluation is one persisted verdict for one analyzed photo.
// Append-only: re-analyzing a photo appends a new record, it never replaces.
type Evaluation struct {
	ID                 string    `json:"id"`
	Local              string    `json:"local"`
	Fecha              string    `json:"fecha"`
	Section            string    `json:"section"`
	ItemID             string    `json:"item_id"`
	ItemName           string    `json:"item_name"`
	Status             Status    `json:"status"`
	Justificacion      string    `json:"justificacion"`
	DetallesObservados []string  `json:"detalles_observados"`
	Recomendaciones    []string  `json:"recomendaciones"`
	Filename           string    `json:"filename"`
	Model              string    `json:"model"`
	AnalyzedAt         time.Time `json:"analyzed_at"`
}

// Correction is an auditor override of an AI verdict. Append-only; recent
// corrections for an item are replayed as few-shot context in later
// classifier calls for that item.
type Correction struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	ItemName        string    `json:"item_name"`
	AIStatus        Status    `json:"ai_status"`
	CorrectedStatus Status    `json:"corrected_status"`
	AIJustificacion string    `json:"ai_justificacion"`
	CorrectionNotes string    `json:"correction_notes"`
	Local           string    `json:"local"`
	Fecha           string    `json:"fecha"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuditSummary is one row of the audit history: per (local, fecha) verdict counts.
type AuditSummary struct {
	Local         string    `json:"local"`
	Fecha         string    `json:"fecha"`
	Total         int       `json:"total"`
	Conformes     int       `json:"conformes"`
	Observaciones int       `json:"observaciones"`
	NoConformes   int       `json:"no_conformes"`
	PctConforme   int       `json:"pct_conforme"`
	LastAnalyzed  time.Time `json:"last_analyzed"`
}

// ItemEvolution is the status history of a single item across periods.
type ItemEvolution struct {
	Fecha         string    `json:"fecha"`
	Status        Status    `json:"status"`
	Justificacion string    `json:"justificacion"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
}

// RecurringFailure is an item with non-passing evaluations spanning several
// distinct periods at one location.
type RecurringFailure struct {
	ItemID    string   `json:"item_id"`
	ItemName  string   `json:"item_name"`
	FailCount int      `json:"fail_count"`
	Fechas    []string `json:"fechas"`
}
