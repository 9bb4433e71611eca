package domain

import "time"

// Photo is a compressed audit photograph keyed by (local, fecha, item).
// Immutable after creation; purged by the age-based retention sweep.
type Photo struct {
	ID        string    `json:"id"`
	Local     string    `json:"local"`
	Fecha     string    `json:"fecha"`
	Section   string    `json:"section"`
	ItemID    string    `json:"item_id"`
	PhotoName string    `json:"photo_name"`
	Data      []byte    `json:"-"`
	SizeBytes int       `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditRef identifies one audit: a location plus a year-month period.
type AuditRef struct {
	Local string `json:"local"`
	Fecha string `json:"fecha"`
}

// StoreStats summarizes datastore usage for the admin panel.
type StoreStats struct {
	PhotoCount     int     `json:"photo_count"`
	ResultCount    int     `json:"result_count"`
	PhotosSizeMB   float64 `json:"photos_size_mb"`
	DistinctAudits int     `json:"distinct_audits"`
}
