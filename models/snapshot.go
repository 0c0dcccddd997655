package models

import "time"

// Snapshot describes a locally stored copy of every prompt fetched from the
// backend at CreatedAt.
type Snapshot struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// RestoreReport summarises a restore run.
type RestoreReport struct {
	SnapshotID string   `json:"snapshot_id"`
	Total      int      `json:"total"`
	Restored   int      `json:"restored"`
	Failed     int      `json:"failed"`
	DryRun     bool     `json:"dry_run"`
	Errors     []string `json:"errors,omitempty"`
}
