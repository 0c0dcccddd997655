// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists prompt snapshots in a local SQLite file or a
// PostgreSQL database.
package store

import (
	"context"

	"github.com/junerver/prompt-keeper/models"
)

// SnapshotRepository stores point-in-time copies of the prompt list.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/snapshot_repository_mock.go -package=mock
type SnapshotRepository interface {
	// CreateSnapshot saves the snapshot header and its prompts atomically.
	// Returns ErrSnapshotExists when the id is already taken.
	CreateSnapshot(ctx context.Context, snapshot models.Snapshot, prompts []models.Prompt) error
	// ListSnapshots returns every snapshot, newest first.
	ListSnapshots(ctx context.Context) ([]models.Snapshot, error)
	// GetSnapshotPrompts returns the prompts of a snapshot in their saved order.
	GetSnapshotPrompts(ctx context.Context, id string) ([]models.Prompt, error)
	// DeleteSnapshot removes a snapshot and its prompts.
	DeleteSnapshot(ctx context.Context, id string) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
