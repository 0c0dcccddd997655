// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the Prompt API client: one function per backend
// endpoint of the /system/prompt resource.
//
// The client owns no HTTP mechanics. Every call is delegated, exactly once,
// to the injected [transport.Requester], and whatever it returns (reply or
// error) is handed back to the caller unchanged. Decoding the envelope and
// mapping errors belong to the layers above and below.
package adapter

import (
	"context"

	"github.com/junerver/prompt-keeper/internal/transport"
	"github.com/junerver/prompt-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/prompt_api_mock.go -package=mock

// PromptAPI is the thin client of the prompt management endpoints.
type PromptAPI interface {
	// List queries one page of prompts: GET /system/prompt/list with query
	// placed in the query string.
	List(ctx context.Context, query models.PromptQuery) (*transport.Response, error)

	// Get fetches one prompt: GET /system/prompt/info/{id}.
	Get(ctx context.Context, id int64) (*transport.Response, error)

	// Add creates a prompt: POST /system/prompt/add with the record as body.
	Add(ctx context.Context, prompt models.Prompt) (*transport.Response, error)

	// Update edits a prompt: POST /system/prompt/edit with the record as body.
	Update(ctx context.Context, prompt models.Prompt) (*transport.Response, error)

	// Delete removes one prompt: POST /system/prompt/remove/{id}, no body.
	Delete(ctx context.Context, id int64) (*transport.Response, error)

	// BatchDelete removes several prompts: POST /system/prompt/batchRemove
	// with the id list as body.
	BatchDelete(ctx context.Context, ids []int64) (*transport.Response, error)

	// Export downloads the spreadsheet of matching prompts:
	// POST /system/prompt/export with query placed in the query string.
	Export(ctx context.Context, query models.PromptQuery) (*transport.Response, error)
}
