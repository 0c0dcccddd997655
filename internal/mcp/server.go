// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mcp exposes the prompt operations as Model Context Protocol tools
// and publishes every enabled backend prompt as an MCP prompt.
package mcp

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/service"
	"github.com/junerver/prompt-keeper/models"
)

// ServerName is reported to MCP clients during initialization.
const ServerName = "prompt-keeper"

// PromptNamePrefix prefixes the MCP name of every published prompt.
const PromptNamePrefix = "prompt_"

const descriptionLimit = 80

// Server owns the MCP server and the set of prompts published on it.
type Server struct {
	mcp       *server.MCPServer
	prompts   service.PromptService
	snapshots service.SnapshotService
	logger    *logger.Logger

	mu        sync.Mutex
	published map[string]struct{}
}

// NewServer registers the prompt tools on a fresh MCP server. snapshots may
// be nil, in which case the snapshot tools are left out.
func NewServer(prompts service.PromptService, snapshots service.SnapshotService, version string, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}

	s := &Server{
		mcp: server.NewMCPServer(
			ServerName,
			version,
			server.WithToolCapabilities(true),
			server.WithPromptCapabilities(true),
			server.WithRecovery(),
		),
		prompts:   prompts,
		snapshots: snapshots,
		logger:    log,
		published: make(map[string]struct{}),
	}

	s.registerTools()

	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// RefreshPrompts re-publishes every enabled backend prompt as prompt_<id>
// and withdraws prompts that are gone or disabled. It returns how many
// prompts are published afterwards.
func (s *Server) RefreshPrompts(ctx context.Context) (int, error) {
	all, err := s.prompts.ListAll(ctx, models.PromptQuery{Enabled: models.EnabledFlag(true)})
	if err != nil {
		return 0, fmt.Errorf("refresh published prompts: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]struct{}, len(all))
	for _, p := range all {
		// the backend may ignore the filter
		if !p.IsEnabled() {
			continue
		}
		name := PromptName(p.ID)
		next[name] = struct{}{}
		s.mcp.AddPrompt(newPrompt(name, p), s.promptHandler(p.ID))
	}

	var stale []string
	for name := range s.published {
		if _, ok := next[name]; !ok {
			stale = append(stale, name)
		}
	}
	if len(stale) > 0 {
		sort.Strings(stale)
		s.mcp.DeletePrompts(stale...)
	}
	s.published = next

	s.logger.Debug().Int("published", len(next)).Int("withdrawn", len(stale)).Msg("prompts refreshed")
	return len(next), nil
}

// Published lists the names of the currently published prompts, sorted.
func (s *Server) Published() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.published))
	for name := range s.published {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PromptName is the MCP prompt name for backend prompt id.
func PromptName(id int64) string {
	return PromptNamePrefix + strconv.FormatInt(id, 10)
}

func newPrompt(name string, p models.Prompt) mcp.Prompt {
	return mcp.NewPrompt(name, mcp.WithPromptDescription(describe(p)))
}

func (s *Server) promptHandler(id int64) server.PromptHandlerFunc {
	return func(ctx context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		p, err := s.prompts.Get(ctx, id)
		if err != nil {
			s.logger.Err(err).Int64("prompt_id", id).Msg("failed to fetch published prompt")
			return nil, err
		}
		return mcp.NewGetPromptResult(
			describe(p),
			[]mcp.PromptMessage{
				mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(p.Content)),
			},
		), nil
	}
}

// describe prefers the remark and falls back to the first line of content.
func describe(p models.Prompt) string {
	text := strings.TrimSpace(p.Remark)
	if text == "" {
		text, _, _ = strings.Cut(strings.TrimSpace(p.Content), "\n")
	}
	if r := []rune(text); len(r) > descriptionLimit {
		text = string(r[:descriptionLimit-1]) + "…"
	}
	return text
}
