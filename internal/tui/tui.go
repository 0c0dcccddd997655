// Package tui implements the interactive prompt browser started by
// `promptctl browse`.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/service"
	"github.com/junerver/prompt-keeper/models"
)

// DefaultPageSize is the number of prompts shown per page.
const DefaultPageSize = 20

var errUnexpectedModel = errors.New("unexpected final model")

type TUI struct {
	prompts   service.PromptService
	buildInfo models.AppBuildInfo
	pageSize  int
	logger    *logger.Logger
}

func New(prompts service.PromptService, buildInfo models.AppBuildInfo, pageSize int, log *logger.Logger) *TUI {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{prompts: prompts, buildInfo: buildInfo, pageSize: pageSize, logger: log}
}

// Browse runs the prompt browser full-screen until the user quits.
func (t *TUI) Browse(ctx context.Context) error {
	model := newBrowserModel(ctx, t.prompts, t.buildInfo, t.pageSize)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}

	if _, ok := finalModel.(browserModel); !ok {
		return errUnexpectedModel
	}
	t.logger.Debug().Msg("prompt browser closed")
	return nil
}
