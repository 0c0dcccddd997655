// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/junerver/prompt-keeper/internal/mock"
	"github.com/junerver/prompt-keeper/internal/transport"
	"github.com/junerver/prompt-keeper/models"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func samplePage() models.PromptPage {
	return models.PromptPage{
		Total: 45,
		Rows: []models.Prompt{
			{ID: 1, Content: "Summarize the text\nsecond line", Enabled: models.EnabledFlag(true), Remark: "summary"},
			{ID: 2, Content: "Translate to French", Enabled: models.EnabledFlag(false)},
		},
	}
}

func loadedModel(t *testing.T, svc *mock.MockPromptService) browserModel {
	t.Helper()
	m := newBrowserModel(context.Background(), svc, models.NewAppBuildInfo("v1.0.0", "2026-01-01", "abc"), 20)
	updated, _ := m.Update(pageLoadedMsg{page: samplePage()})
	return updated.(browserModel)
}

// runCmd executes cmd and returns the first message that is not a spinner tick.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			switch inner := c().(type) {
			case pageLoadedMsg, actionDoneMsg:
				return inner
			}
		}
		t.Fatalf("batch carries no browser message")
	}
	return msg
}

func TestBrowser_InitLoadsFirstPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockPromptService(ctrl)

	svc.EXPECT().
		List(gomock.Any(), models.PromptQuery{PageNum: 1, PageSize: 20}).
		Return(samplePage(), nil)

	m := newBrowserModel(context.Background(), svc, models.AppBuildInfo{}, 20)
	assert.True(t, m.loading)

	msg := runCmd(t, m.Init())
	loaded, ok := msg.(pageLoadedMsg)
	require.True(t, ok)

	updated, _ := m.Update(loaded)
	got := updated.(browserModel)
	assert.False(t, got.loading)
	assert.Len(t, got.items, 2)
	assert.EqualValues(t, 45, got.total)
	assert.Contains(t, got.View(), "Summarize the text")
	assert.NotContains(t, got.View(), "second line")
	assert.Contains(t, got.View(), "page 1/3, 45 prompts")
}

func TestBrowser_LoadErrorIsHumanized(t *testing.T) {
	m := newBrowserModel(context.Background(), nil, models.AppBuildInfo{}, 20)

	updated, _ := m.Update(pageLoadedMsg{err: fmt.Errorf("list prompts: %w", transport.ErrUnauthorized)})
	got := updated.(browserModel)

	assert.Contains(t, got.errMsg, "rejected the token")
	assert.Contains(t, got.View(), "Error:")
}

func TestBrowser_Navigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := loadedModel(t, mock.NewMockPromptService(ctrl))

	updated, _ := m.Update(keyRunes("j"))
	m = updated.(browserModel)
	assert.Equal(t, 1, m.idx)

	updated, _ = m.Update(keyRunes("j"))
	m = updated.(browserModel)
	assert.Equal(t, 1, m.idx, "cursor stays on the last row")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(browserModel)
	assert.Equal(t, 0, m.idx)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(browserModel)
	assert.Equal(t, screenDetail, m.screen)
	assert.Contains(t, m.View(), "Remark: summary")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(browserModel)
	assert.Equal(t, screenList, m.screen)
}

func TestBrowser_Paging(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockPromptService(ctrl)
	m := loadedModel(t, svc)

	updated, _ := m.Update(keyRunes("p"))
	m = updated.(browserModel)
	assert.Equal(t, 1, m.query.PageNum, "no page before the first")

	svc.EXPECT().
		List(gomock.Any(), models.PromptQuery{PageNum: 2, PageSize: 20}).
		Return(samplePage(), nil)

	updated, cmd := m.Update(keyRunes("n"))
	m = updated.(browserModel)
	assert.Equal(t, 2, m.query.PageNum)
	assert.True(t, m.loading)

	updated, _ = m.Update(runCmd(t, cmd))
	m = updated.(browserModel)
	assert.False(t, m.loading)

	m.query.PageNum = 3
	updated, cmd = m.Update(keyRunes("n"))
	m = updated.(browserModel)
	assert.Equal(t, 3, m.query.PageNum, "no page after the last")
	assert.Nil(t, cmd)
}

func TestBrowser_ToggleEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockPromptService(ctrl)
	m := loadedModel(t, svc)

	gomock.InOrder(
		svc.EXPECT().
			Update(gomock.Any(), models.Prompt{
				ID:      1,
				Content: "Summarize the text\nsecond line",
				Remark:  "summary",
				Enabled: models.EnabledFlag(false),
			}).
			Return(nil),
		svc.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(samplePage(), nil),
	)

	updated, cmd := m.Update(keyRunes("t"))
	m = updated.(browserModel)

	done, ok := runCmd(t, cmd).(actionDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.err)

	updated, cmd = m.Update(done)
	m = updated.(browserModel)
	assert.Equal(t, "Prompt updated", m.status)

	_, ok = runCmd(t, cmd).(pageLoadedMsg)
	assert.True(t, ok)
}

func TestBrowser_DeleteWithConfirmation(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockPromptService(ctrl)
		m := loadedModel(t, svc)

		svc.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		updated, _ := m.Update(keyRunes("d"))
		m = updated.(browserModel)
		require.Equal(t, screenConfirm, m.screen)
		assert.Contains(t, m.View(), "Delete prompt 1?")

		updated, cmd := m.Update(keyRunes("y"))
		m = updated.(browserModel)
		assert.Equal(t, screenList, m.screen)

		done, ok := runCmd(t, cmd).(actionDoneMsg)
		require.True(t, ok)
		assert.Equal(t, actionDelete, done.action)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := loadedModel(t, mock.NewMockPromptService(ctrl))

		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
		m = updated.(browserModel)
		require.Equal(t, screenConfirm, m.screen)

		updated, cmd := m.Update(keyRunes("n"))
		m = updated.(browserModel)
		assert.Equal(t, screenList, m.screen)
		assert.Nil(t, cmd)
	})

	t.Run("failure keeps the list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := loadedModel(t, mock.NewMockPromptService(ctrl))

		updated, cmd := m.Update(actionDoneMsg{action: actionDelete, err: transport.ErrForbidden})
		m = updated.(browserModel)
		assert.Nil(t, cmd)
		assert.Len(t, m.items, 2)
		assert.Contains(t, m.errMsg, "lacks permission")
	})
}

func TestBrowser_CopyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := loadedModel(t, mock.NewMockPromptService(ctrl))

	var copied string
	m.copyFn = func(s string) error {
		copied = s
		return nil
	}

	updated, _ := m.Update(keyRunes("c"))
	m = updated.(browserModel)
	assert.Equal(t, "Summarize the text\nsecond line", copied)
	assert.Equal(t, "Prompt 1 copied to clipboard", m.status)

	m.copyFn = func(string) error { return errors.New("no clipboard utility") }
	updated, _ = m.Update(keyRunes("c"))
	m = updated.(browserModel)
	assert.Equal(t, "Copy failed: no clipboard utility", m.errMsg)
}

func TestBrowser_Filter(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockPromptService(ctrl)
	m := loadedModel(t, svc)
	m.query.PageNum = 2

	updated, _ := m.Update(keyRunes("/"))
	m = updated.(browserModel)
	require.Equal(t, screenFilter, m.screen)

	updated, _ = m.Update(keyRunes("summ"))
	m = updated.(browserModel)

	svc.EXPECT().
		List(gomock.Any(), models.PromptQuery{PageNum: 1, PageSize: 20, Content: "summ"}).
		Return(samplePage(), nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(browserModel)
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "summ", m.query.Content)

	_, ok := runCmd(t, cmd).(pageLoadedMsg)
	assert.True(t, ok)
	assert.Contains(t, m.View(), "filter: summ")
}

func TestBrowser_BuildInfoAndQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := loadedModel(t, mock.NewMockPromptService(ctrl))

	updated, _ := m.Update(keyRunes("v"))
	m = updated.(browserModel)
	about := m.View()
	assert.Contains(t, about, "Version:     v1.0.0")
	assert.Contains(t, about, "Commit:      abc")
	assert.Contains(t, about, "Page size:   20")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(browserModel)
	assert.Equal(t, screenList, m.screen)

	updated, cmd := m.Update(keyRunes("q"))
	m = updated.(browserModel)
	assert.True(t, m.quitting)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short", in: "abc", max: 10, want: "abc"},
		{name: "cut", in: "abcdefghij", max: 6, want: "abc..."},
		{name: "runes", in: "привет мир", max: 6, want: "при..."},
		{name: "tiny", in: "abcdef", max: 2, want: "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}
