package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/junerver/prompt-keeper/internal/service"
	"github.com/junerver/prompt-keeper/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenConfirm
	screenFilter
	screenBuildInfo
)

const (
	actionToggle = "toggle"
	actionDelete = "delete"
)

const rowContentWidth = 60

type browserModel struct {
	ctx       context.Context
	prompts   service.PromptService
	buildInfo models.AppBuildInfo
	copyFn    func(string) error

	query models.PromptQuery
	items []models.Prompt
	total int64
	idx   int

	screen     screen
	prevScreen screen

	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	filter   textinput.Model
	detail   viewport.Model
	confirm  confirmModel
	width    int
	height   int
	quitting bool
}

func newBrowserModel(ctx context.Context, prompts service.PromptService, buildInfo models.AppBuildInfo, pageSize int) browserModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.Placeholder = "content contains..."
	ti.Prompt = "/ "
	ti.CharLimit = 200

	return browserModel{
		ctx:       ctx,
		prompts:   prompts,
		buildInfo: buildInfo,
		copyFn:    clipboard.WriteAll,
		query:     models.PromptQuery{PageNum: 1, PageSize: pageSize},
		screen:    screenList,
		loading:   true,
		spinner:   sp,
		filter:    ti,
		detail:    viewport.New(80, 20),
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadPage())
}

func (m browserModel) cmdLoadPage() tea.Cmd {
	ctx, prompts, query := m.ctx, m.prompts, m.query
	return func() tea.Msg {
		page, err := prompts.List(ctx, query)
		return pageLoadedMsg{page: page, err: err}
	}
}

func (m browserModel) cmdToggle(p models.Prompt) tea.Cmd {
	ctx, prompts := m.ctx, m.prompts
	update := models.Prompt{
		ID:      p.ID,
		Content: p.Content,
		Remark:  p.Remark,
		Enabled: models.EnabledFlag(!p.IsEnabled()),
	}
	return func() tea.Msg {
		return actionDoneMsg{action: actionToggle, err: prompts.Update(ctx, update)}
	}
}

func (m browserModel) cmdDelete(id int64) tea.Cmd {
	ctx, prompts := m.ctx, m.prompts
	return func() tea.Msg {
		return actionDoneMsg{action: actionDelete, err: prompts.Delete(ctx, id)}
	}
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.detail.Width = max(msg.Width-4, 20)
		m.detail.Height = max(msg.Height-8, 5)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pageLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.page.Rows
		m.total = msg.page.Total
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.loading = false
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		switch msg.action {
		case actionDelete:
			m.status = "Prompt deleted"
		case actionToggle:
			m.status = "Prompt updated"
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadPage())

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenFilter:
			return m.updateFilter(msg)
		case screenConfirm:
			return m.updateConfirm(msg)
		case screenDetail:
			return m.updateDetail(msg)
		case screenBuildInfo:
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.quit) {
				m.screen = m.prevScreen
			}
			return m, nil
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m browserModel) selected() (models.Prompt, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Prompt{}, false
	}
	return m.items[m.idx], true
}

func (m browserModel) lastPage() int {
	if m.query.PageSize <= 0 || m.total <= 0 {
		return 1
	}
	return int((m.total + int64(m.query.PageSize) - 1) / int64(m.query.PageSize))
}

func (m browserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.nextPage):
		if m.loading || m.query.PageNum >= m.lastPage() {
			return m, nil
		}
		m.query.PageNum++
		return m.reload()
	case key.Matches(msg, keys.prevPage):
		if m.loading || m.query.PageNum <= 1 {
			return m, nil
		}
		m.query.PageNum--
		return m.reload()
	case key.Matches(msg, keys.reload):
		return m.reload()
	case key.Matches(msg, keys.filter):
		m.screen = screenFilter
		m.filter.SetValue(m.query.Content)
		cmd := m.filter.Focus()
		return m, cmd
	case key.Matches(msg, keys.buildInfo):
		m.prevScreen = screenList
		m.screen = screenBuildInfo
	case key.Matches(msg, keys.enter):
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.detail.SetContent(renderDetail(p))
		m.detail.GotoTop()
		m.screen = screenDetail
	default:
		return m.updateSelectionActions(msg, screenList)
	}
	return m, nil
}

func (m browserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		m.screen = screenList
		return m, nil
	case key.Matches(msg, keys.buildInfo):
		m.prevScreen = screenDetail
		m.screen = screenBuildInfo
		return m, nil
	case key.Matches(msg, keys.toggle), key.Matches(msg, keys.delete), key.Matches(msg, keys.copy):
		return m.updateSelectionActions(msg, screenDetail)
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// updateSelectionActions handles the keys acting on the selected prompt,
// shared by the list and detail screens.
func (m browserModel) updateSelectionActions(msg tea.KeyMsg, from screen) (tea.Model, tea.Cmd) {
	p, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.toggle):
		if m.loading {
			return m, nil
		}
		m.loading = true
		if from == screenDetail {
			m.screen = screenList
		}
		return m, tea.Batch(m.spinner.Tick, m.cmdToggle(p))
	case key.Matches(msg, keys.delete):
		m.prevScreen = from
		m.confirm = confirmModel{id: p.ID, preview: fitText(firstLine(p.Content), rowContentWidth)}
		m.screen = screenConfirm
	case key.Matches(msg, keys.copy):
		if err := m.copyFn(p.Content); err != nil {
			m.errMsg = "Copy failed: " + err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("Prompt %d copied to clipboard", p.ID)
	}
	return m, nil
}

func (m browserModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.screen = screenList
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdDelete(m.confirm.id))
	case key.Matches(msg, keys.no):
		m.screen = m.prevScreen
	}
	return m, nil
}

func (m browserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filter.Blur()
		m.screen = screenList
		m.query.Content = strings.TrimSpace(m.filter.Value())
		m.query.PageNum = 1
		m.idx = 0
		return m.reload()
	case tea.KeyEsc:
		m.filter.Blur()
		m.screen = screenList
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m browserModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, m.cmdLoadPage())
}

func (m browserModel) View() string {
	if m.quitting {
		return ""
	}

	var view string
	switch m.screen {
	case screenDetail:
		view = renderPage("PROMPT", m.detail.View(), "t: toggle    d: delete    c: copy    esc: back")
	case screenConfirm:
		view = m.confirm.View()
	case screenBuildInfo:
		view = m.aboutView()
	default:
		view = m.listView()
	}

	if m.errMsg != "" {
		view += "\n" + renderError(m.errMsg)
	}
	if m.status != "" {
		view += "\n" + statusStyle.Render(m.status)
	}
	return view
}

func (m browserModel) aboutView() string {
	fields := []struct{ label, value string }{
		{"Application", "promptctl"},
		{"Version", m.buildInfo.BuildVersion()},
		{"Built", m.buildInfo.BuildDate()},
		{"Commit", m.buildInfo.BuildCommit()},
		{"Page size", fmt.Sprint(m.query.PageSize)},
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%-12s %s", f.label+":", valueOrDash(strings.TrimSpace(f.value))))
	}
	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}

func (m browserModel) listView() string {
	var b strings.Builder

	if m.screen == screenFilter {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	} else if m.query.Content != "" {
		b.WriteString(helpStyle.Render("filter: " + m.query.Content))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(m.spinner.View() + " Loading prompts...")
	case len(m.items) == 0:
		b.WriteString("No prompts found")
	default:
		for i, p := range m.items {
			b.WriteString(renderRow(p, i == m.idx))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		pageInfo := fmt.Sprintf("page %d/%d, %d prompts", m.query.PageNum, m.lastPage(), m.total)
		if m.loading {
			pageInfo = m.spinner.View() + " " + pageInfo
		}
		b.WriteString(helpStyle.Render(pageInfo))
	}

	hotKeys := "enter: open    t: toggle    d: delete    c: copy    /: filter    n/p: page    r: reload    v: about    q: quit"
	if m.screen == screenFilter {
		hotKeys = "enter: apply    esc: cancel"
	}
	return renderPage("PROMPTS", b.String(), hotKeys)
}

func renderRow(p models.Prompt, selected bool) string {
	state := "[off]"
	if p.IsEnabled() {
		state = "[on] "
	}
	row := fmt.Sprintf("%s %6d  %s", state, p.ID, fitText(firstLine(p.Content), rowContentWidth))

	switch {
	case selected:
		return selectedStyle.Render("> " + row)
	case !p.IsEnabled():
		return disabledStyle.Render("  " + row)
	default:
		return "  " + row
	}
}

func renderDetail(p models.Prompt) string {
	state := "disabled"
	if p.IsEnabled() {
		state = "enabled"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ID: %d\n", p.ID)
	fmt.Fprintf(&b, "State: %s\n", state)
	fmt.Fprintf(&b, "Remark: %s\n", valueOrDash(p.Remark))
	fmt.Fprintf(&b, "Created: %s by %s\n", valueOrDash(p.CreateTime), valueOrDash(p.CreateBy))
	fmt.Fprintf(&b, "Updated: %s by %s\n", valueOrDash(p.UpdateTime), valueOrDash(p.UpdateBy))
	b.WriteString("\n")
	b.WriteString(p.Content)
	return b.String()
}
