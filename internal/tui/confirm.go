package tui

import "fmt"

type confirmModel struct {
	id      int64
	preview string
}

func (m confirmModel) View() string {
	content := fmt.Sprintf("Delete prompt %d?\n\n%s\n\n", m.id, m.preview)
	content += helpStyle.Render("y yes    n no")
	return overlayBoxStyle.Render(content)
}
