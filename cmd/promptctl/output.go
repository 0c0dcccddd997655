package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/junerver/prompt-keeper/models"
)

const tableContentWidth = 50

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func printPromptTable(w io.Writer, prompts []models.Prompt, total int64) error {
	rows := make([][]string, 0, len(prompts))
	for _, p := range prompts {
		enabled := "no"
		if p.IsEnabled() {
			enabled = "yes"
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			enabled,
			shorten(p.Content, tableContentWidth),
			p.Remark,
			p.UpdateTime,
		})
	}

	if err := printTable(w, []string{"ID", "ENABLED", "CONTENT", "REMARK", "UPDATED"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d prompts\n", len(prompts), total)
	return err
}

// shorten keeps the first line of s, cut to max runes.
func shorten(s string, max int) string {
	line, _, multiline := strings.Cut(strings.TrimSpace(s), "\n")
	r := []rune(line)
	if len(r) > max {
		return string(r[:max-1]) + "…"
	}
	if multiline {
		return line + " …"
	}
	return line
}
