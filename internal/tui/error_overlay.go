package tui

import "strings"

func renderError(msg string) string {
	if strings.TrimSpace(msg) == "" {
		return ""
	}
	return errorStyle.Render("Error: " + msg)
}
