package tui

import "github.com/junerver/prompt-keeper/models"

type pageLoadedMsg struct {
	page models.PromptPage
	err  error
}

type actionDoneMsg struct {
	action string
	err    error
}
