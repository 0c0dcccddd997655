package service

import "errors"

var (
	ErrPromptNotFound = errors.New("prompt not found")
	ErrNoPromptIDs    = errors.New("no prompt ids given")
)
