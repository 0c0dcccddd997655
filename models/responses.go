package models

// CodeSuccess is the envelope code the backend returns for a successful call.
const CodeSuccess = 200

// Result is the backend's response envelope.
type Result[T any] struct {
	// Code is the business status code; 200 on success.
	Code int `json:"code"`

	// Msg is the human-readable outcome, populated on failures.
	Msg string `json:"msg"`

	// Data carries the payload. Absent for write operations.
	Data T `json:"data"`
}

// PageData is the paged list payload returned by list endpoints.
type PageData[T any] struct {
	// Total is the number of rows matching the query across all pages.
	Total int64 `json:"total"`

	// Rows holds the current page.
	Rows []T `json:"rows"`
}

// PromptPage is a single page of prompts.
type PromptPage = PageData[Prompt]
