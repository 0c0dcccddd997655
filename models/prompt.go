package models

import (
	"net/url"
	"strconv"
)

// Prompt enabled flag values as stored by the backend.
const (
	PromptDisabled = 0
	PromptEnabled  = 1
)

// Prompt is a server-side record of AI prompt text.
//
// The backend owns the shape; the client only carries it between the
// backend and the user-facing surfaces. Timestamps are kept as the
// backend renders them ("2006-01-02 15:04:05").
type Prompt struct {
	ID         int64   `json:"id,omitempty"`
	Content    string  `json:"content,omitempty"`
	Enabled    *int    `json:"enabled,omitempty"`
	CreateBy   string  `json:"createBy,omitempty"`
	CreateTime string  `json:"createTime,omitempty"`
	UpdateBy   string  `json:"updateBy,omitempty"`
	UpdateTime string  `json:"updateTime,omitempty"`
	DelFlag    string  `json:"delFlag,omitempty"`
	Remark     string  `json:"remark,omitempty"`
	IDs        []int64 `json:"ids,omitempty"`
}

// IsEnabled reports whether the prompt carries the enabled flag.
func (p Prompt) IsEnabled() bool {
	return p.Enabled != nil && *p.Enabled == PromptEnabled
}

// EnabledFlag returns a pointer suitable for [Prompt.Enabled].
func EnabledFlag(enabled bool) *int {
	v := PromptDisabled
	if enabled {
		v = PromptEnabled
	}
	return &v
}

// PromptQuery holds list filters and paging parameters. Zero values are
// omitted from the query string so the backend applies its own defaults.
type PromptQuery struct {
	PageNum       int
	PageSize      int
	Content       string
	Enabled       *int
	Remark        string
	OrderByColumn string
	IsAsc         string
}

// Values encodes the query the way the backend binds request parameters.
func (q PromptQuery) Values() url.Values {
	v := url.Values{}
	if q.PageNum > 0 {
		v.Set("pageNum", strconv.Itoa(q.PageNum))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.Content != "" {
		v.Set("content", q.Content)
	}
	if q.Enabled != nil {
		v.Set("enabled", strconv.Itoa(*q.Enabled))
	}
	if q.Remark != "" {
		v.Set("remark", q.Remark)
	}
	if q.OrderByColumn != "" {
		v.Set("orderByColumn", q.OrderByColumn)
	}
	if q.IsAsc != "" {
		v.Set("isAsc", q.IsAsc)
	}
	return v
}

// BatchRemoveRequest is the body of a batch delete. The backend binds it to
// the prompt record, reading only its ids.
type BatchRemoveRequest struct {
	IDs []int64 `json:"ids"`
}
