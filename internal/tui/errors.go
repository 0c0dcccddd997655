// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/junerver/prompt-keeper/internal/transport"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, transport.ErrUnauthorized):
		return "The backend rejected the token; set ADAPTER_TOKEN or --token"
	case errors.Is(err, transport.ErrForbidden):
		return "The token lacks permission for prompt management"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the backend is unreachable"
	}

	return err.Error()
}
