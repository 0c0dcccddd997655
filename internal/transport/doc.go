// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport is the request utility every prompt backend call goes
// through. It owns the HTTP mechanics: base URL, bearer token, timeout,
// query and JSON body encoding.
//
// Non-2xx statuses are mapped to the sentinel errors defined in errors.go,
// and so are JSON envelopes whose "code" is not 200, because the backend
// reports most failures with HTTP 200 and an error code in the body. Callers
// use [errors.Is] to branch (e.g. [ErrUnauthorized] for an expired token).
package transport
