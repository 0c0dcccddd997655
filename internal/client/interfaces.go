// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Browser is the interactive prompt browser started by [App.Browse].
type Browser interface {
	// Browse blocks until the user quits the browser.
	Browse(ctx context.Context) error
}
