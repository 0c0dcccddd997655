// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the runtime shared by the promptctl commands.
//
// It wires the request utility, the Prompt API client, the optional
// snapshot store and the business services into a single [App] that
// commands use for the lifetime of one invocation.
package client
