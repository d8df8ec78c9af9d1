// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the admin HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown once the context is cancelled or SIGINT/SIGTERM/SIGQUIT arrives.
package server
