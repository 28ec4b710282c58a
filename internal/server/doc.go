// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the API listener and the optional metrics listener.
//
// It owns their lifecycle: startup, signal handling, and graceful shutdown
// bounded by the configured timeout.
package server
