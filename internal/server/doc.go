// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the gift server.
//
// It binds the HTTP listener (trying consecutive ports when the configured
// one is taken), starts the background workers, and on SIGTERM, SIGINT or
// SIGQUIT shuts the HTTP server down gracefully before stopping the workers.
package server
