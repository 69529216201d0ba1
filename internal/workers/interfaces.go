// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background jobs of the gift server.
// It defines the Worker interface and a Workers aggregate that starts and
// stops every job together with the server.
package workers

import "context"

// Worker is a background job bound to the lifetime of a context.
//
// Start must not block: the job runs in its own goroutine until ctx is
// cancelled or Stop is called. Stop blocks until that goroutine has exited
// and is a no-op for a job that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Sweeper removes expired gifts and reports how many were removed.
type Sweeper interface {
	SweepExpired(ctx context.Context) int
}
