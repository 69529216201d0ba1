// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by the client.
type UI interface {
	// Run blocks until the user quits. A non-empty giftRef opens that gift
	// for reveal instead of the creation page.
	Run(ctx context.Context, giftRef string) error
}
