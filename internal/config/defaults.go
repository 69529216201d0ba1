// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Runtime modes accepted by [App.Mode].
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
	ModeTest        = "test"
)

// defaults returns the values used for every field no other source set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Mode:    ModeProduction,
			Version: "dev",
		},
		Storage: Storage{
			DB:    DB{DSN: "gifts-history.db"},
			Files: Files{UploadsDir: "public/uploads", MaxFileSize: 5 << 20},
		},
		Server: Server{
			Port:            3005,
			PortAttempts:    10,
			RequestTimeout:  30 * time.Second,
			RateLimitWindow: 15 * time.Minute,
			RateLimitMax:    100,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:3005",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			SweepInterval: 24 * time.Hour,
		},
	}
}

// IsDevelopment reports whether internal error details may be exposed.
func (a App) IsDevelopment() bool {
	return a.Mode == ModeDevelopment
}
