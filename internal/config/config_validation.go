// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the server.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	s := cfg.Server
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, s.Port)
	}
	if s.PortAttempts < 1 || s.Port+s.PortAttempts-1 > 65535 {
		return fmt.Errorf("%w: port attempts %d", ErrInvalidServerConfigs, s.PortAttempts)
	}
	if s.RequestTimeout <= 0 || s.RateLimitWindow <= 0 || s.RateLimitMax <= 0 {
		return fmt.Errorf("%w: timeout and rate limits must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Storage.Files.UploadsDir == "" || cfg.Storage.Files.MaxFileSize <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (a App) validate() error {
	switch a.Mode {
	case ModeDevelopment, ModeProduction, ModeTest:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAppConfigs, a.Mode)
	}

	if a.PublicURL == "" {
		return nil
	}

	u, err := url.Parse(a.PublicURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: public url %q", ErrInvalidAppConfigs, a.PublicURL)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
