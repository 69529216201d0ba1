// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive gift client runtime.
//
// It checks that the gift server is reachable, then hands the terminal over
// to the UI until the user quits or the process is interrupted.
package client
