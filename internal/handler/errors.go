// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServices is returned by NewHandlers when it is called without the
// service layer; handlers would fail on the first request otherwise.
var errNoServices = errors.New("no services are provided to handlers")
