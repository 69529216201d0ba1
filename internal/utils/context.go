// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// gift server and the terminal client: context keys, client address
// resolution, JSON response writing, HTTP client initialization and id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClientAddressCtxKey is the key used to store the resolved client address
// in the request context.
//
//	ctx := context.WithValue(ctx, utils.ClientAddressCtxKey, "203.0.113.7")
var ClientAddressCtxKey = contextKey("clientAddress")

// GetClientAddressFromContext retrieves the client address stored by the
// address middleware. ok is false when the value is missing or empty.
func GetClientAddressFromContext(ctx context.Context) (string, bool) {
	addr, ok := ctx.Value(ClientAddressCtxKey).(string)
	return addr, ok && addr != ""
}

// WithClientAddress returns a copy of ctx carrying addr.
func WithClientAddress(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, ClientAddressCtxKey, addr)
}
