// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestClientAddressCtxKey(t *testing.T) {
	if ClientAddressCtxKey.String() != "clientAddress" {
		t.Errorf("expected 'clientAddress', got '%s'", ClientAddressCtxKey.String())
	}
}

func TestGetClientAddressFromContext_Success(t *testing.T) {
	ctx := WithClientAddress(context.Background(), "203.0.113.7")

	addr, ok := GetClientAddressFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if addr != "203.0.113.7" {
		t.Errorf("expected '203.0.113.7', got '%s'", addr)
	}
}

func TestGetClientAddressFromContext_Missing(t *testing.T) {
	_, ok := GetClientAddressFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetClientAddressFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientAddressCtxKey, 42)

	_, ok := GetClientAddressFromContext(ctx)
	if ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetClientAddressFromContext_Empty(t *testing.T) {
	ctx := WithClientAddress(context.Background(), "")

	_, ok := GetClientAddressFromContext(ctx)
	if ok {
		t.Error("expected ok=false for empty address")
	}
}
