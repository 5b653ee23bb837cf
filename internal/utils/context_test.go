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

func TestPrincipalCtxKey(t *testing.T) {
	if PrincipalCtxKey.String() != "principal" {
		t.Errorf("expected 'principal', got '%s'", PrincipalCtxKey.String())
	}
}

func TestGetPrincipalFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "admin")

	principal, ok := GetPrincipalFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if principal != "admin" {
		t.Errorf("expected principal=admin, got %s", principal)
	}
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	principal, ok := GetPrincipalFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing key")
	}
	if principal != "" {
		t.Errorf("expected empty principal, got %s", principal)
	}
}

func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, 42)

	if _, ok := GetPrincipalFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type")
	}
}

func TestGetPrincipalFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "")

	if _, ok := GetPrincipalFromContext(ctx); ok {
		t.Error("expected ok=false for empty principal")
	}
}

func TestGetPrincipalFromContext_PlainStringKeyDoesNotCollide(t *testing.T) {
	//nolint:staticcheck
	ctx := context.WithValue(context.Background(), "principal", "admin")

	if _, ok := GetPrincipalFromContext(ctx); ok {
		t.Error("expected ok=false: plain string key must not match contextKey")
	}
}
