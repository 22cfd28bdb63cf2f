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

func TestSubjectCtxKey(t *testing.T) {
	if SubjectCtxKey.String() != "subject" {
		t.Errorf("expected 'subject', got '%s'", SubjectCtxKey.String())
	}
}

func TestGetSubjectFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, "ops")

	subject, ok := GetSubjectFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if subject != "ops" {
		t.Errorf("expected subject 'ops', got '%s'", subject)
	}
}

func TestGetSubjectFromContext_Missing(t *testing.T) {
	_, ok := GetSubjectFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing key")
	}
}

func TestGetSubjectFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, "")

	_, ok := GetSubjectFromContext(ctx)

	if ok {
		t.Error("expected ok=false for empty subject")
	}
}

func TestGetSubjectFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, 42)

	_, ok := GetSubjectFromContext(ctx)

	if ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetSubjectFromContext_PlainStringKeyIgnored(t *testing.T) {
	//nolint:staticcheck // intentional: a plain string key must not match
	ctx := context.WithValue(context.Background(), "subject", "ops")

	_, ok := GetSubjectFromContext(ctx)

	if ok {
		t.Error("expected ok=false when value stored under a plain string key")
	}
}
