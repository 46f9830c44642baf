package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-movie-keeper/models"
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
	want := models.Principal{UserID: 42, Email: "a@b.c", Name: "A"}
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, want)

	principal, ok := GetPrincipalFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if principal != want {
		t.Errorf("expected principal %+v, got %+v", want, principal)
	}
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	principal, ok := GetPrincipalFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if principal != (models.Principal{}) {
		t.Errorf("expected zero principal, got %+v", principal)
	}
}

func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "not-a-principal")

	_, ok := GetPrincipalFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}
