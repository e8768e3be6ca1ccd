package postgres

import (
	"database/sql"
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected true for sql.ErrNoRows")
	}
	if isNotFound(errors.New("pq: relation leagues does not exist")) {
		t.Fatal("expected false for unrelated error")
	}
}

func TestNullableString(t *testing.T) {
	if got := nullableString(""); got != nil {
		t.Fatalf("expected nil for empty string, got %v", got)
	}
	got := nullableString("449.l.1234.t.1")
	if got == nil || *got != "449.l.1234.t.1" {
		t.Fatalf("unexpected pointer value: %v", got)
	}
}

func TestNullStringToString(t *testing.T) {
	if got := nullStringToString(sql.NullString{}); got != "" {
		t.Fatalf("expected empty string for null, got %q", got)
	}
	if got := nullStringToString(sql.NullString{String: "win", Valid: true}); got != "win" {
		t.Fatalf("expected win, got %q", got)
	}
}
