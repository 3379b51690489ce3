package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCustomErrorUnwrapsToClass(t *testing.T) {
	err := fmt.Errorf("adding skill: %w", NewConflictError("You already have this skill"))

	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict class, got %v", err)
	}
	if got := MessageOf(err, "fallback"); got != "You already have this skill" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestMessageOfFallsBackForPlainErrors(t *testing.T) {
	if got := MessageOf(errors.New("boom"), "Internal server error"); got != "Internal server error" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestWithDetailsDoesNotMutateSharedError(t *testing.T) {
	detailed := ErrNotOwner.WithDetails(map[string]interface{}{"id": 5})

	if ErrNotOwner.Details != nil {
		t.Fatalf("shared error was mutated")
	}
	if DetailsOf(detailed)["id"] != 5 {
		t.Fatalf("details not attached")
	}
	if !Is(detailed, ErrResourceNotFound, ErrPermissionDenied) {
		t.Fatalf("expected permission denied class")
	}
}
