package validation_test

import (
	"encoding/json"
	"testing"

	"task-manager/internal/validation"
)

func TestCheckPatch_AllowedKeys(t *testing.T) {
	patch := map[string]json.RawMessage{
		"description": json.RawMessage(`"updated"`),
		"completed":   json.RawMessage(`true`),
	}
	if err := validation.CheckPatch("task", patch, "description", "completed"); err != nil {
		t.Fatalf("CheckPatch: %v", err)
	}
}

func TestCheckPatch_EmptyPatch(t *testing.T) {
	if err := validation.CheckPatch("task", nil, "description", "completed"); err == nil {
		t.Fatal("expected empty patch to be rejected")
	}
	if err := validation.CheckPatch("task", map[string]json.RawMessage{}, "description", "completed"); err == nil {
		t.Fatal("expected zero-key patch to be rejected")
	}
}

func TestCheckPatch_UnknownKeyRejectsWholePatch(t *testing.T) {
	// One bad key invalidates the request even when every other key is valid.
	patch := map[string]json.RawMessage{
		"description": json.RawMessage(`"updated"`),
		"priority":    json.RawMessage(`3`),
	}
	if err := validation.CheckPatch("task", patch, "description", "completed"); err == nil {
		t.Fatal("expected patch with unknown key to be rejected")
	}
}
