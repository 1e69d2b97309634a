package validation

import (
	"encoding/json"
	"slices"
)

// CheckPatch enforces all-or-nothing partial updates: the patch is rejected
// when it is empty or when any key falls outside the whitelist. No field is
// applied from a rejected patch.
func CheckPatch(entity string, patch map[string]json.RawMessage, allowed ...string) error {
	var errs Errors

	if len(patch) == 0 {
		errs = append(errs, FieldError{Entity: entity, Field: "patch", Reason: ReasonRequired})
		return errs
	}

	for key := range patch {
		if !slices.Contains(allowed, key) {
			errs = append(errs, FieldError{Entity: entity, Field: key, Reason: "not updatable"})
		}
	}

	return errs.OrNil()
}
