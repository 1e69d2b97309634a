package validation

import (
	"strings"

	"task-manager/internal/domain"
)

// ValidateTask checks a task record after trimming its description.
func ValidateTask(task *domain.Task) error {
	var errs Errors

	task.Description = strings.TrimSpace(task.Description)
	if task.Description == "" {
		errs = append(errs, FieldError{Entity: "task", Field: "description", Reason: ReasonRequired})
	}

	return errs.OrNil()
}
