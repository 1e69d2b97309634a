package validation

import "strings"

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 7

// UserInput is a candidate user record before hashing and persistence.
type UserInput struct {
	Name     string
	Email    string
	Password string
	Age      int
}

// NormalizeUserInput trims name, email, and password and lowercases the
// email. Runs before any length or content check and before the uniqueness
// check at the persistence boundary.
func NormalizeUserInput(in *UserInput) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Password = strings.TrimSpace(in.Password)
}

// ValidateUser checks every field of a normalized candidate user and reports
// all failures together.
func ValidateUser(in UserInput) error {
	var errs Errors

	if in.Name == "" {
		errs = append(errs, FieldError{Entity: "user", Field: "name", Reason: ReasonRequired})
	}

	switch {
	case in.Email == "":
		errs = append(errs, FieldError{Entity: "user", Field: "email", Reason: ReasonRequired})
	case !ValidEmail(in.Email):
		errs = append(errs, FieldError{Entity: "user", Field: "email", Reason: ReasonInvalidFormat})
	}

	switch {
	case in.Password == "":
		errs = append(errs, FieldError{Entity: "user", Field: "password", Reason: ReasonRequired})
	case len(in.Password) < MinPasswordLength:
		errs = append(errs, FieldError{Entity: "user", Field: "password", Reason: ReasonTooShort})
	}
	// Rejected regardless of length.
	if in.Password != "" && strings.Contains(strings.ToLower(in.Password), "password") {
		errs = append(errs, FieldError{Entity: "user", Field: "password", Reason: ReasonPasswordWord})
	}

	if in.Age < 0 {
		errs = append(errs, FieldError{Entity: "user", Field: "age", Reason: ReasonNegative})
	}

	return errs.OrNil()
}
