// Package validation provides input validation for user-supplied payloads.
package validation

import (
	"fmt"
	"regexp"

	"tutegram/internal/models"
)

const (
	MinNameLen     = 1
	MaxNameLen     = 56
	MinUsernameLen = 2
	MaxUsernameLen = 56
	MinPasswordLen = 8
	MaxPasswordLen = 56
	MaxBioLen      = 250
	MaxEmailLen    = 254
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// SignupInput carries the fields accepted at signup.
type SignupInput struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Username  string   `json:"userName"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Location  string   `json:"location"`
	Bio       string   `json:"bio"`
	Interests []string `json:"interests"`
}

// UpdateInput carries the fields accepted on profile update.
type UpdateInput struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Username  string   `json:"userName"`
	Age       *int     `json:"age"`
	Gender    string   `json:"gender"`
	Location  string   `json:"location"`
	Bio       string   `json:"bio"`
	Interests []string `json:"interests"`
}

// ValidateUsername checks username length and charset.
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLen {
		return fmt.Errorf("User Name must be atleast %d characters", MinUsernameLen)
	}
	if len(username) > MaxUsernameLen {
		return fmt.Errorf("User Name must be less than %d characters", MaxUsernameLen)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("User Name can only contain letters, numbers, underscores, and hyphens")
	}
	if username[0] == '_' || username[0] == '-' ||
		username[len(username)-1] == '_' || username[len(username)-1] == '-' {
		return fmt.Errorf("User Name cannot start or end with underscore or hyphen")
	}
	return nil
}

// ValidateEmail checks basic email format.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("Email is required")
	}
	if len(email) > MaxEmailLen {
		return fmt.Errorf("Email must not exceed %d characters", MaxEmailLen)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("Invalid email format")
	}
	return nil
}

// ValidatePassword checks password length bounds.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("Password must be atleast %d characters", MinPasswordLen)
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("Password must be less than %d characters", MaxPasswordLen)
	}
	return nil
}

// ValidateSignup returns field-level failures for a signup payload.
// Password is optional; external-provider accounts sign up without one.
func ValidateSignup(in SignupInput) []models.FieldError {
	var errs []models.FieldError

	if in.FirstName == "" {
		errs = append(errs, models.FieldError{Field: "firstName", Message: "First Name is required"})
	} else if len(in.FirstName) > MaxNameLen {
		errs = append(errs, models.FieldError{Field: "firstName", Message: fmt.Sprintf("First Name must be less than %d characters", MaxNameLen)})
	}
	if in.LastName != "" && len(in.LastName) > MaxNameLen {
		errs = append(errs, models.FieldError{Field: "lastName", Message: fmt.Sprintf("Last Name must be less than %d characters", MaxNameLen)})
	}
	if in.Username == "" {
		errs = append(errs, models.FieldError{Field: "userName", Message: "User Name is required"})
	} else if err := ValidateUsername(in.Username); err != nil {
		errs = append(errs, models.FieldError{Field: "userName", Message: err.Error()})
	}
	if err := ValidateEmail(in.Email); err != nil {
		errs = append(errs, models.FieldError{Field: "email", Message: err.Error()})
	}
	if in.Password != "" {
		if err := ValidatePassword(in.Password); err != nil {
			errs = append(errs, models.FieldError{Field: "password", Message: err.Error()})
		}
	}
	errs = append(errs, validateProfileExtras(in.Age, in.Bio, in.Interests)...)

	return errs
}

// ValidateUpdate returns field-level failures for a profile update payload.
// Updates are partial, so only provided fields are checked.
func ValidateUpdate(in UpdateInput) []models.FieldError {
	var errs []models.FieldError

	if in.FirstName != "" && len(in.FirstName) > MaxNameLen {
		errs = append(errs, models.FieldError{Field: "firstName", Message: fmt.Sprintf("First Name must be less than %d characters", MaxNameLen)})
	}
	if in.LastName != "" && len(in.LastName) > MaxNameLen {
		errs = append(errs, models.FieldError{Field: "lastName", Message: fmt.Sprintf("Last Name must be less than %d characters", MaxNameLen)})
	}
	if in.Username != "" {
		if err := ValidateUsername(in.Username); err != nil {
			errs = append(errs, models.FieldError{Field: "userName", Message: err.Error()})
		}
	}

	age := 0
	if in.Age != nil {
		age = *in.Age
	}
	errs = append(errs, validateProfileExtras(age, in.Bio, in.Interests)...)

	return errs
}

func validateProfileExtras(age int, bio string, interests []string) []models.FieldError {
	var errs []models.FieldError
	if age < 0 {
		errs = append(errs, models.FieldError{Field: "age", Message: "Age cannot be negative"})
	}
	if len(bio) > MaxBioLen {
		errs = append(errs, models.FieldError{Field: "bio", Message: fmt.Sprintf("Bio must be less than %d characters", MaxBioLen)})
	}
	if len(interests) > models.MaxInterests {
		errs = append(errs, models.FieldError{Field: "interests", Message: fmt.Sprintf("Interests must be less than %d", models.MaxInterests)})
	}
	return errs
}

// CheckAllowedFields rejects unknown top-level keys in a JSON payload.
func CheckAllowedFields(body map[string]any, allowed map[string]struct{}) []models.FieldError {
	var errs []models.FieldError
	for field := range body {
		if _, ok := allowed[field]; !ok {
			errs = append(errs, models.FieldError{Field: field, Message: fmt.Sprintf("%s is not allowed", field)})
		}
	}
	return errs
}
