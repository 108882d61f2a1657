package types

import (
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeValidation      = "VALIDATION_FAILED"
	TextCodeTimeout         = "SAVE_TIMEOUT"
	TextCodeSectionNotFound = "SECTION_NOT_FOUND"
	TextCodeNotFound        = "PORTFOLIO_NOT_FOUND"
	TextCodeSectionRequired = "SECTION_REQUIRED"
	TextCodeIDCollision     = "SECTION_ID_COLLISION"
)

var (
	// ErrSectionNotFound is returned when an operation references a custom
	// section id that no longer exists.
	ErrSectionNotFound = goerrors.New("go-portfolio: custom section not found", goerrors.CategoryNotFound).
				WithCode(goerrors.CodeNotFound).
				WithTextCode(TextCodeSectionNotFound)
	// ErrPortfolioNotFound is returned when no portfolio matches the lookup.
	ErrPortfolioNotFound = goerrors.New("go-portfolio: portfolio not found", goerrors.CategoryNotFound).
				WithCode(goerrors.CodeNotFound).
				WithTextCode(TextCodeNotFound)
	// ErrSectionIDCollision signals that a generated custom section id already
	// exists. It is a precondition violation, never an overwrite.
	ErrSectionIDCollision = goerrors.New("go-portfolio: generated section id collides with an existing section", goerrors.CategoryInternal).
				WithCode(goerrors.CodeInternal).
				WithTextCode(TextCodeIDCollision)
)

// NewValidationError builds a field-tagged validation error.
func NewValidationError(field, message string) error {
	return goerrors.New(fmt.Sprintf("go-portfolio: %s: %s", field, message), goerrors.CategoryValidation).
		WithCode(goerrors.CodeBadRequest).
		WithTextCode(TextCodeValidation).
		WithMetadata(map[string]any{"field": field, "message": message})
}

// NewTimeoutError reports that op exceeded the client-side bound. The write
// may still have succeeded server side.
func NewTimeoutError(op string, after time.Duration) error {
	return goerrors.New(fmt.Sprintf("go-portfolio: %s timed out after %s", op, after), goerrors.CategoryInternal).
		WithCode(goerrors.CodeInternal).
		WithTextCode(TextCodeTimeout).
		WithMetadata(map[string]any{"operation": op, "timeout": after.String()})
}

// NewPolicyError rejects an attempt to hide or remove a required section.
func NewPolicyError(id SectionID) error {
	return goerrors.New(fmt.Sprintf("go-portfolio: section %q is required and cannot be hidden", id), goerrors.CategoryAuthz).
		WithCode(goerrors.CodeForbidden).
		WithTextCode(TextCodeSectionRequired).
		WithMetadata(map[string]any{"section_id": string(id)})
}

// IsValidation reports whether err is a field validation error.
func IsValidation(err error) bool { return hasTextCode(err, TextCodeValidation) }

// IsTimeout reports whether err is a client-side timeout.
func IsTimeout(err error) bool { return hasTextCode(err, TextCodeTimeout) }

// IsPolicy reports whether err is a required-section policy rejection.
func IsPolicy(err error) bool { return hasTextCode(err, TextCodeSectionRequired) }

// IsNotFound reports whether err signals a missing section or portfolio.
func IsNotFound(err error) bool {
	return hasTextCode(err, TextCodeSectionNotFound) || hasTextCode(err, TextCodeNotFound)
}

// ValidationField returns the field tagged on a validation error.
func ValidationField(err error) string {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) || richErr.TextCode != TextCodeValidation {
		return ""
	}
	field, _ := richErr.Metadata["field"].(string)
	return field
}

func hasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return false
	}
	return richErr.TextCode == code
}
