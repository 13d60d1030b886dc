package reviews

import "errors"

var (
	ErrResumeTooShort = errors.New("resume text is too short")
)

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeReview     = "review_failed"
	ErrorCodeInternal   = "internal_error"
)
