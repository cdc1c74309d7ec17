package form

import "errors"

var (
	// ErrNotReviewing means Submit was called outside the Review step.
	ErrNotReviewing = errors.New("submission is only possible from the review step")
	// ErrInvalidFields means the submit-time re-check found failing fields;
	// the per-field reasons are surfaced on the controller.
	ErrInvalidFields = errors.New("one or more fields are invalid")
)
