// Sentinel errors shared across the model, session and service layers.
// Callers match them with errors.Is.
package common

import "errors"

var (
	// Auth errors. Expired, revoked and never-issued tokens are deliberately
	// indistinguishable to callers.
	ErrUnauthorized = errors.New("unauthorized")

	// Record absent, owned by someone else, or backing bytes missing on disk.
	ErrNotFound = errors.New("not found")

	// Validation errors on upload.
	ErrMissingName = errors.New("missing name")
	ErrMissingType = errors.New("missing type")
	ErrMissingData = errors.New("missing data")

	// Parent hierarchy conflicts.
	ErrParentNotFound  = errors.New("parent not found")
	ErrParentNotFolder = errors.New("parent is not a folder")

	// Content retrieval errors.
	ErrFolderNoContent = errors.New("a folder doesn't have content")
	ErrInvalidSize     = errors.New("invalid size")
	ErrNotImage        = errors.New("not an image")

	// Registration errors.
	ErrMissingEmail    = errors.New("missing email")
	ErrMissingPassword = errors.New("missing password")
	ErrEmailTaken      = errors.New("already exist")
)
