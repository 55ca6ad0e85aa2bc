package tagstr

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Input shape errors
	ErrMsgNilChunks      = "chunk sequence is nil"
	ErrMsgLengthMismatch = "cooked and raw chunk counts differ"
	ErrMsgEmptyChunks    = "chunk sequence must contain at least one chunk"
	ErrMsgValueCount     = "dynamic value count must equal chunk count minus one"
	ErrMsgNonTextElement = "chunk sequence contains a non-text element"

	// Build errors
	ErrMsgNilComputeStatic = "computeStatic function is required"
	ErrMsgNilComputeResult = "computeResult function is required"

	// Config errors
	ErrMsgConfigParse      = "cache config parsing failed"
	ErrMsgConfigMaxEntries = "max_entries must not be negative"
)

// Error code constants for categorization
const (
	ErrCodeInput  = "TAGSTR_INPUT"
	ErrCodeBuild  = "TAGSTR_BUILD"
	ErrCodeConfig = "TAGSTR_CONFIG"
)

// Metadata key constants attached to errors
const (
	MetaKeyCookedLen  = "cooked_len"
	MetaKeyRawLen     = "raw_len"
	MetaKeyWantValues = "want_values"
	MetaKeyGotValues  = "got_values"
	MetaKeyIndex      = "index"
	MetaKeySequence   = "sequence"
)

// ErrInvalidInput is the sentinel wrapped by every malformed tagged-call
// shape error. Test with IsInvalidInput or errors.Is.
var ErrInvalidInput = errors.New("invalid tagged call shape")

// IsInvalidInput reports whether err was raised by tagged-call shape
// validation (as opposed to a failure from user-supplied code).
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// NewInvalidInputError creates a shape validation error.
func NewInvalidInputError(msg string) *cuserr.CustomError {
	return cuserr.WrapStdError(ErrInvalidInput, ErrCodeInput, msg)
}

// NewLengthMismatchError creates an error for a chunk sequence whose
// cooked and raw counterparts differ in length.
func NewLengthMismatchError(cookedLen, rawLen int) error {
	return NewInvalidInputError(ErrMsgLengthMismatch).
		WithMetadata(MetaKeyCookedLen, strconv.Itoa(cookedLen)).
		WithMetadata(MetaKeyRawLen, strconv.Itoa(rawLen))
}

// NewValueCountError creates an error for a call whose dynamic value
// count does not match the chunk count.
func NewValueCountError(want, got int) error {
	return NewInvalidInputError(ErrMsgValueCount).
		WithMetadata(MetaKeyWantValues, strconv.Itoa(want)).
		WithMetadata(MetaKeyGotValues, strconv.Itoa(got))
}

// NewNonTextElementError creates an error for a loose chunk sequence
// carrying a non-string element. sequence is "items" or "raw".
func NewNonTextElementError(sequence string, index int) error {
	return NewInvalidInputError(ErrMsgNonTextElement).
		WithMetadata(MetaKeySequence, sequence).
		WithMetadata(MetaKeyIndex, strconv.Itoa(index))
}

// NewBuildError creates an error for an invalid Build argument.
func NewBuildError(msg string) error {
	return cuserr.NewValidationError(ErrCodeBuild, msg)
}

// NewConfigError creates a cache config error, wrapping cause when set.
func NewConfigError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	}
	return cuserr.NewValidationError(ErrCodeConfig, msg)
}
