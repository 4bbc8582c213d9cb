// internal/common/errors/errors.go

// Package errors provides standardized error handling for the match engine.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Engine / candidate errors
	ErrCodeMalformedCandidate ErrorCode = "MALFORMED_CANDIDATE"
	ErrCodeInvalidScore       ErrorCode = "INVALID_SCORE"

	// Preference ledger errors
	ErrCodeLedgerUnavailable  ErrorCode = "LEDGER_UNAVAILABLE"
	ErrCodeLedgerWriteFailed  ErrorCode = "LEDGER_WRITE_FAILED"
	ErrCodeInvalidDisposition ErrorCode = "INVALID_DISPOSITION"
	ErrCodeSelfDisposition    ErrorCode = "SELF_DISPOSITION"

	// Profile store errors
	ErrCodeProfileNotFound          ErrorCode = "PROFILE_NOT_FOUND"
	ErrCodeProfileQueryFailed       ErrorCode = "PROFILE_QUERY_FAILED"
	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewMalformedCandidateError flags a candidate profile that cannot be scored.
// Non-retryable: the row itself is bad, not the read.
func NewMalformedCandidateError(candidateID, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedCandidate,
		Message:   "Candidate profile is missing required fields",
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"candidateId": candidateID},
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidScoreError flags a computed score outside [0, 100].
func NewInvalidScoreError(score int) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidScore,
		Message:   "Computed score outside valid range",
		Details:   fmt.Sprintf("score: %d", score),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLedgerUnavailableError wraps a failed preference ledger read. Retryable:
// the caller must not treat an unreadable ledger as "no dispositions".
func NewLedgerUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLedgerUnavailable,
		Message:   "Preference ledger read failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLedgerWriteFailedError wraps a failed disposition upsert.
func NewLedgerWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeLedgerWriteFailed,
		Message:   "Preference ledger write failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidDispositionError rejects a disposition value outside like/dislike.
func NewInvalidDispositionError(value string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidDisposition,
		Message:   "Disposition must be like or dislike",
		Details:   fmt.Sprintf("got: %q", value),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSelfDispositionError rejects a viewer acting on their own profile.
func NewSelfDispositionError(viewerID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSelfDisposition,
		Message:   "A viewer cannot record a disposition about themselves",
		Retryable: false,
		Metadata:  map[string]interface{}{"viewerId": viewerID},
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileNotFoundError creates a non-retryable missing profile error.
func NewProfileNotFoundError(profileID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileNotFound,
		Message:   "Profile not found",
		Details:   fmt.Sprintf("profileId: %s", profileID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewProfileQueryFailedError creates a retryable profile store error.
func NewProfileQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeProfileQueryFailed,
		Message:   "Profile store query failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Classification Helpers
// ==========================

// CodeOf extracts the error code, or empty if err is not a StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// IsRetryable reports whether the caller may retry the failed operation.
// Unknown errors are treated as non-retryable.
func IsRetryable(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Retryable
	}
	return false
}

// IsNotFound reports whether err is a missing-profile error.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeProfileNotFound
}
