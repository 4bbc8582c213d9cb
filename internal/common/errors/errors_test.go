package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantCode      ErrorCode
		wantRetryable bool
	}{
		{
			name:          "ledger unavailable is retryable",
			err:           NewLedgerUnavailableError(fmt.Errorf("dial tcp: refused")),
			wantCode:      ErrCodeLedgerUnavailable,
			wantRetryable: true,
		},
		{
			name:          "ledger write failed is retryable",
			err:           NewLedgerWriteFailedError(fmt.Errorf("timeout")),
			wantCode:      ErrCodeLedgerWriteFailed,
			wantRetryable: true,
		},
		{
			name:          "invalid disposition is not retryable",
			err:           NewInvalidDispositionError("maybe"),
			wantCode:      ErrCodeInvalidDisposition,
			wantRetryable: false,
		},
		{
			name:          "profile not found is not retryable",
			err:           NewProfileNotFoundError("p1"),
			wantCode:      ErrCodeProfileNotFound,
			wantRetryable: false,
		},
		{
			name:          "profile query failed is retryable",
			err:           NewProfileQueryFailedError(fmt.Errorf("boom")),
			wantCode:      ErrCodeProfileQueryFailed,
			wantRetryable: true,
		},
		{
			name:          "malformed candidate is not retryable",
			err:           NewMalformedCandidateError("c1", "missing type"),
			wantCode:      ErrCodeMalformedCandidate,
			wantRetryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, CodeOf(tt.err))
			assert.Equal(t, tt.wantRetryable, IsRetryable(tt.err))
		})
	}
}

func TestClassification_PlainError(t *testing.T) {
	err := fmt.Errorf("plain")
	assert.Equal(t, ErrorCode(""), CodeOf(err))
	assert.False(t, IsRetryable(err))
	assert.False(t, IsNotFound(err))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewProfileNotFoundError("p1")))
	assert.False(t, IsNotFound(NewProfileQueryFailedError(fmt.Errorf("x"))))
}

func TestStandardError_Error(t *testing.T) {
	err := NewProfileNotFoundError("p1")
	assert.Equal(t, "StandardError[PROFILE_NOT_FOUND]: Profile not found", err.Error())
}
