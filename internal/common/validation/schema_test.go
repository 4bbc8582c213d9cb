package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDispositionRequest(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "valid like",
			payload: `{"viewerId":"v1","targetId":"t1","disposition":"like"}`,
			wantErr: false,
		},
		{
			name:    "valid dislike",
			payload: `{"viewerId":"v1","targetId":"t1","disposition":"dislike"}`,
			wantErr: false,
		},
		{
			name:    "unknown disposition value",
			payload: `{"viewerId":"v1","targetId":"t1","disposition":"superlike"}`,
			wantErr: true,
		},
		{
			name:    "missing targetId",
			payload: `{"viewerId":"v1","disposition":"like"}`,
			wantErr: true,
		},
		{
			name:    "empty viewerId",
			payload: `{"viewerId":"","targetId":"t1","disposition":"like"}`,
			wantErr: true,
		},
		{
			name:    "unexpected extra field",
			payload: `{"viewerId":"v1","targetId":"t1","disposition":"like","weight":3}`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			payload: `like v1 t1`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDispositionRequest([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProfileDocument(t *testing.T) {
	valid := map[string]interface{}{
		"id":   "p1",
		"name": "Nora",
		"type": "startup",
		"tags": []interface{}{"AI", "Health"},
	}
	require.NoError(t, ValidateProfileDocument(valid))

	missingType := map[string]interface{}{
		"id":   "p1",
		"tags": []interface{}{"AI"},
	}
	assert.Error(t, ValidateProfileDocument(missingType))

	badType := map[string]interface{}{
		"id":   "p1",
		"type": "unicorn",
		"tags": []interface{}{},
	}
	assert.Error(t, ValidateProfileDocument(badType))
}
