package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateToken_Shape verifies that a generated token is hex-encoded
// output of the expected entropy.
func TestGenerateToken_Shape(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)

	raw, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, tokenBytes)
}

// TestGenerateToken_Unique verifies that consecutive tokens differ.
func TestGenerateToken_Unique(t *testing.T) {
	first, err := GenerateToken()
	require.NoError(t, err)

	second, err := GenerateToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// TestParseBearerToken covers the accepted and rejected Authorization
// header shapes.
func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc123", want: "abc123"},
		{name: "extra whitespace trimmed", header: "  Bearer abc123  ", want: "abc123"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "empty header", header: "", wantErr: true},
		{name: "too many parts", header: "Bearer one two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
