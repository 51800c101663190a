package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePortMapping(t *testing.T) {
	tests := []struct {
		raw       string
		published string
	}{
		{"8080:80", "8080"},
		{"3306:3306", "3306"},
		{"127.0.0.1:5432:5432", "5432"},
		{"53:53/udp", "53"},
		{"80", ""},
		{"3306", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			pm, err := ParsePortMapping(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, pm.Raw)
			assert.Equal(t, tt.published, pm.PublishedPort())
		})
	}
}

func TestParsePortMapping_Invalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "8080:http", "-v", "99999999:80"} {
		_, err := ParsePortMapping(raw)
		assert.Error(t, err, "raw %q", raw)
	}
}

func TestValidateImage(t *testing.T) {
	for _, ok := range []string{"alpine", "mysql:8", "ghcr.io/org/app:1.2", "library/nginx"} {
		assert.NoError(t, ValidateImage(ok), ok)
	}
	for _, bad := range []string{"", "-rm", "UPPER", "a b"} {
		assert.Error(t, ValidateImage(bad), bad)
	}
}

func TestValidateImageOrID(t *testing.T) {
	assert.NoError(t, ValidateImageOrID("alpine:3"))
	assert.NoError(t, ValidateImageOrID("4b1f8c1e2d3a"))
	assert.NoError(t, ValidateImageOrID("sha256:0123456789012345678901234567890123456789012345678901234567890123"))
	assert.Error(t, ValidateImageOrID("-f"))
	assert.Error(t, ValidateImageOrID(""))
}
