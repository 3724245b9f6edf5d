package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "0.0.0-dev"},
		{"1.2.3", "1.2.3"},
		{"v1.2.3", "1.2.3"},
		{"1.2", "1.2.0"},
		{"v0.4.0-rc.1", "0.4.0-rc.1"},
		{"not-a-version", "0.0.0-dev"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.raw))
		})
	}
}

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
}
