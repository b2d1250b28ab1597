package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"parses valid integer", "100", 100},
		{"parses negative integer", "-10", -10},
		{"parses zero", "0", 0},
		{"falls back on garbage", "not-a-number", 42},
		{"falls back on float", "42.5", 42},
		{"falls back on empty string", "", 42},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tc.value)
			assert.Equal(t, tc.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	const fallback = 5 * time.Minute

	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_DURATION_VAR")
		assert.Equal(t, fallback, getEnvAsDuration("TEST_DURATION_VAR", fallback))
	})

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"parses milliseconds", "100ms", 100 * time.Millisecond},
		{"parses seconds", "30s", 30 * time.Second},
		{"parses compound duration", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"falls back on plain number", "100", fallback},
		{"falls back on garbage", "soon", fallback},
		{"falls back on empty string", "", fallback},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tc.value)
			assert.Equal(t, tc.want, getEnvAsDuration("TEST_DURATION_VAR", fallback))
		})
	}
}
