// FILE: utility_test.go
package dailylog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{"key=value", "key", "value", false},
		{" key = value ", "key", "value", false},
		{"key=value=with=equals", "key", "value=with=equals", false},
		{"noequals", "", "", true},
		{"=value", "", "", true},
		{"key=", "key", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := parseKeyValue(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantKey, key)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestFmtErrorf(t *testing.T) {
	err := fmtErrorf("test error: %s", "details")
	assert.Error(t, err)
	assert.Equal(t, "dailylog: test error: details", err.Error())

	// Already prefixed
	err = fmtErrorf("dailylog: already prefixed")
	assert.Equal(t, "dailylog: already prefixed", err.Error())

	// Wrapping survives the prefix
	base := errors.New("base")
	assert.ErrorIs(t, fmtErrorf("wrapped: %w", base), base)
}

func TestCombineErrors(t *testing.T) {
	assert.NoError(t, combineErrors())
	assert.NoError(t, combineErrors(nil, nil))

	first := errors.New("first")
	assert.Same(t, first, combineErrors(nil, first))

	second := errors.New("second")
	err := combineErrors(first, nil, second)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestUsageError(t *testing.T) {
	err := notInitialized("log")
	assert.Equal(t, "dailylog: log: store not initialized, call Initialize first", err.Error())
	assert.True(t, IsUsageError(err))
	assert.ErrorIs(t, err, ErrNotInitialized)

	assert.False(t, IsUsageError(errors.New("disk full")))
	assert.False(t, IsUsageError(nil))
}
