// FILE: utility.go
package dailylog

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "dailylog: ") {
		format = "dailylog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(errs ...error) error {
	return multierr.Combine(errs...)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}
