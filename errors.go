package dailylog

import "errors"

// UsageError marks a caller bug, as opposed to a runtime I/O condition.
// I/O failures never surface from logging calls; they go to the diagnostic sink.
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string {
	return "dailylog: " + e.Op + ": " + e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ErrNotInitialized is returned by logging calls made before Initialize completed
var ErrNotInitialized = errors.New("store not initialized, call Initialize first")

func notInitialized(op string) error {
	return &UsageError{Op: op, Err: ErrNotInitialized}
}

// IsUsageError reports whether err is a caller bug rather than a runtime failure
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
