package compat

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/dailylog"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter routes gnet engine logs into a dailylog.Store
type GnetAdapter struct {
	store        *dailylog.Store
	source       string
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(s *dailylog.Store, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		store:  s,
		source: "gnet",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetSource sets the tag written before every gnet message
func WithGnetSource(source string) GnetOption {
	return func(a *GnetAdapter) {
		a.source = source
	}
}

func (a *GnetAdapter) logf(level dailylog.Level, format string, args []any) string {
	msg := fmt.Sprintf(format, args...)
	_ = a.store.Log(level, a.source+":", msg)
	return msg
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logf(dailylog.LevelDebug, format, args)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logf(dailylog.LevelInfo, format, args)
}

// Warnf logs at warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logf(dailylog.LevelWarning, format, args)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logf(dailylog.LevelError, format, args)
}

// Fatalf logs at critical level and triggers the fatal handler.
// Lines are written synchronously, so nothing is pending when the handler runs.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := a.logf(dailylog.LevelCritical, format, args)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
