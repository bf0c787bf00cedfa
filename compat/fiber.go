package compat

import (
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/dailylog"
)

// FiberAdapter routes Fiber logs into a dailylog.Store.
// It matches the method set of Fiber v2's log.CommonLogger and io.Writer by shape,
// so this package needs no Fiber import.
type FiberAdapter struct {
	store        *dailylog.Store
	source       string
	fatalHandler func(msg string) // Customizable fatal behavior
	panicHandler func(msg string) // Customizable panic behavior
}

// NewFiberAdapter creates a new Fiber-compatible logger adapter
func NewFiberAdapter(s *dailylog.Store, opts ...FiberOption) *FiberAdapter {
	adapter := &FiberAdapter{
		store:  s,
		source: "fiber",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior
		},
		panicHandler: func(msg string) {
			panic(msg) // Default behavior
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FiberOption allows customizing adapter behavior
type FiberOption func(*FiberAdapter)

// WithFiberFatalHandler sets a custom fatal handler
func WithFiberFatalHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.fatalHandler = handler
	}
}

// WithFiberPanicHandler sets a custom panic handler
func WithFiberPanicHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.panicHandler = handler
	}
}

// WithFiberSource sets the tag written before every Fiber message
func WithFiberSource(source string) FiberOption {
	return func(a *FiberAdapter) {
		a.source = source
	}
}

func (a *FiberAdapter) log(level dailylog.Level, msg string) {
	_ = a.store.Log(level, a.source+":", msg)
}

// logw appends key=value pairs to msg; a dangling key gets a "!MISSING" value
func (a *FiberAdapter) logw(level dailylog.Level, msg string, keysAndValues []any) string {
	if len(keysAndValues) > 0 {
		var sb strings.Builder
		sb.WriteString(msg)
		for i := 0; i < len(keysAndValues); i += 2 {
			sb.WriteByte(' ')
			if i+1 < len(keysAndValues) {
				fmt.Fprintf(&sb, "%v=%v", keysAndValues[i], keysAndValues[i+1])
			} else {
				fmt.Fprintf(&sb, "%v=!MISSING", keysAndValues[i])
			}
		}
		msg = sb.String()
	}
	a.log(level, msg)
	return msg
}

// Fatal and panic messages are on disk before the handler runs, since writes are synchronous
func (a *FiberAdapter) logFatal(msg string) {
	a.log(dailylog.LevelCritical, msg)
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

func (a *FiberAdapter) logPanic(msg string) {
	a.log(dailylog.LevelCritical, msg)
	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

// --- Logger methods ---

// Trace logs at debug level, the store has no trace level
func (a *FiberAdapter) Trace(v ...any) { a.log(dailylog.LevelDebug, fmt.Sprint(v...)) }

// Debug logs at debug level
func (a *FiberAdapter) Debug(v ...any) { a.log(dailylog.LevelDebug, fmt.Sprint(v...)) }

// Info logs at info level
func (a *FiberAdapter) Info(v ...any) { a.log(dailylog.LevelInfo, fmt.Sprint(v...)) }

// Warn logs at warning level
func (a *FiberAdapter) Warn(v ...any) { a.log(dailylog.LevelWarning, fmt.Sprint(v...)) }

// Error logs at error level
func (a *FiberAdapter) Error(v ...any) { a.log(dailylog.LevelError, fmt.Sprint(v...)) }

// Fatal logs at critical level and triggers the fatal handler
func (a *FiberAdapter) Fatal(v ...any) { a.logFatal(fmt.Sprint(v...)) }

// Panic logs at critical level and triggers the panic handler
func (a *FiberAdapter) Panic(v ...any) { a.logPanic(fmt.Sprint(v...)) }

// Write lets Fiber middleware use the adapter as an io.Writer; each write becomes one info line
func (a *FiberAdapter) Write(p []byte) (n int, err error) {
	a.log(dailylog.LevelInfo, strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// --- FormatLogger methods ---

// Tracef logs at debug level with printf-style formatting
func (a *FiberAdapter) Tracef(format string, v ...any) {
	a.log(dailylog.LevelDebug, fmt.Sprintf(format, v...))
}

// Debugf logs at debug level with printf-style formatting
func (a *FiberAdapter) Debugf(format string, v ...any) {
	a.log(dailylog.LevelDebug, fmt.Sprintf(format, v...))
}

// Infof logs at info level with printf-style formatting
func (a *FiberAdapter) Infof(format string, v ...any) {
	a.log(dailylog.LevelInfo, fmt.Sprintf(format, v...))
}

// Warnf logs at warning level with printf-style formatting
func (a *FiberAdapter) Warnf(format string, v ...any) {
	a.log(dailylog.LevelWarning, fmt.Sprintf(format, v...))
}

// Errorf logs at error level with printf-style formatting
func (a *FiberAdapter) Errorf(format string, v ...any) {
	a.log(dailylog.LevelError, fmt.Sprintf(format, v...))
}

// Fatalf logs at critical level and triggers the fatal handler
func (a *FiberAdapter) Fatalf(format string, v ...any) { a.logFatal(fmt.Sprintf(format, v...)) }

// Panicf logs at critical level and triggers the panic handler
func (a *FiberAdapter) Panicf(format string, v ...any) { a.logPanic(fmt.Sprintf(format, v...)) }

// --- WithLogger methods ---

// Tracew logs at debug level with key-value pairs
func (a *FiberAdapter) Tracew(msg string, keysAndValues ...any) {
	a.logw(dailylog.LevelDebug, msg, keysAndValues)
}

// Debugw logs at debug level with key-value pairs
func (a *FiberAdapter) Debugw(msg string, keysAndValues ...any) {
	a.logw(dailylog.LevelDebug, msg, keysAndValues)
}

// Infow logs at info level with key-value pairs
func (a *FiberAdapter) Infow(msg string, keysAndValues ...any) {
	a.logw(dailylog.LevelInfo, msg, keysAndValues)
}

// Warnw logs at warning level with key-value pairs
func (a *FiberAdapter) Warnw(msg string, keysAndValues ...any) {
	a.logw(dailylog.LevelWarning, msg, keysAndValues)
}

// Errorw logs at error level with key-value pairs
func (a *FiberAdapter) Errorw(msg string, keysAndValues ...any) {
	a.logw(dailylog.LevelError, msg, keysAndValues)
}

// Fatalw logs at critical level with key-value pairs and triggers the fatal handler
func (a *FiberAdapter) Fatalw(msg string, keysAndValues ...any) {
	full := a.logw(dailylog.LevelCritical, msg, keysAndValues)
	if a.fatalHandler != nil {
		a.fatalHandler(full)
	}
}

// Panicw logs at critical level with key-value pairs and triggers the panic handler
func (a *FiberAdapter) Panicw(msg string, keysAndValues ...any) {
	full := a.logw(dailylog.LevelCritical, msg, keysAndValues)
	if a.panicHandler != nil {
		a.panicHandler(full)
	}
}
