// FILE: lixenwraith/dailylog/logger.go
package dailylog

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"

	"github.com/lixenwraith/dailylog/sanitizer"
)

// Store is the core struct that owns configuration, the active file state and the write lock.
// All methods are safe for concurrent use.
type Store struct {
	cfg       *Config // immutable once the state reaches stateInitialized
	pattern   *regexp.Regexp
	sanitizer *sanitizer.Sanitizer

	fs     afero.Fs
	clock  clockwork.Clock
	sink   io.Writer
	sinkMu sync.Mutex

	initMu sync.Mutex
	mu     sync.Mutex // guards active and every append
	active activeFile

	state storeState
}

// Option configures the collaborators of a Store
type Option func(*Store)

// WithFs sets the filesystem the store writes to
func WithFs(fs afero.Fs) Option {
	return func(s *Store) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithClock sets the clock used for file names and line timestamps
func WithClock(clock clockwork.Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithSink sets the diagnostic writer for failures that cannot reach the caller
func WithSink(w io.Writer) Option {
	return func(s *Store) {
		if w == nil {
			w = io.Discard
		}
		s.sink = w
	}
}

// NewStore creates an uninitialized Store on the OS filesystem and real clock
func NewStore(opts ...Option) *Store {
	s := &Store{
		fs:    afero.NewOsFs(),
		clock: clockwork.NewRealClock(),
		sink:  os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.set(stateUninitialized)
	return s
}

// Initialize stores the configuration, prepares the log directory, selects today's file
// and runs one cleanup pass. A store with logging disabled leaves existing files alone. It runs its side effects exactly once per Store: concurrent
// callers wait for the first one and then return nil, as do later calls.
//
// A nil cfg means DefaultConfig. Zero-valued fields fall back to defaults. If the log
// directory cannot be created, logging is disabled for the store lifetime and nil is returned.
func (s *Store) Initialize(cfg *Config) error {
	if s.state.load() == stateInitialized {
		return nil
	}

	s.initMu.Lock()
	defer s.initMu.Unlock()

	if s.state.load() == stateInitialized {
		return nil
	}

	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := cfg.withStructuralDefaults()
	if err := c.Validate(); err != nil {
		return err
	}

	s.state.set(stateInitializing)

	s.cfg = c
	s.pattern = logFilePattern(c.Prefix, c.Extension)
	s.sanitizer = sanitizer.New()
	if c.Sanitize {
		s.sanitizer.Policy(sanitizer.PolicyLine)
	}

	enabled := c.EnableLogging
	if enabled {
		if err := s.fs.MkdirAll(c.Directory, dirPerm); err != nil {
			s.internalLog("failed to create log directory '%s', logging disabled: %v\n", c.Directory, err)
			enabled = false
		}
	}
	s.state.disabled.Store(!enabled)

	s.mu.Lock()
	now := s.clock.Now()
	s.active.day = now.Format(dayLayout)
	s.setActiveLocked(s.dayPath(now))
	if enabled {
		_, _ = s.cleanupLocked()
	}
	s.mu.Unlock()

	s.state.set(stateInitialized)
	return nil
}

// InitializeAsync runs Initialize on a goroutine and delivers its result on the returned channel
func (s *Store) InitializeAsync(cfg *Config) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- s.Initialize(cfg)
		close(done)
	}()
	return done
}

// Log writes one line at the given level. It returns a *UsageError wrapping
// ErrNotInitialized when called before Initialize completed; I/O failures are
// reported to the diagnostic sink and never returned.
func (s *Store) Log(level Level, args ...any) error {
	if s.state.load() != stateInitialized {
		return notInitialized("log")
	}

	if s.state.disabled.Load() || level < s.cfg.MinLevel {
		s.state.Filtered.Add(1)
		return nil
	}

	msg := s.sanitizer.Sanitize(composeMessage(args))
	s.write(level, msg)
	return nil
}

// Debug logs a message at debug level
func (s *Store) Debug(args ...any) error {
	return s.Log(LevelDebug, args...)
}

// Info logs a message at info level
func (s *Store) Info(args ...any) error {
	return s.Log(LevelInfo, args...)
}

// Warning logs a message at warning level
func (s *Store) Warning(args ...any) error {
	return s.Log(LevelWarning, args...)
}

// Error logs a message at error level
func (s *Store) Error(args ...any) error {
	return s.Log(LevelError, args...)
}

// Critical logs a message at critical level
func (s *Store) Critical(args ...any) error {
	return s.Log(LevelCritical, args...)
}

// CleanupOldLogs deletes all but the newest MaxRetainedFiles log files.
// Every deletion is attempted; the failures are reported to the sink and returned combined.
func (s *Store) CleanupOldLogs() error {
	if s.state.load() != stateInitialized {
		return notInitialized("cleanup")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.cleanupLocked()
	return err
}

// CurrentFile returns the path the next line would go to, before any rotation it triggers
func (s *Store) CurrentFile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active.path
}

// Enabled reports whether the store is initialized and writing to disk
func (s *Store) Enabled() bool {
	return s.state.load() == stateInitialized && !s.state.disabled.Load()
}

// Config returns a copy of the effective configuration, or nil before initialization
func (s *Store) Config() *Config {
	if s.state.load() != stateInitialized {
		return nil
	}
	return s.cfg.Clone()
}

// write resolves the target path and appends the line in one critical section,
// so the size check and the append cannot be split by another writer.
func (s *Store) write(level Level, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	line := formatLine(now, level, msg)
	path := s.resolvePathLocked(now, int64(len(line)))

	if err := s.appendLocked(path, line); err != nil {
		s.state.WriteFailures.Add(1)
		s.internalLog("failed to write to log file '%s': %v\n", path, err)
		return
	}
	s.state.LinesWritten.Add(1)
	s.state.BytesWritten.Add(uint64(len(line)))
}

// internalLog writes store diagnostics to the sink, never to the log file
func (s *Store) internalLog(format string, args ...any) {
	if !strings.HasPrefix(format, "dailylog: ") {
		format = "dailylog: " + format
	}

	s.sinkMu.Lock()
	defer s.sinkMu.Unlock()
	fmt.Fprintf(s.sink, format, args...)
}
