// FILE: lixenwraith/dailylog/builder.go
package dailylog

import (
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
)

// Builder provides a fluent API for building a configured, initialized Store.
// Errors are accumulated and surface from Build.
type Builder struct {
	cfg  *Config
	opts []Option
	err  error
}

// NewBuilder creates a new builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build validates the configuration and returns an initialized Store.
func (b *Builder) Build() (*Store, error) {
	if b.err != nil {
		return nil, b.err
	}

	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	store := NewStore(b.opts...)
	if err := store.Initialize(b.cfg); err != nil {
		return nil, err
	}

	return store, nil
}

// Config replaces the whole configuration.
func (b *Builder) Config(cfg *Config) *Builder {
	if cfg != nil {
		b.cfg = cfg.Clone()
	}
	return b
}

// Override applies "key=value" overrides to the configuration.
func (b *Builder) Override(overrides ...string) *Builder {
	if b.err != nil {
		return b
	}
	if err := applyOverrideStrings(b.cfg, overrides); err != nil {
		b.err = err
	}
	return b
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// EnableLogging turns file output on or off.
func (b *Builder) EnableLogging(enable bool) *Builder {
	b.cfg.EnableLogging = enable
	return b
}

// MinLevel sets the minimum level.
func (b *Builder) MinLevel(level Level) *Builder {
	b.cfg.MinLevel = level
	return b
}

// LevelString sets the minimum level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.MinLevel = levelVal
	return b
}

// MaxRetainedFiles sets how many log files survive a cleanup pass.
func (b *Builder) MaxRetainedFiles(n int64) *Builder {
	b.cfg.MaxRetainedFiles = n
	return b
}

// MaxFileSizeBytes sets the size that triggers a same-day split.
func (b *Builder) MaxFileSizeBytes(size int64) *Builder {
	b.cfg.MaxFileSizeBytes = size
	return b
}

// MaxFileSizeMB sets the split size in MiB. Convenience.
func (b *Builder) MaxFileSizeMB(size int64) *Builder {
	b.cfg.MaxFileSizeBytes = size * sizeMultiplier
	return b
}

// Prefix sets the file name prefix.
func (b *Builder) Prefix(prefix string) *Builder {
	b.cfg.Prefix = prefix
	return b
}

// Extension sets the file extension, without the dot.
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// Sanitize toggles hex encoding of non-printable message runes.
func (b *Builder) Sanitize(enable bool) *Builder {
	b.cfg.Sanitize = enable
	return b
}

// Fs sets the filesystem.
func (b *Builder) Fs(fs afero.Fs) *Builder {
	b.opts = append(b.opts, WithFs(fs))
	return b
}

// Clock sets the clock.
func (b *Builder) Clock(clock clockwork.Clock) *Builder {
	b.opts = append(b.opts, WithClock(clock))
	return b
}

// Sink sets the diagnostic writer.
func (b *Builder) Sink(w io.Writer) *Builder {
	b.opts = append(b.opts, WithSink(w))
	return b
}

// Example usage:
// store, err := dailylog.NewBuilder().
//
//	Directory("/var/log/app").
//	LevelString("warning").
//	MaxRetainedFiles(14).
//	Build()
//
// if err == nil {
//
//	store.Warning("disk usage high")
//
// }
