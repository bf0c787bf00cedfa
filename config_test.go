package dailylog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "./logs", cfg.Directory)
	assert.True(t, cfg.EnableLogging)
	assert.Equal(t, LevelInfo, cfg.MinLevel)
	assert.Equal(t, int64(30), cfg.MaxRetainedFiles)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxFileSizeBytes)
	assert.Equal(t, "log", cfg.Prefix)
	assert.Equal(t, "txt", cfg.Extension)
	assert.True(t, cfg.Sanitize)
	assert.NoError(t, cfg.Validate())

	// Copies are independent
	cfg.Directory = "/changed"
	assert.Equal(t, "./logs", DefaultConfig().Directory)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty prefix", func(c *Config) { c.Prefix = " " }, "prefix cannot be empty"},
		{"prefix with separator", func(c *Config) { c.Prefix = `a\b` }, "path separators"},
		{"extension with dot", func(c *Config) { c.Extension = ".txt" }, "should not start with dot"},
		{"empty directory", func(c *Config) { c.Directory = "" }, "directory cannot be empty"},
		{"level out of range", func(c *Config) { c.MinLevel = Level(9) }, "min_level out of range"},
		{"zero retention", func(c *Config) { c.MaxRetainedFiles = 0 }, "max_retained_files must be positive"},
		{"negative size", func(c *Config) { c.MaxFileSizeBytes = -1 }, "max_file_size_bytes must be positive"},
		{"empty extension", func(c *Config) { c.Extension = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestWithStructuralDefaults(t *testing.T) {
	cfg := &Config{Extension: ".log", MinLevel: Level(-3)}
	out := cfg.withStructuralDefaults()

	assert.Equal(t, "./logs", out.Directory)
	assert.Equal(t, "log", out.Prefix)
	assert.Equal(t, "log", out.Extension)
	assert.Equal(t, LevelInfo, out.MinLevel)
	assert.Equal(t, int64(30), out.MaxRetainedFiles)
	assert.Equal(t, int64(5*1024*1024), out.MaxFileSizeBytes)
	assert.NoError(t, out.Validate())

	// Input untouched
	assert.Equal(t, ".log", cfg.Extension)
}

func TestNewConfigFromOverrides(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		cfg, err := NewConfigFromOverrides(
			"directory=/var/log/app",
			"enable_logging=false",
			"min_level=warn",
			"max_retained_files=7",
			"max_file_size_bytes = 2048",
			"prefix=app",
			"extension=log",
			"sanitize=false",
		)
		require.NoError(t, err)

		assert.Equal(t, "/var/log/app", cfg.Directory)
		assert.False(t, cfg.EnableLogging)
		assert.Equal(t, LevelWarning, cfg.MinLevel)
		assert.Equal(t, int64(7), cfg.MaxRetainedFiles)
		assert.Equal(t, int64(2048), cfg.MaxFileSizeBytes)
		assert.Equal(t, "app", cfg.Prefix)
		assert.Equal(t, "log", cfg.Extension)
		assert.False(t, cfg.Sanitize)
	})

	t.Run("numeric level", func(t *testing.T) {
		cfg, err := NewConfigFromOverrides("min_level=3")
		require.NoError(t, err)
		assert.Equal(t, LevelError, cfg.MinLevel)
	})

	t.Run("collects every failure", func(t *testing.T) {
		_, err := NewConfigFromOverrides("novalue", "unknown_key=1", "max_retained_files=many")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected key=value")
		assert.Contains(t, err.Error(), "unknown config key: unknown_key")
		assert.Contains(t, err.Error(), "expected integer")
	})

	t.Run("validation runs after overrides", func(t *testing.T) {
		_, err := NewConfigFromOverrides("max_retained_files=0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_retained_files must be positive")
	})
}

func TestNewConfigFromDefaults(t *testing.T) {
	cfg, err := NewConfigFromDefaults(map[string]any{
		"directory":          "/srv/logs",
		"max_retained_files": 12,
		"min_level":          LevelCritical,
		"sanitize":           false,
	})
	require.NoError(t, err)
	assert.Equal(t, "/srv/logs", cfg.Directory)
	assert.Equal(t, int64(12), cfg.MaxRetainedFiles)
	assert.Equal(t, LevelCritical, cfg.MinLevel)
	assert.False(t, cfg.Sanitize)

	_, err = NewConfigFromDefaults(map[string]any{"prefix": 5})
	assert.Error(t, err)
}

func TestNewConfigFromBytes(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name:   "yaml nested",
			format: "yaml",
			data: `
dailylog:
  directory: /yaml/logs
  min_level: error
  max_retained_files: 4
  sanitize: false
`,
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/yaml/logs", cfg.Directory)
				assert.Equal(t, LevelError, cfg.MinLevel)
				assert.Equal(t, int64(4), cfg.MaxRetainedFiles)
				assert.False(t, cfg.Sanitize)
				assert.Equal(t, "log", cfg.Prefix)
			},
		},
		{
			name:   "yml top level",
			format: "yml",
			data:   "prefix: svc\nextension: log\n",
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "svc", cfg.Prefix)
				assert.Equal(t, "log", cfg.Extension)
				assert.Equal(t, "./logs", cfg.Directory)
			},
		},
		{
			name:   "json",
			format: "json",
			data:   `{"dailylog": {"max_file_size_bytes": 4096, "enable_logging": false, "min_level": 0}}`,
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, int64(4096), cfg.MaxFileSizeBytes)
				assert.False(t, cfg.EnableLogging)
				assert.Equal(t, LevelDebug, cfg.MinLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfigFromBytes([]byte(tt.data), tt.format)
			require.NoError(t, err)
			tt.verify(t, cfg)
		})
	}

	t.Run("unsupported format", func(t *testing.T) {
		_, err := NewConfigFromBytes([]byte("a = 1"), "ini")
		assert.ErrorContains(t, err, "unsupported config format")
	})

	t.Run("fractional size", func(t *testing.T) {
		_, err := NewConfigFromBytes([]byte(`{"max_file_size_bytes": 1.5}`), "json")
		assert.ErrorContains(t, err, "expected integer")
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := NewConfigFromBytes([]byte("{"), "json")
		assert.Error(t, err)
	})
}

func TestNewConfigFromFile(t *testing.T) {
	t.Run("toml table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.toml")
		content := `
[dailylog]
directory = "/toml/logs"
max_retained_files = 9
max_file_size_bytes = 1024
prefix = "svc"
sanitize = false
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := NewConfigFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "/toml/logs", cfg.Directory)
		assert.Equal(t, int64(9), cfg.MaxRetainedFiles)
		assert.Equal(t, int64(1024), cfg.MaxFileSizeBytes)
		assert.Equal(t, "svc", cfg.Prefix)
		assert.False(t, cfg.Sanitize)
		assert.Equal(t, "txt", cfg.Extension)
	})

	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Prefix = "other"

	assert.Equal(t, "log", cfg.Prefix)
	assert.NotSame(t, cfg, clone)
}
