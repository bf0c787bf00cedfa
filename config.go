// FILE: lixenwraith/dailylog/config.go
package dailylog

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/lixenwraith/config"
)

// Config holds all store configuration values
type Config struct {
	Directory     string `toml:"directory"`
	EnableLogging bool   `toml:"enable_logging"`
	MinLevel      Level  `toml:"min_level"`

	// Retention and size limits
	MaxRetainedFiles int64 `toml:"max_retained_files"` // Files kept after a cleanup pass
	MaxFileSizeBytes int64 `toml:"max_file_size_bytes"`

	// File naming: <prefix>_<YYYYMMDD>[_<HHMMSS>].<extension>
	Prefix    string `toml:"prefix"`
	Extension string `toml:"extension"`

	Sanitize bool `toml:"sanitize"` // Hex encode line breaks in messages; tabs and other runes pass through
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Directory:     "./logs",
	EnableLogging: true,
	MinLevel:      LevelInfo,

	MaxRetainedFiles: 30,
	MaxFileSizeBytes: 5 * sizeMultiplier,

	Prefix:    "log",
	Extension: "txt",

	Sanitize: true,
}

// configPrefix is the TOML table holding store settings
const configPrefix = "dailylog."

var levelType = reflect.TypeOf(Level(0))

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from the [dailylog] table of a TOML file.
// A missing file yields the defaults.
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	loader := config.New()

	if err := loader.RegisterStruct(configPrefix, *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if err := extractConfig(loader, configPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromBytes parses YAML or JSON configuration data.
// Keys may sit at the top level or under a "dailylog" object.
func NewConfigFromBytes(data []byte, format string) (*Config, error) {
	var parser koanf.Parser
	switch strings.ToLower(format) {
	case "yaml", "yml":
		parser = yaml.Parser()
	case "json":
		parser = json.Parser()
	default:
		return nil, fmtErrorf("unsupported config format: '%s' (use yaml or json)", format)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmtErrorf("failed to parse %s config: %w", format, err)
	}
	if k.Exists(strings.TrimSuffix(configPrefix, ".")) {
		k = k.Cut(strings.TrimSuffix(configPrefix, "."))
	}

	cfg := DefaultConfig()
	if err := applyOverrides(cfg, k.All()); err != nil {
		return nil, fmt.Errorf("failed to apply %s config: %w", format, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(v.Field(i), val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides keyed by toml tag to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		if tomlTag := t.Field(i).Tag.Get("toml"); tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion.
// Decoders disagree on number types (TOML int64, YAML int, JSON float64), so all are accepted.
func setFieldValue(field reflect.Value, value any) error {
	if field.Type() == levelType {
		lv, err := toLevel(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(lv))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		n, err := toInt64(value)
		if err != nil {
			return err
		}
		field.SetInt(n)

	case reflect.Bool:
		switch b := value.(type) {
		case bool:
			field.SetBool(b)
		case string:
			parsed, err := strconv.ParseBool(b)
			if err != nil {
				return fmt.Errorf("expected bool, got %q", b)
			}
			field.SetBool(parsed)
		default:
			return fmt.Errorf("expected bool, got %T", value)
		}

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

func toInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("expected integer, got %v", v)
		}
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected int64, got %T", value)
	}
}

func toLevel(value any) (Level, error) {
	if s, ok := value.(string); ok {
		return ParseLevel(s)
	}
	if lv, ok := value.(Level); ok {
		return lv, nil
	}
	n, err := toInt64(value)
	if err != nil {
		return 0, err
	}
	if !Level(n).valid() {
		return 0, fmt.Errorf("level out of range: %d", n)
	}
	return Level(n), nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Prefix) == "" {
		return fmtErrorf("prefix cannot be empty")
	}

	if strings.ContainsAny(c.Prefix, `/\`) {
		return fmtErrorf("prefix cannot contain path separators: %s", c.Prefix)
	}

	if strings.HasPrefix(c.Extension, ".") {
		return fmtErrorf("extension should not start with dot: %s", c.Extension)
	}

	if strings.TrimSpace(c.Directory) == "" {
		return fmtErrorf("directory cannot be empty")
	}

	if !c.MinLevel.valid() {
		return fmtErrorf("min_level out of range: %d", int(c.MinLevel))
	}

	if c.MaxRetainedFiles <= 0 {
		return fmtErrorf("max_retained_files must be positive: %d", c.MaxRetainedFiles)
	}

	if c.MaxFileSizeBytes <= 0 {
		return fmtErrorf("max_file_size_bytes must be positive: %d", c.MaxFileSizeBytes)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// withStructuralDefaults fills zero or out of range fields from the defaults
func (c *Config) withStructuralDefaults() *Config {
	out := c.Clone()
	if strings.TrimSpace(out.Directory) == "" {
		out.Directory = defaultConfig.Directory
	}
	if strings.TrimSpace(out.Prefix) == "" {
		out.Prefix = defaultConfig.Prefix
	}
	if out.Extension == "" {
		out.Extension = defaultConfig.Extension
	}
	out.Extension = strings.TrimPrefix(out.Extension, ".")
	if !out.MinLevel.valid() {
		out.MinLevel = defaultConfig.MinLevel
	}
	if out.MaxRetainedFiles <= 0 {
		out.MaxRetainedFiles = defaultConfig.MaxRetainedFiles
	}
	if out.MaxFileSizeBytes <= 0 {
		out.MaxFileSizeBytes = defaultConfig.MaxFileSizeBytes
	}
	return out
}
