// FILE: override.go
package dailylog

// NewConfigFromOverrides applies string key-value overrides to the default configuration.
// Each override should be in the format "key=value". Every malformed pair is reported,
// not just the first.
//
// Example:
//
//	cfg, err := dailylog.NewConfigFromOverrides(
//	    "directory=/var/log/app",
//	    "min_level=warning",
//	    "max_retained_files=7",
//	)
func NewConfigFromOverrides(overrides ...string) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrideStrings(cfg, overrides); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyOverrideStrings applies all overrides to cfg, collecting every failure
func applyOverrideStrings(cfg *Config, overrides []string) error {
	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	return combineErrors(errs...)
}

// applyConfigField applies a single key-value override to a Config.
// Field lookup and conversion share the reflective path used by the file loaders.
func applyConfigField(cfg *Config, key, value string) error {
	if err := applyOverrides(cfg, map[string]any{key: value}); err != nil {
		return fmtErrorf("%w", err)
	}
	return nil
}
