// --- File: default.go ---
package dailylog

// Global instance for package-level functions
var defaultStore = NewStore()

// Default package-level functions that delegate to the default store

// Default returns the process-wide store behind the package-level functions
func Default() *Store {
	return defaultStore
}

// Initialize initializes the default store; repeat and concurrent calls are no-ops
func Initialize(cfg *Config) error {
	return defaultStore.Initialize(cfg)
}

// InitializeAsync initializes the default store on a goroutine
func InitializeAsync(cfg *Config) <-chan error {
	return defaultStore.InitializeAsync(cfg)
}

// Log writes a message at the given level
func Log(level Level, args ...any) error {
	return defaultStore.Log(level, args...)
}

// Debug logs a message at debug level
func Debug(args ...any) error {
	return defaultStore.Debug(args...)
}

// Info logs a message at info level
func Info(args ...any) error {
	return defaultStore.Info(args...)
}

// Warning logs a message at warning level
func Warning(args ...any) error {
	return defaultStore.Warning(args...)
}

// Error logs a message at error level
func Error(args ...any) error {
	return defaultStore.Error(args...)
}

// Critical logs a message at critical level
func Critical(args ...any) error {
	return defaultStore.Critical(args...)
}

// CleanupOldLogs runs a retention pass on the default store's directory
func CleanupOldLogs() error {
	return defaultStore.CleanupOldLogs()
}
