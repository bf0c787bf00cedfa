package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/lixenwraith/dailylog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[dailylog]
  directory = "./simple_logs"
  extension = "log"
  max_retained_files = 5
  max_file_size_bytes = 1048576
  # Other settings use defaults
`

func main() {
	fmt.Println("--- Simple Store Example ---")

	// --- Setup Config ---
	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue, a missing file yields defaults
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := dailylog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.MinLevel = dailylog.LevelDebug

	// --- Initialize the default store ---
	if err := <-dailylog.InitializeAsync(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize store: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Store initialized, writing to", dailylog.Default().CurrentFile())

	// --- Logging ---
	_ = dailylog.Debug("This is a debug message.", "user_id", 123)
	_ = dailylog.Info("Application starting...")
	_ = dailylog.Warning("Potential issue detected.", "threshold", 0.95)
	_ = dailylog.Error("An error occurred!", "code", 500)
	_ = dailylog.Critical("Multi-line\npayload stays on one line")

	// Logging from goroutines
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = dailylog.Info("Goroutine", id, "reporting")
		}(i)
	}
	wg.Wait()

	// Writes are synchronous, nothing to flush
	if err := dailylog.CleanupOldLogs(); err != nil {
		fmt.Fprintf(os.Stderr, "Cleanup error: %v\n", err)
	}

	stats := dailylog.Default().Stats()
	fmt.Printf("Lines written: %d, filtered: %d\n", stats.LinesWritten, stats.Filtered)
	fmt.Println("--- Example Finished ---")
	fmt.Printf("Check log files in '%s'.\n", cfg.Directory)
}
