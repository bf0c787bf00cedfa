// FILE: main.go
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/lixenwraith/dailylog"
)

const logDirectory = "./temp_logs"

// main orchestrates the different diagnostic sink scenarios.
func main() {
	// Ensure a clean state by removing the previous log directory.
	if err := os.RemoveAll(logDirectory); err != nil {
		fmt.Printf("Warning: could not remove old log directory: %v\n", err)
	}

	fmt.Println("--- Running Diagnostic Sink Scenarios ---")
	fmt.Printf("! All file-based logs will be in the '%s' directory.\n\n", logDirectory)

	testFileOnly()
	testDisabled()
	testUnwritableDirectory()
	testUsageError()

	fmt.Println("\n--- Scenarios Complete ---")
}

// testFileOnly tests the default behavior: lines to the file, nothing to the sink.
func testFileOnly() {
	var sink bytes.Buffer
	store := runPhase("1: File-Only", &sink, afero.NewOsFs(),
		"directory="+logDirectory,
		"prefix=file_only",
	)
	reportSink("1: File-Only", &sink)
	fmt.Println("  File:", store.CurrentFile())
}

// testDisabled tests a configuration where file output is off.
func testDisabled() {
	var sink bytes.Buffer
	store := runPhase("2: Disabled (lines should be dropped)", &sink, afero.NewOsFs(),
		"directory="+filepath.Join(logDirectory, "never_created"),
		"enable_logging=false",
	)
	reportSink("2: Disabled", &sink)
	fmt.Println("  Filtered:", store.Stats().Filtered)
}

// testUnwritableDirectory shows a directory failure reaching the sink instead of the caller.
func testUnwritableDirectory() {
	var sink bytes.Buffer
	readOnly := afero.NewReadOnlyFs(afero.NewMemMapFs())
	store := runPhase("3: Unwritable Directory", &sink, readOnly,
		"directory=/unwritable",
	)
	reportSink("3: Unwritable Directory", &sink)
	fmt.Println("  Enabled:", store.Enabled())
}

// testUsageError shows the one error a logging call can return.
func testUsageError() {
	fmt.Println("\n[Phase 4: Usage Error]")
	store := dailylog.NewStore()
	err := store.Info("before initialize")
	fmt.Printf("  Returned: %v (usage error: %t)\n", err, dailylog.IsUsageError(err))
}

// runPhase builds a store from overrides and writes a few lines.
func runPhase(phaseName string, sink *bytes.Buffer, fs afero.Fs, overrides ...string) *dailylog.Store {
	fmt.Printf("\n[Phase %s]\n", phaseName)
	fmt.Println("  Config:", overrides)

	store, err := dailylog.NewBuilder().
		Override(overrides...).
		MinLevel(dailylog.LevelDebug).
		Fs(fs).
		Sink(sink).
		Build()
	if err != nil {
		fmt.Printf("  ERROR: Failed to build store: %v\n", err)
		os.Exit(1)
	}

	_ = store.Info("event", "start_phase", "name", phaseName)
	_ = store.Debug("event", "end_phase", "name", phaseName)
	return store
}

func reportSink(phaseName string, sink *bytes.Buffer) {
	if sink.Len() == 0 {
		fmt.Printf("  Sink (%s): empty\n", phaseName)
		return
	}
	fmt.Printf("  Sink (%s): %s", phaseName, sink.String())
}
