// FILE: example/raw/main.go
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/dailylog"
)

// TestPayload defines a struct for testing complex type serialization.
type TestPayload struct {
	RequestID uint64
	User      string
	Metrics   map[string]float64
}

func main() {
	fmt.Println("--- Store Composition Test ---")

	// --- 1. Define the records to be tested ---
	// Record 1: A byte slice with special characters (newline, tab, null).
	byteRecord := []byte("binary\ndata\twith\x00null")

	// Record 2: A struct containing a uint64, a string, and a map.
	structRecord := TestPayload{
		RequestID: 9223372036854775807,
		User:      "test_user",
		Metrics: map[string]float64{
			"latency_ms":  15.7,
			"cpu_percent": 88.2,
		},
	}

	// --- 2. Sanitized store: line breaks are hex encoded, tabs kept ---
	fmt.Println("\n[1] Sanitized output")
	sanitized, err := dailylog.NewBuilder().
		Directory("./raw_logs").
		Prefix("sanitized").
		Build()
	if err != nil {
		fmt.Printf("Failed to build store: %v\n", err)
		return
	}
	_ = sanitized.Info("Byte Record ->", byteRecord)
	_ = sanitized.Info("Struct Record ->", structRecord)
	_ = sanitized.Info("String with\nnewline\tand tab")
	printFile(sanitized.CurrentFile())

	// --- 3. Unsanitized store: messages are written as composed ---
	fmt.Println("\n[2] Unsanitized output")
	raw, err := dailylog.NewBuilder().
		Directory("./raw_logs").
		Prefix("raw").
		Sanitize(false).
		Build()
	if err != nil {
		fmt.Printf("Failed to build store: %v\n", err)
		return
	}
	_ = raw.Info("Struct Record ->", structRecord)
	_ = raw.Info("String with\nnewline\tand tab")
	printFile(raw.CurrentFile())

	fmt.Println("\n--- Test Complete ---")
}

func printFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Failed to read %s: %v\n", path, err)
		return
	}
	fmt.Printf("%s:\n%s", path, data)
}
