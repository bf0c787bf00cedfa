package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/dailylog"
)

const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "

var levels = []dailylog.Level{
	dailylog.LevelDebug,
	dailylog.LevelInfo,
	dailylog.LevelWarning,
	dailylog.LevelError,
	dailylog.LevelCritical,
}

// tagPattern extracts the per-line tag written by a worker
var tagPattern = regexp.MustCompile(`\btag=(w\d+-m\d+)\b`)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "logstress: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "logstress",
		Usage: "write tagged lines from concurrent workers and verify every line reached disk",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "log directory, wiped before the run",
				Value: "./logs",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "concurrent writers",
				Value:   50,
			},
			&cli.IntFlag{
				Name:    "messages",
				Aliases: []string{"m"},
				Usage:   "lines per writer",
				Value:   200,
			},
			&cli.Int64Flag{
				Name:  "max-size",
				Usage: "split size in bytes",
				Value: 64 * 1024,
			},
			&cli.Int64Flag{
				Name:  "retain",
				Usage: "files kept by cleanup",
				Value: 1000,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "optional TOML file with a [dailylog] table; flags override it",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	workers := cmd.Int("workers")
	messages := cmd.Int("messages")
	if workers <= 0 || messages <= 0 {
		return fmt.Errorf("workers and messages must be positive")
	}

	cfg := dailylog.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		loaded, err := dailylog.NewConfigFromFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.Directory = cmd.String("dir")
	cfg.MinLevel = dailylog.LevelDebug
	cfg.EnableLogging = true
	cfg.MaxFileSizeBytes = cmd.Int64("max-size")
	cfg.MaxRetainedFiles = cmd.Int64("retain")

	if err := os.RemoveAll(cfg.Directory); err != nil {
		return fmt.Errorf("failed to clean %s: %w", cfg.Directory, err)
	}

	store, err := dailylog.NewBuilder().Config(cfg).Build()
	if err != nil {
		return err
	}
	if !store.Enabled() {
		return fmt.Errorf("logging disabled, see diagnostics above")
	}

	fmt.Printf("--- dailylog stress: %d workers x %d lines -> %s ---\n", workers, messages, cfg.Directory)

	start := time.Now()
	var wg sync.WaitGroup
	var completed atomic.Int64
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			worker(ctx, store, id, messages)
			if n := completed.Add(1); n%10 == 0 || n == int64(workers) {
				fmt.Printf("\rProgress: %d/%d workers done", n, workers)
			}
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)
	fmt.Println()

	expected := workers * messages
	seen, files, err := countTags(store.Config())
	if err != nil {
		return err
	}

	stats := store.Stats()
	fmt.Printf("Elapsed:     %v (%.0f lines/s)\n", elapsed, float64(expected)/elapsed.Seconds())
	fmt.Printf("Files:       %d\n", files)
	fmt.Printf("Written:     %d lines, %d bytes\n", stats.LinesWritten, stats.BytesWritten)
	fmt.Printf("Rotations:   %d, write failures: %d\n", stats.Rotations, stats.WriteFailures)
	fmt.Printf("Unique tags: %d of %d\n", len(seen), expected)

	var dupes int
	for _, n := range seen {
		if n > 1 {
			dupes++
		}
	}
	if len(seen) != expected || dupes > 0 {
		return fmt.Errorf("line count mismatch: %d unique of %d expected, %d duplicated", len(seen), expected, dupes)
	}
	fmt.Println("OK")
	return nil
}

// worker writes n tagged lines at random levels
func worker(ctx context.Context, store *dailylog.Store, id, n int) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			return
		}
		level := levels[rng.Intn(len(levels))]
		msg := randomMessage(rng, rng.Intn(200)+10)
		_ = store.Log(level, fmt.Sprintf("tag=w%d-m%d", id, i), msg)
	}
}

func randomMessage(rng *rand.Rand, size int) string {
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rng.Intn(len(chars))])
	}
	return sb.String()
}

// countTags counts each tag across all files matching the store's naming scheme
func countTags(cfg *dailylog.Config) (map[string]int, int, error) {
	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(cfg.Prefix) + `_\d{8}.*` + regexp.QuoteMeta("."+cfg.Extension) + "$")

	entries, err := os.ReadDir(cfg.Directory)
	if err != nil {
		return nil, 0, err
	}

	seen := make(map[string]int)
	files := 0
	for _, entry := range entries {
		if entry.IsDir() || !pattern.MatchString(entry.Name()) {
			continue
		}
		files++
		if err := scanFile(filepath.Join(cfg.Directory, entry.Name()), seen); err != nil {
			return nil, 0, err
		}
	}
	return seen, files, nil
}

func scanFile(path string, seen map[string]int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := tagPattern.FindStringSubmatch(scanner.Text()); m != nil {
			seen[m[1]]++
		}
	}
	return scanner.Err()
}
