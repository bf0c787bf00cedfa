package compat

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/dailylog"
)

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.Local)

// fiberCommonLogger mirrors the method set of Fiber v2's log.CommonLogger
type fiberCommonLogger interface {
	Trace(v ...any)
	Debug(v ...any)
	Info(v ...any)
	Warn(v ...any)
	Error(v ...any)
	Fatal(v ...any)
	Panic(v ...any)
	Tracef(format string, v ...any)
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
	Fatalf(format string, v ...any)
	Panicf(format string, v ...any)
	Tracew(msg string, keysAndValues ...any)
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Fatalw(msg string, keysAndValues ...any)
	Panicw(msg string, keysAndValues ...any)
}

var (
	_ fiberCommonLogger = (*FiberAdapter)(nil)
	_ io.Writer         = (*FiberAdapter)(nil)
)

// createTestCompatBuilder creates a standard setup for compatibility adapter tests
func createTestCompatBuilder(t *testing.T) (*Builder, *dailylog.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	store, err := dailylog.NewBuilder().
		Directory("/logs").
		LevelString("debug").
		Fs(fs).
		Clock(clockwork.NewFakeClockAt(testNow)).
		Build()
	require.NoError(t, err)

	builder := NewBuilder().WithStore(store)
	return builder, store, fs
}

// readLines returns the lines of the store's current file
func readLines(t *testing.T, fs afero.Fs, store *dailylog.Store) []string {
	t.Helper()
	data, err := afero.ReadFile(fs, store.CurrentFile())
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestCompatBuilder(t *testing.T) {
	t.Run("with existing store", func(t *testing.T) {
		builder, store, _ := createTestCompatBuilder(t)

		gnetAdapter, err := builder.BuildGnet()
		require.NoError(t, err)
		assert.Same(t, store, gnetAdapter.store)

		fasthttpAdapter, err := builder.BuildFastHTTP()
		require.NoError(t, err)
		assert.Same(t, store, fasthttpAdapter.store)

		fiberAdapter, err := builder.BuildFiber()
		require.NoError(t, err)
		assert.Same(t, store, fiberAdapter.store)
	})

	t.Run("with config", func(t *testing.T) {
		cfg := dailylog.DefaultConfig()
		cfg.Directory = "/cfg-logs"
		fs := afero.NewMemMapFs()

		builder := NewBuilder().WithConfig(cfg, dailylog.WithFs(fs))
		adapter, err := builder.BuildGnet()
		require.NoError(t, err)
		require.NotNil(t, adapter.store)
		assert.True(t, adapter.store.Enabled())

		// Second build reuses the cached store
		again, err := builder.GetStore()
		require.NoError(t, err)
		assert.Same(t, adapter.store, again)

		exists, err := afero.DirExists(fs, "/cfg-logs")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("nil store", func(t *testing.T) {
		_, err := NewBuilder().WithStore(nil).BuildFastHTTP()
		assert.Error(t, err)
	})
}

func TestGnetAdapter(t *testing.T) {
	builder, store, fs := createTestCompatBuilder(t)

	var fatalCalled bool
	var fatalMsg string
	adapter, err := builder.BuildGnet(WithFatalHandler(func(msg string) {
		fatalCalled = true
		fatalMsg = msg
	}))
	require.NoError(t, err)

	adapter.Debugf("gnet debug id=%d", 1)
	adapter.Infof("gnet info id=%d", 2)
	adapter.Warnf("gnet warn id=%d", 3)
	adapter.Errorf("gnet error id=%d", 4)
	adapter.Fatalf("gnet fatal id=%d", 5)

	lines := readLines(t, fs, store)
	require.Len(t, lines, 5)

	expected := []string{
		"- 09:30:00 [Debug] - gnet: gnet debug id=1",
		"- 09:30:00 [Info] - gnet: gnet info id=2",
		"- 09:30:00 [Warning] - gnet: gnet warn id=3",
		"- 09:30:00 [Error] - gnet: gnet error id=4",
		"- 09:30:00 [Critical] - gnet: gnet fatal id=5",
	}
	assert.Equal(t, expected, lines)

	assert.True(t, fatalCalled)
	assert.Equal(t, "gnet fatal id=5", fatalMsg)
}

func TestGnetAdapterSource(t *testing.T) {
	builder, store, fs := createTestCompatBuilder(t)

	adapter, err := builder.BuildGnet(WithGnetSource("engine"))
	require.NoError(t, err)
	adapter.Infof("listening on %s", "tcp://:9000")

	lines := readLines(t, fs, store)
	require.Len(t, lines, 1)
	assert.Equal(t, "- 09:30:00 [Info] - engine: listening on tcp://:9000", lines[0])
}

func TestFastHTTPAdapter(t *testing.T) {
	builder, store, fs := createTestCompatBuilder(t)

	adapter, err := builder.BuildFastHTTP()
	require.NoError(t, err)

	testMessages := []string{
		"this is some informational message",
		"a debug message for the developers",
		"warning: something might be wrong",
		"an error occurred while processing",
		"fatal: listener closed",
	}
	for _, msg := range testMessages {
		adapter.Printf("%s", msg)
	}

	lines := readLines(t, fs, store)
	require.Len(t, lines, len(testMessages))

	expectedLevels := []string{"[Info]", "[Debug]", "[Warning]", "[Error]", "[Critical]"}
	for i, line := range lines {
		assert.Contains(t, line, expectedLevels[i], "line %d", i)
		assert.True(t, strings.HasSuffix(line, "fasthttp: "+testMessages[i]), "line %d: %s", i, line)
	}
}

func TestFastHTTPAdapterOptions(t *testing.T) {
	builder, store, fs := createTestCompatBuilder(t)

	adapter, err := builder.BuildFastHTTP(
		WithDefaultLevel(dailylog.LevelWarning),
		WithLevelDetector(func(string) (dailylog.Level, bool) { return 0, false }),
	)
	require.NoError(t, err)

	adapter.Printf("request failed with %d", 500)

	lines := readLines(t, fs, store)
	require.Len(t, lines, 1)
	assert.Equal(t, "- 09:30:00 [Warning] - fasthttp: request failed with 500", lines[0])
}

func TestDetectLogLevel(t *testing.T) {
	tests := []struct {
		msg   string
		level dailylog.Level
		found bool
	}{
		{"panic in handler", dailylog.LevelCritical, true},
		{"connection failed", dailylog.LevelError, true},
		{"deprecated option", dailylog.LevelWarning, true},
		{"trace id", dailylog.LevelDebug, true},
		{"served request", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			level, found := DetectLogLevel(tt.msg)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.level, level)
		})
	}
}

func TestFiberAdapter(t *testing.T) {
	builder, store, fs := createTestCompatBuilder(t)

	var fatalMsgs, panicMsgs []string
	adapter, err := builder.BuildFiber(
		WithFiberFatalHandler(func(msg string) { fatalMsgs = append(fatalMsgs, msg) }),
		WithFiberPanicHandler(func(msg string) { panicMsgs = append(panicMsgs, msg) }),
	)
	require.NoError(t, err)

	adapter.Trace("trace ", 1)
	adapter.Debug("debug")
	adapter.Info("info")
	adapter.Warn("warn")
	adapter.Error("error")
	adapter.Fatal("fatal")
	adapter.Panic("panic")
	adapter.Infof("status=%d", 200)
	adapter.Errorf("failed %s", "/health")
	adapter.Warnw("slow request", "path", "/api", "ms", 1200)
	adapter.Debugw("dangling", "key")
	adapter.Fatalw("shutdown", "reason", "signal")
	adapter.Panicf("bad state %d", 7)

	lines := readLines(t, fs, store)
	assert.Equal(t, []string{
		"- 09:30:00 [Debug] - fiber: trace 1",
		"- 09:30:00 [Debug] - fiber: debug",
		"- 09:30:00 [Info] - fiber: info",
		"- 09:30:00 [Warning] - fiber: warn",
		"- 09:30:00 [Error] - fiber: error",
		"- 09:30:00 [Critical] - fiber: fatal",
		"- 09:30:00 [Critical] - fiber: panic",
		"- 09:30:00 [Info] - fiber: status=200",
		"- 09:30:00 [Error] - fiber: failed /health",
		"- 09:30:00 [Warning] - fiber: slow request path=/api ms=1200",
		"- 09:30:00 [Debug] - fiber: dangling key=!MISSING",
		"- 09:30:00 [Critical] - fiber: shutdown reason=signal",
		"- 09:30:00 [Critical] - fiber: bad state 7",
	}, lines)

	assert.Equal(t, []string{"fatal", "shutdown reason=signal"}, fatalMsgs)
	assert.Equal(t, []string{"panic", "bad state 7"}, panicMsgs)
}

func TestFiberAdapterWriter(t *testing.T) {
	builder, store, fs := createTestCompatBuilder(t)

	adapter, err := builder.BuildFiber(WithFiberSource("http"))
	require.NoError(t, err)

	payload := []byte("200 GET /index 3ms\n")
	n, err := adapter.Write(payload)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)

	lines := readLines(t, fs, store)
	assert.Equal(t, []string{"- 09:30:00 [Info] - http: 200 GET /index 3ms"}, lines)
}
