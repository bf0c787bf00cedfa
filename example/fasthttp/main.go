// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/dailylog"
	"github.com/lixenwraith/dailylog/compat"
)

func main() {
	// Create and configure the store
	cfg, err := dailylog.NewConfigFromOverrides(
		"directory=./logs/fasthttp",
		"min_level=debug",
		"max_retained_files=7",
	)
	if err != nil {
		panic(err)
	}

	store, err := dailylog.NewBuilder().Config(cfg).Build()
	if err != nil {
		panic(err)
	}

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter, err := compat.NewBuilder().
		WithStore(store).
		BuildFastHTTP(
			compat.WithDefaultLevel(dailylog.LevelInfo),
			compat.WithLevelDetector(customLevelDetector),
		)
	if err != nil {
		panic(err)
	}

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler(store),
		Logger:  fasthttpAdapter,

		Name:         "dailylog-example",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	_ = store.Info("starting server on :8080")
	fmt.Println("Starting server on :8080, logging to", store.CurrentFile())
	if err := server.ListenAndServe(":8080"); err != nil {
		_ = store.Critical("server stopped:", err)
		panic(err)
	}
}

func requestHandler(store *dailylog.Store) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		_ = store.Debug("request", string(ctx.Method()), string(ctx.Path()))
		ctx.SetContentType("text/plain")
		fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
	}
}

func customLevelDetector(msg string) (dailylog.Level, bool) {
	// fasthttp specific message patterns first
	if strings.Contains(msg, "connection cannot be served") {
		return dailylog.LevelWarning, true
	}
	if strings.Contains(msg, "error when serving connection") {
		return dailylog.LevelError, true
	}

	return compat.DetectLogLevel(msg)
}
