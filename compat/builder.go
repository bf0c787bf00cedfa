package compat

import (
	"fmt"

	"github.com/lixenwraith/dailylog"
)

// Builder provides a flexible way to create adapters for gnet, fasthttp and Fiber
// It can use an existing *dailylog.Store or create a new one from a *dailylog.Config
type Builder struct {
	store *dailylog.Store
	cfg   *dailylog.Config
	opts  []dailylog.Option
	err   error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithStore specifies an existing store to use for the adapters
// If this is set WithConfig is ignored
func (b *Builder) WithStore(s *dailylog.Store) *Builder {
	if s == nil {
		b.err = fmt.Errorf("dailylog/compat: provided store cannot be nil")
		return b
	}
	b.store = s
	return b
}

// WithConfig provides a configuration for a new store instance
// This is used only if an existing store is NOT provided via WithStore
func (b *Builder) WithConfig(cfg *dailylog.Config, opts ...dailylog.Option) *Builder {
	b.cfg = cfg
	b.opts = opts
	return b
}

// getStore resolves the store to be used, creating and initializing one if necessary
func (b *Builder) getStore() (*dailylog.Store, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.store != nil {
		return b.store, nil
	}

	cfg := b.cfg
	if cfg == nil {
		cfg = dailylog.DefaultConfig()
	}

	s := dailylog.NewStore(b.opts...)
	if err := s.Initialize(cfg); err != nil {
		return nil, err
	}

	// Cache for subsequent builds with this builder
	b.store = s
	return s, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	s, err := b.getStore()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(s, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	s, err := b.getStore()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(s, opts...), nil
}

// BuildFiber creates a Fiber adapter
func (b *Builder) BuildFiber(opts ...FiberOption) (*FiberAdapter, error) {
	s, err := b.getStore()
	if err != nil {
		return nil, err
	}
	return NewFiberAdapter(s, opts...), nil
}

// GetStore returns the underlying store, creating it if needed
func (b *Builder) GetStore() (*dailylog.Store, error) {
	return b.getStore()
}

// --- Example Usage ---
//
//	store, _ := dailylog.NewBuilder().Directory("/var/log/app").Build()
//	builder := compat.NewBuilder().WithStore(store)
//
//	gnetLogger, _ := builder.BuildGnet()
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	fasthttpLogger, _ := builder.BuildFastHTTP()
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
//
//	fiberLogger, _ := builder.BuildFiber()
//	app.Use(logger.New(logger.Config{Output: fiberLogger})) // fiber/v2/middleware/logger
