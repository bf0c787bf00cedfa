// FILE: example/gnet/main.go
package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/dailylog"
	"github.com/lixenwraith/dailylog/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
	store *dailylog.Store
}

func (es *echoServer) OnBoot(eng gnet.Engine) gnet.Action {
	_ = es.store.Info("echo server booted")
	return gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	_ = es.store.Debug("echo", len(buf), "bytes from", c.RemoteAddr().String())
	c.Write(buf)
	return gnet.None
}

func main() {
	store, err := dailylog.NewBuilder().
		Directory("./logs/gnet").
		LevelString("debug").
		MaxFileSizeMB(1).
		Build()
	if err != nil {
		panic(err)
	}

	gnetAdapter, err := compat.NewBuilder().WithStore(store).BuildGnet(compat.WithGnetSource("echo"))
	if err != nil {
		panic(err)
	}

	// Configure gnet server with the adapter
	err = gnet.Run(
		&echoServer{store: store},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		_ = store.Critical("gnet stopped:", err)
		panic(err)
	}
}
