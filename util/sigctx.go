// Package util contains small shared helpers.
package util

import (
	"context"
	"os"
	"os/signal"
	"time"
)

// SignalContext returns a context that is canceled after any of the given
// signals is received. The grace delay lets a child process run its own
// signal handling before the context tears it down.
func SignalContext(parent context.Context, grace time.Duration, sigs ...os.Signal) context.Context {
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
		case <-ch:
			time.Sleep(grace)
			cancel()
		}
	}()

	return ctx
}
