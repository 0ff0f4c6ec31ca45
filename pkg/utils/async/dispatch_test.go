package async_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipnote/pkg/utils/async"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (x *lockedBuffer) Write(p []byte) (int, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.buf.Write(p)
}

func (x *lockedBuffer) String() string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.buf.String()
}

func loggingContext(buf *lockedBuffer) context.Context {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.With(context.Background(), logger)
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Run("runs handler and keeps the request logger", func(t *testing.T) {
		buf := &lockedBuffer{}
		ctx := loggingContext(buf)

		var d async.Dispatcher
		d.Dispatch(ctx, func(ctx context.Context) error {
			ctxlog.From(ctx).Info("resolving delivery", "delivery_id", "d-1")
			return nil
		})

		gt.NoError(t, d.Wait(context.Background()))
		gt.True(t, strings.Contains(buf.String(), "delivery_id=d-1"))
	})

	t.Run("logs handler errors", func(t *testing.T) {
		buf := &lockedBuffer{}
		var d async.Dispatcher
		d.Dispatch(loggingContext(buf), func(ctx context.Context) error {
			return errors.New("compare endpoint unavailable")
		})

		gt.NoError(t, d.Wait(context.Background()))
		out := buf.String()
		gt.True(t, strings.Contains(out, "error in async handler"))
		gt.True(t, strings.Contains(out, "compare endpoint unavailable"))
	})

	t.Run("recovers from panic and logs the stack", func(t *testing.T) {
		buf := &lockedBuffer{}
		var d async.Dispatcher
		d.Dispatch(loggingContext(buf), func(ctx context.Context) error {
			panic("nil run")
		})

		gt.NoError(t, d.Wait(context.Background()))
		out := buf.String()
		gt.True(t, strings.Contains(out, "panic in async handler"))
		gt.True(t, strings.Contains(out, "nil run"))
		gt.True(t, strings.Contains(out, "dispatch_test.go"))
	})

	t.Run("handler outlives the caller context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		started := make(chan struct{})
		var handlerErr error

		var d async.Dispatcher
		d.Dispatch(ctx, func(ctx context.Context) error {
			<-started
			handlerErr = ctx.Err()
			return nil
		})

		cancel()
		close(started)
		gt.NoError(t, d.Wait(context.Background()))
		gt.NoError(t, handlerErr)
	})
}

func TestDispatcher_Wait(t *testing.T) {
	t.Run("waits for every in-flight handler", func(t *testing.T) {
		var d async.Dispatcher
		var mu sync.Mutex
		var resolved []int

		for i := range 4 {
			d.Dispatch(context.Background(), func(ctx context.Context) error {
				time.Sleep(5 * time.Millisecond)
				mu.Lock()
				defer mu.Unlock()
				resolved = append(resolved, i)
				return nil
			})
		}

		gt.NoError(t, d.Wait(context.Background()))
		gt.Equal(t, len(resolved), 4)
	})

	t.Run("returns immediately with nothing dispatched", func(t *testing.T) {
		var d async.Dispatcher
		gt.NoError(t, d.Wait(context.Background()))
	})

	t.Run("gives up when the shutdown deadline passes", func(t *testing.T) {
		var d async.Dispatcher
		release := make(chan struct{})
		defer close(release)

		d.Dispatch(context.Background(), func(ctx context.Context) error {
			<-release
			return nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		gt.Error(t, d.Wait(ctx))
	})
}
