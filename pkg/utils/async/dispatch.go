package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Dispatcher runs handlers in background goroutines and keeps track of
// them so that shutdown can wait for in-flight work. The zero value is
// ready to use.
type Dispatcher struct {
	wg sync.WaitGroup
}

// Dispatch runs handler in a new goroutine. The handler context keeps the
// values of ctx, such as the logger, but is not cancelled with it. Errors
// and panics are logged and reported to Sentry.
func (d *Dispatcher) Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				ctxlog.From(newCtx).Error("panic in async handler",
					"recover", r,
					"stack", string(stack))
				sentry.CurrentHub().Clone().Recover(r)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("error in async handler", "error", err)
			sentry.CurrentHub().Clone().CaptureException(err)
		}
	}()
}

// Wait blocks until every dispatched handler returns or ctx is done
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "async handlers did not finish")
	}
}
