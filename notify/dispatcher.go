package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Dispatcher drains the outbox on a fixed number of workers and hands each
// event to the mailer. Delivery errors are logged and dropped.
type Dispatcher struct {
	outbox   Outbox
	mailer   Mailer
	workers  int
	logger   log.Logger
	observe  func(result string)
	retryGap time.Duration
}

type Option func(*Dispatcher)

// WithObserver reports "delivered" or "failed" for every event handled.
func WithObserver(fn func(result string)) Option {
	return func(d *Dispatcher) { d.observe = fn }
}

func NewDispatcher(outbox Outbox, mailer Mailer, workers int, logger log.Logger, opts ...Option) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	d := &Dispatcher{
		outbox:   outbox,
		mailer:   mailer,
		workers:  workers,
		logger:   log.With(logger, "component", "dispatcher"),
		observe:  func(string) {},
		retryGap: time.Second,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run blocks until ctx is cancelled and every worker has returned.
func (d *Dispatcher) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			d.work(ctx, log.With(d.logger, "worker", worker))
		}(i)
	}
	level.Info(d.logger).Log("msg", "dispatcher started", "workers", d.workers)
	wg.Wait()
	level.Info(d.logger).Log("msg", "dispatcher stopped")
	return nil
}

func (d *Dispatcher) work(ctx context.Context, logger log.Logger) {
	for {
		ev, err := d.outbox.Receive(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				level.Error(logger).Log("msg", "receive event", "err", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(d.retryGap):
			}
			continue
		}

		if err := d.mailer.Send(ctx, ev); err != nil {
			d.observe("failed")
			level.Warn(logger).Log("msg", "deliver event", "event", ev.ID, "kind", ev.Kind, "err", err)
			continue
		}
		d.observe("delivered")
	}
}
