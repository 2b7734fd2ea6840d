package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Dispatcher executes notification sends detached from the request that
// produced them. Semantics are fire-and-forget, at-most-once: each task is
// attempted once under a bounded timeout; failures are logged and dropped.
// The outcome of a send never affects the response of the write that queued it.
type Dispatcher struct {
	sender  Sender
	logger  *slog.Logger
	timeout time.Duration
	tasks   chan TransactionCreated
	wg      sync.WaitGroup
}

// NewDispatcher starts the single worker goroutine. queueSize bounds the
// number of pending tasks; beyond it Enqueue drops.
func NewDispatcher(sender Sender, logger *slog.Logger, timeout time.Duration, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	d := &Dispatcher{
		sender:  sender,
		logger:  logger,
		timeout: timeout,
		tasks:   make(chan TransactionCreated, queueSize),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for t := range d.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.sender.Send(ctx, t); err != nil {
			d.logger.Error("failed to send notification",
				"error", err, "transaction_id", t.TransactionID)
		} else {
			d.logger.Info("notification sent", "transaction_id", t.TransactionID)
		}
		cancel()
	}
}

// Enqueue hands off a task without blocking the caller. When the queue is
// full the task is dropped and a warning logged.
func (d *Dispatcher) Enqueue(t TransactionCreated) {
	select {
	case d.tasks <- t:
	default:
		d.logger.Warn("notification queue full, dropping task",
			"transaction_id", t.TransactionID)
	}
}

// Close drains pending tasks and waits for the worker to finish.
func (d *Dispatcher) Close() {
	close(d.tasks)
	d.wg.Wait()
}
