package notifier

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSender struct {
	mu    sync.Mutex
	sent  []TransactionCreated
	err   error
	block chan struct{} // when set, Send waits until it closes
}

func (s *countingSender) Send(_ context.Context, t TransactionCreated) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, t)
	return s.err
}

func (s *countingSender) sentIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.sent))
	for i, t := range s.sent {
		ids[i] = t.TransactionID
	}
	return ids
}

func TestDispatcherSendsEachTaskOnce(t *testing.T) {
	sender := &countingSender{}
	d := NewDispatcher(sender, slog.New(slog.DiscardHandler), time.Second, 8)

	d.Enqueue(TransactionCreated{TransactionID: "TXN1"})
	d.Enqueue(TransactionCreated{TransactionID: "TXN2"})
	d.Close()

	assert.Equal(t, []string{"TXN1", "TXN2"}, sender.sentIDs())
}

func TestDispatcherFailureIsSwallowed(t *testing.T) {
	sender := &countingSender{err: errors.New("connection refused")}
	d := NewDispatcher(sender, slog.New(slog.DiscardHandler), time.Second, 8)

	// Must not panic or retry; failure is logged and dropped.
	d.Enqueue(TransactionCreated{TransactionID: "TXN1"})
	d.Close()

	assert.Equal(t, []string{"TXN1"}, sender.sentIDs())
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	block := make(chan struct{})
	sender := &countingSender{block: block}
	d := NewDispatcher(sender, slog.New(slog.DiscardHandler), time.Second, 1)

	// First task occupies the worker, second fills the buffer, third drops.
	d.Enqueue(TransactionCreated{TransactionID: "TXN1"})
	require.Eventually(t, func() bool { return len(d.tasks) == 0 }, time.Second, time.Millisecond)
	d.Enqueue(TransactionCreated{TransactionID: "TXN2"})
	d.Enqueue(TransactionCreated{TransactionID: "TXN3"})

	close(block)
	d.Close()

	assert.Equal(t, []string{"TXN1", "TXN2"}, sender.sentIDs())
}
