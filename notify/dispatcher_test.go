package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []Event
	fail map[int64]bool
}

func (m *recordingMailer) Send(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail[ev.Reservation.ID] {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, ev)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func TestDispatcher_DeliversAndSwallowsFailures(t *testing.T) {
	outbox := NewChannelOutbox(8)
	mailer := &recordingMailer{fail: map[int64]bool{1: true}}

	var mu sync.Mutex
	results := map[string]int{}
	d := NewDispatcher(outbox, mailer, 2, log.NewNopLogger(), WithObserver(func(result string) {
		mu.Lock()
		results[result]++
		mu.Unlock()
	}))

	for id := int64(1); id <= 3; id++ {
		ev := testEvent()
		ev.Reservation.ID = id
		require.NoError(t, outbox.Publish(context.Background(), ev))
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return results["delivered"]+results["failed"] == 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop")
	}

	assert.Equal(t, 2, mailer.count())
	assert.Equal(t, 1, results["failed"])
}
