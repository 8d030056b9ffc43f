package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildpro/buildpro-go/internal/backend"
	"github.com/buildpro/buildpro-go/internal/model"
)

type fakeSource struct {
	mu    sync.Mutex
	calls int
	recs  []backend.NotificationRecord
	err   error
}

func (f *fakeSource) ListNotifications(context.Context) ([]backend.NotificationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.recs, f.err
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestPoller_DeliversMappedNotifications(t *testing.T) {
	source := &fakeSource{recs: []backend.NotificationRecord{
		{ID: "n1", NotificationType: "Task_Assigned", Title: "New task", IsRead: false},
	}}

	got := make(chan []model.Notification, 1)
	p := New(Config{
		Source:   source,
		Interval: time.Hour,
		OnUpdate: func(ns []model.Notification) { got <- ns },
	})
	p.Start(context.Background())
	defer p.Stop()

	select {
	case ns := <-got:
		require.Len(t, ns, 1)
		assert.Equal(t, 1, ns[0].ID)
		assert.Equal(t, "n1", ns[0].CanonicalID)
		assert.Equal(t, "Task Assigned", ns[0].Type)
	case <-time.After(2 * time.Second):
		t.Fatal("no notification update delivered")
	}
}

func TestPoller_KeepsGoingAfterFetchError(t *testing.T) {
	source := &fakeSource{err: errors.New("backend down")}

	p := New(Config{Source: source, Interval: 10 * time.Millisecond})
	p.Start(context.Background())
	defer p.Stop()

	require.Eventually(t, func() bool { return source.callCount() >= 3 },
		2*time.Second, 5*time.Millisecond)
}

func TestPoller_StopIsIdempotent(t *testing.T) {
	source := &fakeSource{}
	p := New(Config{Source: source, Interval: time.Hour})
	p.Start(context.Background())

	p.Stop()
	p.Stop()

	calls := source.callCount()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, source.callCount())
}

func TestPoller_StopWithoutStart(t *testing.T) {
	source := &fakeSource{}
	p := New(Config{Source: source, Interval: time.Hour})

	p.Stop()
	p.Stop()

	assert.Zero(t, source.callCount())
}

func TestPoller_ContextCancelEndsLoop(t *testing.T) {
	source := &fakeSource{}
	ctx, cancel := context.WithCancel(context.Background())

	p := New(Config{Source: source, Interval: time.Hour})
	p.Start(ctx)
	cancel()

	select {
	case <-p.done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not exit on context cancellation")
	}
}
