// Package notify polls the backend for notifications on a fixed interval
// and hands the mapped result to a subscriber.
package notify

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/buildpro/buildpro-go/internal/backend"
	"github.com/buildpro/buildpro-go/internal/mapper"
	"github.com/buildpro/buildpro-go/internal/model"
)

// Source is the slice of the API the poller consumes.
type Source interface {
	ListNotifications(ctx context.Context) ([]backend.NotificationRecord, error)
}

// Config configures a Poller.
type Config struct {
	Source   Source
	Interval time.Duration
	Logger   *slog.Logger
	// OnUpdate receives the full mapped notification list after each
	// successful poll. It runs on the poller goroutine.
	OnUpdate func([]model.Notification)
}

// Poller fetches notifications periodically. Fetch failures are logged
// and the loop keeps going; only Stop or context cancellation ends it.
type Poller struct {
	source   Source
	interval time.Duration
	logger   *slog.Logger
	onUpdate func([]model.Notification)

	started  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

const defaultInterval = 30 * time.Second

// New creates a Poller. Call Start to begin polling.
func New(cfg Config) *Poller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		source:   cfg.Source,
		interval: interval,
		logger:   logger,
		onUpdate: cfg.OnUpdate,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the polling loop. The first fetch happens immediately,
// subsequent ones on the configured interval. Only the first call starts
// the loop.
func (p *Poller) Start(ctx context.Context) {
	if !p.started.CompareAndSwap(false, true) {
		return
	}
	go p.run(ctx)
}

// Stop ends the loop and waits for it to exit. Safe to call more than
// once, and safe on a poller that was never started.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	if p.started.Load() {
		<-p.done
	}
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stop:
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	recs, err := p.source.ListNotifications(ctx)
	if err != nil {
		p.logger.Debug("notification poll failed", "error", err)
		return
	}
	notifications := make([]model.Notification, 0, len(recs))
	for i, rec := range recs {
		notifications = append(notifications, mapper.Notification(rec, i))
	}
	if p.onUpdate != nil {
		p.onUpdate(notifications)
	}
}
