package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"hubble-workspace/internal/infra/async"
	"hubble-workspace/internal/infra/pubsub"

	"github.com/robfig/cron/v3"
)

func NewAnalyticsRefreshWorker(ticker *time.Ticker, service AnalyticsService, schedule string) (*AnalyticsRefreshWorker, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	spec, err := parser.Parse(schedule)
	if err != nil {
		return nil, fmt.Errorf("parsing refresh schedule %q: %w", schedule, err)
	}

	return &AnalyticsRefreshWorker{
		ticker:   ticker,
		service:  service,
		schedule: spec,
		now:      time.Now,
		stop:     make(chan struct{}),
	}, nil
}

var _ async.Worker = &AnalyticsRefreshWorker{}

// AnalyticsRefreshWorker checks the schedule on every tick and recomputes the
// analytics once a scheduled time has passed.
type AnalyticsRefreshWorker struct {
	ticker   *time.Ticker
	service  AnalyticsService
	schedule cron.Schedule
	now      func() time.Time
	next     time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func (w *AnalyticsRefreshWorker) Run(ctx context.Context, done func()) {
	slog.Info("analytics refresh worker started")
	defer done()

	w.next = w.schedule.Next(w.now())
	for {
		select {
		case <-ctx.Done():
			slog.Info("analytics refresh worker cancelled")
			return
		case <-w.stop:
			slog.Info("analytics refresh worker stopped")
			return
		case <-w.ticker.C:
			w.Tick(ctx)
		}
	}
}

// Shutdown stops the ticker and ends Run. It is safe to call more than once.
func (w *AnalyticsRefreshWorker) Shutdown() {
	w.stopOnce.Do(func() {
		w.ticker.Stop()
		close(w.stop)
	})
}

// Tick refreshes when the next scheduled time is due and reports whether it did.
func (w *AnalyticsRefreshWorker) Tick(ctx context.Context) bool {
	now := w.now()
	if w.next.IsZero() {
		w.next = w.schedule.Next(now)
	}
	if now.Before(w.next) {
		return false
	}

	w.next = w.schedule.Next(now)
	if _, err := w.service.Refresh(ctx); err != nil {
		slog.Error("refreshing analytics", slog.String("error", err.Error()))
	}
	return true
}

func NewRecordEventWorker(consumer pubsub.Consumer, service AnalyticsService) *RecordEventWorker {
	return &RecordEventWorker{consumer: consumer, service: service, stop: make(chan struct{})}
}

var _ async.Worker = &RecordEventWorker{}

// RecordEventWorker feeds record events into the analytics service.
type RecordEventWorker struct {
	consumer pubsub.Consumer
	service  AnalyticsService
	stop     chan struct{}
	stopOnce sync.Once
}

func (w *RecordEventWorker) Run(ctx context.Context, done func()) {
	slog.Info("record event worker started")
	defer done()

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-w.stop:
			cancel()
		case <-consumeCtx.Done():
		}
	}()

	if err := w.consumer.Consume(consumeCtx, pubsub.RecordEventsTopic, w.service.HandleRecordEvent); err != nil {
		slog.Error("consuming record events", slog.String("error", err.Error()))
	}
}

// Shutdown cancels the consumer, which ends Run.
func (w *RecordEventWorker) Shutdown() {
	w.stopOnce.Do(func() { close(w.stop) })
}
