// Package watcher runs the background polling cycle that turns backend
// changes into notification events.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"smilelink/config"
	"smilelink/internal/delivery"
	"smilelink/internal/domain/lifecycle"
	"smilelink/internal/domain/service"
	"smilelink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Params holds dependencies for the poll watcher.
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	Notifier usecase.NotifierUsecase
	Sink     service.EventSink
}

type pollWatcher struct {
	cfg      *config.Config
	logger   *slog.Logger
	notifier usecase.NotifierUsecase
	sink     service.EventSink
	cron     *cron.Cron
}

// NewWatcher creates the scheduled poller as a Delivery.
func NewWatcher(params Params) (delivery.Delivery, error) {
	w := &pollWatcher{
		cfg:      params.Cfg,
		logger:   params.Logger,
		notifier: params.Notifier,
		sink:     params.Sink,
		cron:     cron.New(),
	}

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w, nil
}

// Serve records the baseline, then polls on the configured interval. The
// baseline fills the seen sets so pre-existing records never replay as new.
func (w *pollWatcher) Serve(ctx context.Context) error {
	if err := w.notifier.Baseline(ctx); err != nil {
		return errors.Wrap(err, "baseline poll")
	}

	spec := fmt.Sprintf("@every %s", w.cfg.Notifications.Interval)
	if _, err := w.cron.AddFunc(spec, func() { w.cycle(ctx) }); err != nil {
		return errors.Wrapf(err, "schedule poll %q", spec)
	}

	w.cron.Start()
	w.logger.Info("change poller started", slog.Duration("interval", w.cfg.Notifications.Interval))

	<-ctx.Done()

	return nil
}

func (w *pollWatcher) cycle(ctx context.Context) {
	events, err := w.notifier.Poll(ctx)
	if err != nil {
		w.logger.Warn("poll cycle failed", slog.Any("error", err))

		return
	}

	for _, event := range events {
		w.sink.Emit(event)
	}
}

func (w *pollWatcher) stop(ctx context.Context) error {
	w.logger.Info("Shutting down change poller")

	// Stop returns a context that is done once running jobs finish.
	stopped := w.cron.Stop()
	select {
	case <-stopped.Done():
	case <-time.After(lifecycle.DefaultTimeout):
		w.logger.Warn("poll cycle still running at shutdown deadline")
	}

	return nil
}
