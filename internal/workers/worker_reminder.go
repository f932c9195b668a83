package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/service"
)

// reminderWorker fires a once-a-day journal reminder at the configured
// local hour. The notification preference is read at fire time, so turning
// it off takes effect without a restart.
type reminderWorker struct {
	ctx      context.Context
	hour     int
	settings service.SettingsService
	notify   func(string)
	logger   *logger.Logger

	interval time.Duration
	now      func() time.Time

	mu        sync.Mutex
	lastFired time.Time
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewReminderWorker creates the daily reminder worker. notify receives the
// user-facing reminder text; the worker is idle until Run is called.
func NewReminderWorker(ctx context.Context, hour int, settings service.SettingsService, notify func(string), log *logger.Logger) StoppableWorker {
	return &reminderWorker{
		ctx:      ctx,
		hour:     hour,
		settings: settings,
		notify:   notify,
		logger:   log,
		interval: time.Minute,
		now:      time.Now,
	}
}

func (w *reminderWorker) Run() {
	w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(w.ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-t.C:
				w.tick(runCtx)
			}
		}
	}()
}

func (w *reminderWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *reminderWorker) tick(ctx context.Context) {
	now := w.now()
	if now.Hour() != w.hour {
		return
	}

	w.mu.Lock()
	already := sameDay(w.lastFired, now)
	w.mu.Unlock()
	if already {
		return
	}

	if !w.settings.Load(ctx).NotificationEnabled {
		return
	}

	w.mu.Lock()
	w.lastFired = now
	w.mu.Unlock()

	w.logger.Info().Int("hour", w.hour).Msg("daily journal reminder fired")
	if w.notify != nil {
		w.notify(fmt.Sprintf("How was your day? It's %d o'clock, time to write.", w.hour))
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
