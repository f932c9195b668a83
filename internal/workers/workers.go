package workers

import (
	"context"

	"github.com/logmind/moodlog/internal/config"
	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers: currently the
// daily journal reminder.
func NewWorkers(ctx context.Context, cfg config.App, settings service.SettingsService, notify func(string), log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewReminderWorker(ctx, cfg.ReminderHour, settings, notify, log),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts down every worker that supports it.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if s, ok := worker.(StoppableWorker); ok {
			s.Stop()
		}
	}
}
