package viewstate

import (
	"context"
	"sync"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/service"
	"github.com/logmind/moodlog/internal/stats"
	"github.com/logmind/moodlog/models"
)

// StatisticsState is the snapshot behind the statistics screen.
type StatisticsState struct {
	Period     stats.Period
	Statistics models.Statistics
	Err        error
}

// Statistics drives the statistics screen. It computes on demand only: a
// period switch or an explicit reload, never a background refresh.
type Statistics struct {
	journals service.JournalService
	logger   *logger.Logger

	mu    sync.RWMutex
	state StatisticsState
}

func NewStatistics(journals service.JournalService, log *logger.Logger) *Statistics {
	return &Statistics{
		journals: journals,
		logger:   log,
		state:    StatisticsState{Period: stats.PeriodWeek},
	}
}

// State returns the current snapshot.
func (s *Statistics) State() StatisticsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SelectPeriod switches the period and recomputes.
func (s *Statistics) SelectPeriod(ctx context.Context, period stats.Period) StatisticsState {
	s.mu.Lock()
	s.state.Period = period
	s.mu.Unlock()

	return s.Reload(ctx)
}

// Reload recomputes the statistics for the selected period. A failed
// computation keeps the previous numbers and surfaces the error.
func (s *Statistics) Reload(ctx context.Context) StatisticsState {
	s.mu.RLock()
	period := s.state.Period
	s.mu.RUnlock()

	computed, err := s.journals.Statistics(ctx, period)

	s.mu.Lock()
	if err != nil {
		s.logger.Error().Err(err).Str("period", period.String()).Msg("statistics load failed")
		s.state.Err = err
	} else {
		s.state.Statistics = computed
		s.state.Err = nil
	}
	snapshot := s.state
	s.mu.Unlock()

	return snapshot
}
