package viewstate

import (
	"context"
	"sync"
	"time"

	"github.com/logmind/moodlog/internal/logger"
	"github.com/logmind/moodlog/internal/service"
	"github.com/logmind/moodlog/models"
)

// HomeState is the snapshot behind the home screen: the selected calendar
// day and its entries, plus the entries of the visible month for the
// calendar markers.
type HomeState struct {
	SelectedDate  time.Time
	DayJournals   []models.Journal
	MonthJournals []models.Journal
	Err           error
}

// Home drives the home screen. It follows the live journal feed and
// reloads the selected day and month whenever any entry changes.
type Home struct {
	journals service.JournalService
	logger   *logger.Logger

	mu    sync.RWMutex
	state HomeState

	updates chan HomeState

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewHome(journals service.JournalService, log *logger.Logger) *Home {
	return &Home{
		journals: journals,
		logger:   log,
		updates:  make(chan HomeState, 1),
	}
}

// Start loads today and launches the feed follower. It stops any
// previously running follower first.
func (h *Home) Start(ctx context.Context) {
	h.Stop()

	h.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.state.SelectedDate = time.Now()
	h.wg.Add(1)
	h.mu.Unlock()

	h.reload(runCtx)

	feed := h.journals.Subscribe(runCtx)
	go func() {
		defer h.wg.Done()
		for {
			select {
			case <-runCtx.Done():
				return
			case _, ok := <-feed:
				if !ok {
					return
				}
				// Feed snapshots carry no tags, so the day and month
				// lists are re-read through the hydrating paths.
				h.reload(runCtx)
			}
		}
	}()
}

// Stop cancels the feed follower and waits for it to exit. Safe to call
// when the holder is not running.
func (h *Home) Stop() {
	h.mu.Lock()
	cancel := h.cancel
	h.cancel = nil
	h.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	h.wg.Wait()
}

// State returns the current snapshot.
func (h *Home) State() HomeState {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.state
}

// Updates returns the coalescing update channel: a reader that falls
// behind only misses intermediate snapshots, never the latest one.
func (h *Home) Updates() <-chan HomeState {
	return h.updates
}

// SelectDate switches the selected calendar day and reloads.
func (h *Home) SelectDate(ctx context.Context, date time.Time) {
	h.mu.Lock()
	h.state.SelectedDate = date
	h.mu.Unlock()

	h.reload(ctx)
}

// Reload re-reads the selected day and its month, for manual retry after
// a failed load.
func (h *Home) Reload(ctx context.Context) {
	h.reload(ctx)
}

func (h *Home) reload(ctx context.Context) {
	h.mu.RLock()
	date := h.state.SelectedDate
	h.mu.RUnlock()

	day, err := h.journals.GetByDate(ctx, date)
	if err != nil {
		h.fail(err)
		return
	}

	month, err := h.journals.GetByMonth(ctx, date)
	if err != nil {
		h.fail(err)
		return
	}

	h.mu.Lock()
	h.state.DayJournals = day
	h.state.MonthJournals = month
	h.state.Err = nil
	snapshot := h.state
	h.mu.Unlock()

	h.publish(snapshot)
}

func (h *Home) fail(err error) {
	if err == nil {
		return
	}
	h.logger.Error().Err(err).Msg("home screen load failed")

	h.mu.Lock()
	h.state.Err = err
	snapshot := h.state
	h.mu.Unlock()

	h.publish(snapshot)
}

func (h *Home) publish(snapshot HomeState) {
	for {
		select {
		case h.updates <- snapshot:
			return
		default:
			select {
			case <-h.updates:
			default:
			}
		}
	}
}
