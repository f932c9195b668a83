package store

import (
	"context"
	"sync/atomic"

	"github.com/logmind/moodlog/models"
)

// JournalFeed is the live "all entries" stream. Every journal-table
// mutation publishes a complete, consistent snapshot (not a diff); slow
// subscribers have stale snapshots coalesced away rather than blocking
// the feed.
//
// Entries on the feed never carry tags. Point reads and list reads are the
// only paths that hydrate tags.
//
// Concurrency model: a single internal goroutine owns the subscriber set.
// Public methods communicate with that loop through channels, so no
// mutexes are required.
type JournalFeed struct {
	subscribeCh   chan chan []models.Journal
	unsubscribeCh chan chan []models.Journal
	publishCh     chan []models.Journal

	stopCh  chan struct{}
	stopped chan struct{}
	closed  atomic.Bool
}

// NewJournalFeed creates a feed and starts its event loop.
func NewJournalFeed() *JournalFeed {
	f := &JournalFeed{
		subscribeCh:   make(chan chan []models.Journal),
		unsubscribeCh: make(chan chan []models.Journal),
		publishCh:     make(chan []models.Journal, 16),
		stopCh:        make(chan struct{}),
		stopped:       make(chan struct{}),
	}

	go f.run()
	return f
}

func (f *JournalFeed) run() {
	defer close(f.stopped)

	subscribers := make(map[chan []models.Journal]struct{})

	deliver := func(snapshot []models.Journal) {
		for ch := range subscribers {
			select {
			case ch <- snapshot:
			default:
				// Subscriber still holds an unread snapshot; replace it
				// with the fresh one.
				select {
				case <-ch:
				default:
				}
				select {
				case ch <- snapshot:
				default:
				}
			}
		}
	}

	for {
		select {
		case <-f.stopCh:
			for ch := range subscribers {
				close(ch)
			}
			return

		case ch := <-f.subscribeCh:
			subscribers[ch] = struct{}{}

		case ch := <-f.unsubscribeCh:
			if _, ok := subscribers[ch]; ok {
				delete(subscribers, ch)
				close(ch)
			}

		case snapshot := <-f.publishCh:
			deliver(snapshot)
		}
	}
}

// Subscribe registers a subscriber whose lifetime is bound to ctx. The
// returned channel receives full snapshots and is closed when ctx is done
// or the feed is closed.
func (f *JournalFeed) Subscribe(ctx context.Context) <-chan []models.Journal {
	ch := make(chan []models.Journal, 1)

	if f.closed.Load() {
		close(ch)
		return ch
	}

	select {
	case f.subscribeCh <- ch:
	case <-f.stopped:
		close(ch)
		return ch
	}

	go func() {
		select {
		case <-ctx.Done():
			select {
			case f.unsubscribeCh <- ch:
			case <-f.stopped:
			}
		case <-f.stopped:
		}
	}()

	return ch
}

// Publish broadcasts a fresh snapshot to all subscribers. Called by the
// journal repository after every mutation.
func (f *JournalFeed) Publish(snapshot []models.Journal) {
	if f.closed.Load() {
		return
	}
	select {
	case f.publishCh <- snapshot:
	case <-f.stopped:
	}
}

// Close shuts down the event loop and closes all subscriber channels.
// Safe to call more than once.
func (f *JournalFeed) Close() {
	if f.closed.CompareAndSwap(false, true) {
		close(f.stopCh)
	}
	<-f.stopped
}
