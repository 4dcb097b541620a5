package timer

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/xid"
)

// Handle is the ownership token of a periodic registration.
type Handle interface {
	// Cancel stops the registration. Calling it more than once is a no-op.
	Cancel()
}

// Scheduler runs a callback at a fixed interval until the returned Handle
// is cancelled.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}

// Poster delivers fn onto the goroutine that owns the countdown.
type Poster func(fn func())

// TickerScheduler is a Scheduler backed by time.Ticker. Ticks are not run on
// the ticker goroutine; they are handed to a Poster so that callbacks run on
// the same goroutine as every other countdown command.
type TickerScheduler struct {
	post Poster
}

// NewTickerScheduler creates a scheduler that delivers ticks through post.
func NewTickerScheduler(post Poster) *TickerScheduler {
	return &TickerScheduler{post: post}
}

// Every starts a ticker goroutine for fn.
func (s *TickerScheduler) Every(interval time.Duration, fn func()) Handle {
	h := &tickerHandle{
		id:   xid.New().String(),
		done: make(chan struct{}),
	}
	log.Printf("schedule %s: every %v", h.id, interval)

	go h.run(interval, fn, s.post)

	return h
}

type tickerHandle struct {
	id        string
	done      chan struct{}
	once      sync.Once
	cancelled atomic.Bool
}

func (h *tickerHandle) run(interval time.Duration, fn func(), post Poster) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			post(func() {
				// The tick may have been queued before Cancel ran.
				if h.cancelled.Load() {
					return
				}
				fn()
			})
		}
	}
}

func (h *tickerHandle) Cancel() {
	h.once.Do(func() {
		h.cancelled.Store(true)
		close(h.done)
		log.Printf("schedule %s: cancelled", h.id)
	})
}
