package backend

import (
	"context"
	"sync"
	"time"
)

// MinInterval is the shortest interval a Ticker accepts.
const MinInterval = 10 * time.Millisecond

// Event is one timer tick. Seq starts at 1.
type Event struct {
	Seq int
	At  time.Time
}

// Ticker publishes Events at a fixed interval from a background goroutine.
type Ticker struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewTicker starts a ticker firing every interval. Intervals below
// MinInterval are raised to it.
func NewTicker(interval time.Duration) *Ticker {
	if interval < MinInterval {
		interval = MinInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	t := &Ticker{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 1),
	}

	t.wg.Add(1)
	go t.run()

	go func() {
		t.wg.Wait()
		close(t.events)
	}()

	return t
}

// Interval reports the effective tick interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Events returns the tick channel. It is closed once the ticker stops.
func (t *Ticker) Events() <-chan Event {
	return t.events
}

// Stop cancels the ticker. Use Wait if a clean drain is required.
func (t *Ticker) Stop() {
	t.cancel()
}

// Wait blocks until the tick goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (t *Ticker) Wait() {
	t.wg.Wait()
}

func (t *Ticker) run() {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	seq := 0
	for {
		select {
		case <-t.ctx.Done():
			return
		case now := <-ticker.C:
			seq++
			// A slow consumer gets the latest tick rather than a backlog.
			select {
			case <-t.ctx.Done():
				return
			case t.events <- Event{Seq: seq, At: now}:
			default:
			}
		}
	}
}
