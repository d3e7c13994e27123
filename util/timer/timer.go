package timer

import (
	"sync"
	"time"
)

// SetInterval calls f every duration until the returned ticker is stopped.
// Stopping the ticker does not wait for a running f to return.
func SetInterval(duration time.Duration, f func()) *Ticker {
	t := newTicker(duration)
	go t.run(f)
	return t
}

func SetTimeout(duration time.Duration, f func()) *Ticker {
	t := newTicker(duration)
	go t.run(func() {
		t.Stop()
		f()
	})
	return t
}

type Ticker struct {
	*time.Ticker
	done chan struct{}
	once sync.Once
}

func newTicker(duration time.Duration) *Ticker {
	return &Ticker{Ticker: time.NewTicker(duration), done: make(chan struct{})}
}

func (t *Ticker) Stop() {
	t.once.Do(func() {
		t.Ticker.Stop()
		close(t.done)
	})
}

func (t *Ticker) run(f func()) {
	for {
		select {
		case <-t.C:
			select {
			case <-t.done:
				return
			default:
			}
			f()
		case <-t.done:
			return
		}
	}
}
