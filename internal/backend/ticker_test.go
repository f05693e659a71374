package backend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerEmitsIncreasingSequence(t *testing.T) {
	tk := NewTicker(MinInterval)
	defer func() {
		tk.Stop()
		tk.Wait()
	}()

	last := 0
	for i := 0; i < 3; i++ {
		select {
		case evt, ok := <-tk.Events():
			require.True(t, ok, "events channel closed early")
			assert.Greater(t, evt.Seq, last)
			assert.False(t, evt.At.IsZero())
			last = evt.Seq
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for tick %d", i+1)
		}
	}
}

func TestTickerStopClosesEvents(t *testing.T) {
	tk := NewTicker(time.Hour)
	tk.Stop()
	tk.Wait()

	select {
	case _, ok := <-tk.Events():
		// the closer goroutine may lag behind Wait by a moment
		if ok {
			t.Fatalf("expected no tick after stop")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("events channel was not closed")
	}
}

func TestTickerClampsInterval(t *testing.T) {
	tk := NewTicker(0)
	defer tk.Stop()
	assert.Equal(t, MinInterval, tk.Interval())
}
