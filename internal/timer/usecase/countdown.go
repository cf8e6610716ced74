package usecase

import (
	"fmt"
	"sync"
	"time"

	"day-to-day/internal/timer"
)

// countdown is one session's timer. All transitions hold mu; the live
// ticker goroutine is the only tick source and owns the stop channel
// handed to it at start.
type countdown struct {
	mu        sync.Mutex
	state     timer.State
	preset    timer.Preset
	total     int // seconds
	remaining int
	completed bool
	stopTick  chan struct{} // non-nil while a ticker goroutine is live
}

func newCountdown() *countdown {
	total := int(timer.PresetFocus.Duration().Seconds())
	return &countdown{
		state:     timer.StateIdle,
		preset:    timer.PresetFocus,
		total:     total,
		remaining: total,
	}
}

// stopTicker halts the live ticker goroutine, if any. Callers hold mu.
func (cd *countdown) stopTicker() {
	if cd.stopTick != nil {
		close(cd.stopTick)
		cd.stopTick = nil
	}
}

func (cd *countdown) start(interval time.Duration) timer.Snapshot {
	cd.mu.Lock()
	defer cd.mu.Unlock()

	if cd.state == timer.StateRunning {
		return cd.snapshotLocked()
	}

	cd.stopTicker()
	if cd.remaining == 0 {
		cd.remaining = cd.total
	}
	cd.state = timer.StateRunning
	cd.completed = false

	stop := make(chan struct{})
	cd.stopTick = stop
	go cd.run(interval, stop)

	return cd.snapshotLocked()
}

func (cd *countdown) pause() timer.Snapshot {
	cd.mu.Lock()
	defer cd.mu.Unlock()

	cd.stopTicker()
	cd.state = timer.StateIdle
	return cd.snapshotLocked()
}

func (cd *countdown) reset() timer.Snapshot {
	cd.mu.Lock()
	defer cd.mu.Unlock()

	cd.stopTicker()
	cd.state = timer.StateIdle
	cd.remaining = cd.total
	cd.completed = false
	return cd.snapshotLocked()
}

func (cd *countdown) setPreset(preset timer.Preset) timer.Snapshot {
	cd.mu.Lock()
	defer cd.mu.Unlock()

	cd.stopTicker()
	cd.state = timer.StateIdle
	cd.preset = preset
	cd.total = int(preset.Duration().Seconds())
	cd.remaining = cd.total
	cd.completed = false
	return cd.snapshotLocked()
}

func (cd *countdown) snapshot() timer.Snapshot {
	cd.mu.Lock()
	defer cd.mu.Unlock()
	return cd.snapshotLocked()
}

func (cd *countdown) snapshotLocked() timer.Snapshot {
	progress := 0.0
	if cd.total > 0 {
		progress = float64(cd.total-cd.remaining) / float64(cd.total) * 100
	}
	return timer.Snapshot{
		State:            cd.state,
		Preset:           cd.preset,
		TotalSeconds:     cd.total,
		RemainingSeconds: cd.remaining,
		Display:          formatRemaining(cd.remaining),
		Progress:         progress,
		Completed:        cd.completed,
	}
}

// run drains the ticker until stopped or the countdown finishes.
func (cd *countdown) run(interval time.Duration, stop chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			if cd.tick() {
				return
			}
		}
	}
}

// tick counts one second down and reports whether the run is over. The
// completion flag flips exactly once, on the transition to zero.
func (cd *countdown) tick() bool {
	cd.mu.Lock()
	defer cd.mu.Unlock()

	if cd.state != timer.StateRunning {
		return true
	}
	cd.remaining--
	if cd.remaining <= 0 {
		cd.remaining = 0
		cd.state = timer.StateIdle
		cd.completed = true
		cd.stopTick = nil
		return true
	}
	return false
}

func formatRemaining(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
