package animation

import (
	"context"
	"math"
	"sync"
	"time"
)

const (
	DefaultDuration      = 1500 * time.Millisecond
	DefaultFrameInterval = 16 * time.Millisecond
)

// EaseOutCubic maps linear time t in [0,1] to 1-(1-t)^3.
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(1-t, 3)
}

// ProgressAt returns the eased progress after elapsed of a duration-long animation.
func ProgressAt(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return EaseOutCubic(math.Min(1, float64(elapsed)/float64(duration)))
}

// Frames lists the progress values an offline animation passes through,
// one per interval, always ending at 1.
func Frames(duration, interval time.Duration) []float64 {
	if duration <= 0 || interval <= 0 {
		return []float64{1}
	}
	var out []float64
	for elapsed := time.Duration(0); ; elapsed += interval {
		if elapsed >= duration {
			return append(out, 1)
		}
		out = append(out, ProgressAt(elapsed, duration))
	}
}

// Ticker delivers frame ticks.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Option configures a Driver.
type Option func(*Driver)

// WithDuration sets the total animation length. Non-positive values keep the default.
func WithDuration(d time.Duration) Option {
	return func(dr *Driver) {
		if d > 0 {
			dr.duration = d
		}
	}
}

// WithFrameInterval sets the tick period.
func WithFrameInterval(d time.Duration) Option {
	return func(dr *Driver) {
		if d > 0 {
			dr.interval = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(dr *Driver) { dr.now = now }
}

// WithTicker replaces the frame ticker factory.
func WithTicker(f func(time.Duration) Ticker) Option {
	return func(dr *Driver) { dr.newTicker = f }
}

// Driver advances animation progress from 0 to 1 exactly once.
type Driver struct {
	duration  time.Duration
	interval  time.Duration
	now       func() time.Time
	newTicker func(time.Duration) Ticker

	mu       sync.Mutex
	progress float64

	stopOnce sync.Once
	stopped  chan struct{}
}

// New creates a Driver with the default 1.5s ease-out animation.
func New(opts ...Option) *Driver {
	d := &Driver{
		duration:  DefaultDuration,
		interval:  DefaultFrameInterval,
		now:       time.Now,
		newTicker: NewTimeTicker,
		stopped:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Progress returns the last published progress.
func (d *Driver) Progress() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.progress
}

// Stop ends the animation. Safe to call repeatedly and after Run returned.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() { close(d.stopped) })
}

// Run calls onFrame once per tick with non-decreasing progress until it
// reaches 1, the context ends or Stop is called. No onFrame call happens
// after Stop returns to a caller that observed it.
func (d *Driver) Run(ctx context.Context, onFrame func(progress float64)) error {
	if d.isStopped() {
		return nil
	}
	ticker := d.newTicker(d.interval)
	defer ticker.Stop()

	start := d.now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.stopped:
			return nil
		case <-ticker.C():
			elapsed := d.now().Sub(start)
			p := d.advance(ProgressAt(elapsed, d.duration))
			if d.isStopped() {
				return nil
			}
			onFrame(p)
			if p >= 1 {
				return nil
			}
		}
	}
}

// advance stores p unless it would move progress backwards.
func (d *Driver) advance(p float64) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p > d.progress {
		d.progress = p
	}
	return d.progress
}

func (d *Driver) isStopped() bool {
	select {
	case <-d.stopped:
		return true
	default:
		return false
	}
}
