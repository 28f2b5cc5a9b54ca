package core

import "time"

// FixedStep paces a poll loop at a steady frames-per-second rate.
type FixedStep struct {
	step time.Duration
	last time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFixedStep constructs a FixedStep controller targeting the given FPS.
func NewFixedStep(fps int) *FixedStep {
	fs := &FixedStep{now: time.Now, sleep: time.Sleep}
	fs.SetFPS(fps)
	return fs
}

// SetFPS changes the frame rate. Non-positive values fall back to 60.
func (f *FixedStep) SetFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	f.step = time.Second / time.Duration(fps)
}

// Wait blocks until the next frame is due. A loop that falls behind by more
// than one frame does not try to catch up.
func (f *FixedStep) Wait() {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return
	}
	next := f.last.Add(f.step)
	if now.Before(next) {
		f.sleep(next.Sub(now))
		f.last = next
		return
	}
	f.last = now
}
