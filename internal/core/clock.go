package core

import "time"

// Clock reports wall time in whole seconds.
type Clock interface {
	Seconds() int64
}

// SystemClock reads the process clock.
type SystemClock struct{}

// Seconds returns the current Unix time truncated to seconds.
func (SystemClock) Seconds() int64 { return time.Now().Unix() }

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() int64

// Seconds calls f.
func (f ClockFunc) Seconds() int64 { return f() }
