package rigid

import (
	"fmt"
	"time"
)

// Timings tracks the duration of a piece of work that runs repeatedly.
type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
}

// Record adds a new measurement.
func (t *Timings) Record(d time.Duration) {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Count += 1
}

// Measure runs fn and records its duration.
func (t *Timings) Measure(fn func()) {
	startTime := time.Now()
	fn()
	t.Record(time.Since(startTime))
}

func (t Timings) String() string {
	return fmt.Sprintf("avg=%s min=%s max=%s n=%d", t.MovingAverage, t.Min, t.Max, t.Count)
}
