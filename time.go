package rigid

// FixedStep turns variable frame times into a number of fixed size steps.
//
// Frame time is accumulated and consumed in chunks of StepInterval. Whatever
// is left over carries into the next frame. If MaxOverstep is set, the
// accumulated time is clamped to it so that a long stall does not cause an
// unbounded burst of catch-up steps.
type FixedStep struct {
	// StepInterval is the size of a step in seconds.
	StepInterval float64

	// MaxOverstep is the largest amount of time in seconds that can be
	// accumulated. Zero disables clamping.
	MaxOverstep float64

	// Elapsed is the simulated time in seconds, always a multiple of StepInterval.
	Elapsed float64

	overstep float64
}

// Advance accumulates delta and returns the number of steps to run now.
// The second return value is the amount of time that was dropped due to clamping.
func (f *FixedStep) Advance(delta float64) (steps int, dropped float64) {
	if delta > 0 {
		f.overstep += delta
	}

	if f.MaxOverstep > 0 && f.overstep > f.MaxOverstep {
		dropped = f.overstep - f.MaxOverstep
		f.overstep = f.MaxOverstep
	}

	if f.StepInterval <= 0 {
		return 0, dropped
	}

	for f.overstep >= f.StepInterval {
		f.overstep -= f.StepInterval
		f.Elapsed += f.StepInterval
		steps += 1
	}

	return steps, dropped
}

// Overstep returns the accumulated time that has not been consumed by a step yet.
func (f *FixedStep) Overstep() float64 {
	return f.overstep
}

// Alpha returns how far the accumulated time has progressed into the next
// step, in the range [0, 1). Useful to interpolate rendering between steps.
func (f *FixedStep) Alpha() float64 {
	if f.StepInterval <= 0 {
		return 0
	}

	return f.overstep / f.StepInterval
}

// Reset discards accumulated and elapsed time.
func (f *FixedStep) Reset() {
	f.overstep = 0
	f.Elapsed = 0
}
