package forecast

import "time"

// Options carries the deployment policy the engine is otherwise
// agnostic about: fixed fallback values and the clock used to synthesize
// an anchor date when the input carries none. The engine itself holds no
// configuration state; callers build Options once at startup.
type Options struct {
	// SolarDefault is the solar radiation percentage substituted when the
	// source carries no solar signal for a day.
	SolarDefault float64
	// RadioR1R2Default and RadioR3PlusDefault are the radio blackout
	// likelihood percentages substituted, together, when the source
	// carries no blackout breakdown.
	RadioR1R2Default   float64
	RadioR3PlusDefault float64
	// Now supplies wall-clock time; nil means time.Now. Injected so the
	// date-anchor fallback is testable.
	Now func() time.Time
}

// DefaultOptions returns the fixed defaults the production deployment
// has always used.
func DefaultOptions() Options {
	return Options{
		SolarDefault:       1,
		RadioR1R2Default:   35,
		RadioR3PlusDefault: 1,
	}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) defaultBlackout() (interface{}, interface{}) {
	return o.RadioR1R2Default, o.RadioR3PlusDefault
}
