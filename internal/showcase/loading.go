package showcase

import "time"

// LoadingDelay is how long a simulated action stays in flight.
const LoadingDelay = 2000 * time.Millisecond

// LoadingTimer asks the renderer to call Page.FinishLoading once Delay
// has elapsed. Timers cannot be cancelled.
type LoadingTimer struct {
	Seq   int
	Delay time.Duration
}

// Loading is the one-shot flag behind the "simulate loading" control.
//
// Starting again while active schedules another timer but the flag is not
// tied to it: whichever timer fires first clears the flag.
type Loading struct {
	active      bool
	nextSeq     int
	outstanding int
}

// Active reports whether a simulated action is in flight.
func (l Loading) Active() bool {
	return l.active
}

// Outstanding counts scheduled timers that have not fired yet.
func (l Loading) Outstanding() int {
	return l.outstanding
}

func (l *Loading) start() LoadingTimer {
	l.active = true
	l.nextSeq++
	l.outstanding++
	return LoadingTimer{Seq: l.nextSeq, Delay: LoadingDelay}
}

func (l *Loading) finish() {
	l.active = false
	if l.outstanding > 0 {
		l.outstanding--
	}
}
