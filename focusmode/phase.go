package focusmode

import "time"

// Phase is one state of the focus mode lifecycle.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseEntering    Phase = "entering"
	PhaseTransition  Phase = "transition"
	PhaseActive      Phase = "active"
	PhaseExiting     Phase = "exiting"
	PhaseCelebration Phase = "celebration"
	PhaseLeaving     Phase = "leaving"
)

// Delays before the automatic transitions out of each timed phase.
const (
	EnteringDelay    = 2000 * time.Millisecond
	TransitionDelay  = 2200 * time.Millisecond
	ExitingDelay     = 400 * time.Millisecond
	CelebrationDelay = 2800 * time.Millisecond
	LeavingDelay     = 2000 * time.Millisecond
)

type successor struct {
	next  Phase
	delay time.Duration
}

// successors maps each timed phase to the phase it moves to on its own.
var successors = map[Phase]successor{
	PhaseEntering:    {PhaseTransition, EnteringDelay},
	PhaseTransition:  {PhaseActive, TransitionDelay},
	PhaseExiting:     {PhaseCelebration, ExitingDelay},
	PhaseCelebration: {PhaseLeaving, CelebrationDelay},
	PhaseLeaving:     {PhaseIdle, LeavingDelay},
}

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	switch p {
	case PhaseIdle,
		PhaseEntering,
		PhaseTransition,
		PhaseActive,
		PhaseExiting,
		PhaseCelebration,
		PhaseLeaving:
		return true
	}

	return false
}

// live reports whether p belongs to a running session, as opposed to the
// idle state or the wind-down after an exit.
func (p Phase) live() bool {
	return p == PhaseEntering || p == PhaseTransition || p == PhaseActive
}
