package lifecycle

import "sync/atomic"

// Phase is the process-wide lifecycle phase.
type Phase int32

const (
	PhaseStarting Phase = iota
	PhaseReady
	PhaseDraining
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseStarting:
		return "starting"
	case PhaseReady:
		return "ready"
	case PhaseDraining:
		return "draining"
	case PhaseStopped:
		return "stopped"
	}
	return "unknown"
}

// State is an injectable lifecycle gate: starting → ready → draining →
// stopped. Readiness only holds in the ready phase, so the probe starts
// failing as soon as draining begins.
type State struct {
	phase atomic.Int32
}

func NewState() *State {
	s := &State{}
	s.phase.Store(int32(PhaseStarting))
	return s
}

func (s *State) Phase() Phase {
	return Phase(s.phase.Load())
}

// Transition moves to next if it is a legal forward step, and reports
// whether the move happened.
func (s *State) Transition(next Phase) bool {
	for {
		current := s.phase.Load()
		if int32(next) != current+1 {
			return false
		}
		if s.phase.CompareAndSwap(current, int32(next)) {
			return true
		}
	}
}

func (s *State) Ready() bool {
	return s.Phase() == PhaseReady
}
