package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_ForwardTransitions(t *testing.T) {
	s := NewState()
	assert.Equal(t, PhaseStarting, s.Phase())
	assert.False(t, s.Ready())

	assert.True(t, s.Transition(PhaseReady))
	assert.True(t, s.Ready())

	assert.True(t, s.Transition(PhaseDraining))
	assert.False(t, s.Ready())

	assert.True(t, s.Transition(PhaseStopped))
	assert.Equal(t, PhaseStopped, s.Phase())
}

func TestState_IllegalTransitions(t *testing.T) {
	s := NewState()

	// Cannot skip ready.
	assert.False(t, s.Transition(PhaseDraining))
	assert.Equal(t, PhaseStarting, s.Phase())

	assert.True(t, s.Transition(PhaseReady))
	// Cannot go backwards.
	assert.False(t, s.Transition(PhaseReady))
	assert.False(t, s.Transition(PhaseStopped))
	assert.Equal(t, PhaseReady, s.Phase())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "starting", PhaseStarting.String())
	assert.Equal(t, "ready", PhaseReady.String())
	assert.Equal(t, "draining", PhaseDraining.String())
	assert.Equal(t, "stopped", PhaseStopped.String())
}
