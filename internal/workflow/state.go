package workflow

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is a two-phase workflow state. COMMITTED, CANCELLED, and FAILED are
// terminal.
type State string

const (
	StateStart     State = "START"
	StateValidated State = "VALIDATED"
	StatePending   State = "PENDING"
	StateConfirmed State = "CONFIRMED_BY_USER"
	StateCommitted State = "COMMITTED"
	StateCancelled State = "CANCELLED"
	StateFailed    State = "FAILED"
)

var workflowTransitions = map[State]map[State]struct{}{
	StateStart: {
		StateValidated: {},
		StateFailed:    {},
	},
	StateValidated: {
		StatePending: {},
		StateFailed:  {},
	},
	StatePending: {
		StateConfirmed: {},
		StateCancelled: {},
		StateFailed:    {},
	},
	StateConfirmed: {
		StateCommitted: {},
		StateFailed:    {},
	},
	StateCommitted: {},
	StateCancelled: {},
	StateFailed:    {},
}

func canTransition(current, next State) bool {
	nextStates, ok := workflowTransitions[current]
	if !ok {
		return false
	}
	_, ok = nextStates[next]
	return ok
}

// run tracks one workflow instance through the state machine. Each run gets
// a fresh ID so log lines can be reconciled against quote/payment references.
type run struct {
	id    uuid.UUID
	state State
	log   *zap.Logger
}

func newRun(logger *zap.Logger, kind string) *run {
	id := uuid.New()
	return &run{
		id:    id,
		state: StateStart,
		log:   logger.With(zap.String("workflow", kind), zap.String("run_id", id.String())),
	}
}

func (r *run) to(next State) error {
	if !canTransition(r.state, next) {
		return fmt.Errorf("invalid workflow state transition: %s -> %s", r.state, next)
	}
	r.log.Info("workflow state changed",
		zap.String("from", string(r.state)),
		zap.String("to", string(next)),
	)
	r.state = next
	return nil
}

// fail moves the run to FAILED and returns the failure unchanged.
func (r *run) fail(err *Error) *Error {
	r.state = StateFailed
	r.log.Warn("workflow failed",
		zap.String("kind", string(err.Kind)),
		zap.Error(err),
	)
	return err
}
