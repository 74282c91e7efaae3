// Package lifecycle owns the valid status transitions of a maintenance
// request. Transitions are modeled as a finite state machine; callers
// request a target status and the machine decides whether the move is
// legal from the current one.
package lifecycle

import (
	"context"

	"github.com/looplab/fsm"

	"github.com/assetflow/maintenance-service/internal/domain"
	apperrors "github.com/assetflow/maintenance-service/pkg/util"
)

const (
	// EventAssign moves pending to in-progress. It is fired only by a
	// successful assignment, never by a direct status update.
	EventAssign = "assign"
	// EventComplete moves in-progress to completed.
	EventComplete = "complete"
	// EventCancel moves pending or in-progress to cancelled.
	EventCancel = "cancel"
)

func newMachine(current domain.RequestStatus) *fsm.FSM {
	return fsm.NewFSM(
		string(current),
		fsm.Events{
			{Name: EventAssign, Src: []string{string(domain.RequestStatusPending)}, Dst: string(domain.RequestStatusInProgress)},
			{Name: EventComplete, Src: []string{string(domain.RequestStatusInProgress)}, Dst: string(domain.RequestStatusCompleted)},
			{Name: EventCancel, Src: []string{string(domain.RequestStatusPending), string(domain.RequestStatusInProgress)}, Dst: string(domain.RequestStatusCancelled)},
		},
		fsm.Callbacks{},
	)
}

// EventForTarget maps a requested target status to the event reaching it.
// The pending status is initial only; nothing transitions back into it.
func EventForTarget(next domain.RequestStatus) (string, bool) {
	switch next {
	case domain.RequestStatusInProgress:
		return EventAssign, true
	case domain.RequestStatusCompleted:
		return EventComplete, true
	case domain.RequestStatusCancelled:
		return EventCancel, true
	}
	return "", false
}

// Apply validates current -> next and returns the resulting status. Any
// illegal move, including same-state targets and moves out of a terminal
// state, fails with an InvalidTransition error and changes nothing.
func Apply(ctx context.Context, current, next domain.RequestStatus) (domain.RequestStatus, error) {
	event, ok := EventForTarget(next)
	if !ok {
		return current, apperrors.NewInvalidTransition(string(current), string(next))
	}
	m := newMachine(current)
	if err := m.Event(ctx, event); err != nil {
		return current, apperrors.NewInvalidTransition(string(current), string(next))
	}
	return domain.RequestStatus(m.Current()), nil
}

// CanTransition reports whether current -> next is a legal move.
func CanTransition(current, next domain.RequestStatus) bool {
	event, ok := EventForTarget(next)
	if !ok {
		return false
	}
	return newMachine(current).Can(event)
}
