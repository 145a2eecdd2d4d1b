package pipeline

import "traveldesk/internal/domain"

// TransitionPolicy decides whether a lead may move between two stages.
// The rule lives in one place so tightening it later is a one-line
// swap at service construction.
type TransitionPolicy func(from, to domain.Stage) error

// PermitAll allows any stage to any stage. Agents keep full manual
// control of the board, including dragging a booked lead back to new.
func PermitAll(from, to domain.Stage) error { return nil }

// ForwardOnly denies moves against pipeline order. Offered for
// deployments that want a monotonic pipeline; not the default.
func ForwardOnly(from, to domain.Stage) error {
	if domain.StageIndex(to) < domain.StageIndex(from) {
		return ErrTransitionDenied
	}
	return nil
}
