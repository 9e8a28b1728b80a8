package models

// Couple activity statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusSkipped    = "skipped"
)

// statusTransitions lists the allowed next statuses for each current status.
// Completed and skipped are terminal.
var statusTransitions = map[string][]string{
	StatusPending:    {StatusInProgress, StatusCompleted, StatusSkipped},
	StatusInProgress: {StatusCompleted, StatusSkipped},
	StatusCompleted:  {},
	StatusSkipped:    {},
}

// ValidStatus reports whether s is a known couple activity status.
func ValidStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether a couple activity may move from one status to
// another. Staying on the same status is always allowed so that partial patches
// which repeat the current value do not fail.
func CanTransition(from, to string) bool {
	if from == to {
		return ValidStatus(from)
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
