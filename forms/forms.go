// Package forms models the edit buffers behind the customer, scheduling and
// task editors as pure value types. Every transition returns a new buffer, so
// the state machines can be exercised without any view or transport attached.
package forms

import "strconv"

// Mode is the lifecycle state of an editor.
type Mode int

const (
	ModeClosed Mode = iota
	ModeNew
	ModeEditing
)

// Effect tells the hosting view what to do after a transition.
type Effect int

const (
	EffectNone Effect = iota
	// EffectRefetch re-fetches the current filtered list from the server.
	// Lists are never spliced locally: priority, payment clearing and the
	// active filters are all server-side, so only a re-fetch stays
	// authoritative.
	EffectRefetch
)

// PendingDelete tracks a record awaiting the user's explicit confirmation
// before the delete call is issued.
type PendingDelete struct {
	ID string
}

// Confirmed reports whether a delete may proceed for the given id.
func (p PendingDelete) Confirmed(id string) bool {
	return p.ID != "" && p.ID == id
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
