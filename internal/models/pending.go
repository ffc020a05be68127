package models

import "time"

// ActionKind is the kind of a queued mutation
type ActionKind string

const (
	ActionCreate ActionKind = "create"
	ActionUpdate ActionKind = "update"
	ActionDelete ActionKind = "delete"
)

// PendingAction is a mutation that failed to reach the store and is
// queued for retry. The queue is strict FIFO on its head; a failing
// head is requeued to the tail with Attempts+1 so actions for other
// notes get a chance. JSON-serializable so the queue survives restarts.
type PendingAction struct {
	EnqueuedAt time.Time  `json:"enqueuedAt"`
	ID         string     `json:"id"` // UUID of the action itself
	Kind       ActionKind `json:"kind"`
	NoteID     string     `json:"noteId"`
	Note       *Note      `json:"note,omitempty"` // payload for create/update
	Attempts   int        `json:"attempts"`
}

// RetryDelay returns how long the retry loop waits before attempting
// this action: nothing on the first try, then 2s per attempt capped
// at 30s.
func (a *PendingAction) RetryDelay() time.Duration {
	if a.Attempts == 0 {
		return 0
	}
	d := 2 * time.Second * time.Duration(a.Attempts)
	if d > 30*time.Second {
		d = 30 * time.Second
	}
	return d
}
