// internal/domain/homework/homework.go
package homework

import "time"

// Cursor is the lower bound (unix seconds) of the next fetch window.
type Cursor int64

// CursorAt returns the cursor for the given moment.
func CursorAt(t time.Time) Cursor {
	return Cursor(t.Unix())
}

// RawPayload is a decoded API response body, not yet validated.
type RawPayload map[string]any

// Record is the review state of the most recent submission.
type Record struct {
	Name   string
	Status Status
}

// PollResult is the normalized outcome of one fetch.
// Implementations: Unchanged, Changed.
type PollResult interface {
	NextCursor() Cursor
	isPollResult()
}

// Unchanged means the API reported no new review activity since the cursor.
type Unchanged struct {
	Next Cursor
}

func (u Unchanged) NextCursor() Cursor { return u.Next }
func (Unchanged) isPollResult()        {}

// Changed carries the latest submission whose status changed.
type Changed struct {
	Record Record
	Next   Cursor
}

func (c Changed) NextCursor() Cursor { return c.Next }
func (Changed) isPollResult()        {}
