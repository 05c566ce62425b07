package state

import "github.com/google/uuid"

// newStrokeID gives every stroke its own identity so two strokes with the
// same geometry and style are still told apart.
func newStrokeID() string {
	return uuid.NewString()
}
