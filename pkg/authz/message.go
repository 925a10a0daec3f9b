package authz

import "github.com/google/uuid"

// Status is the outcome of validating an Action.
type Status string

const (
	// StatusSuccess marks an allowed check.
	StatusSuccess Status = "success"
	// StatusFailed marks a denied check.
	StatusFailed Status = "failed"
)

// Message is the structured result of an authorization check. Denials are
// always Messages delivered through callbacks, never errors, so callers can
// branch without error handling.
type Message struct {
	// Status is success or failed.
	Status Status

	// Message is a human-readable explanation.
	Message string

	// Target is the Role or Group the verdict concerns. Nil when the role
	// itself could not be resolved.
	Target Target

	// Action is the originating request, when one got far enough to matter.
	Action *Action

	// CheckID correlates the message with the check that produced it.
	// Stamped by AccessControl.CheckPermissions; zero when the message came
	// from a direct Validate call.
	CheckID uuid.UUID
}

// Failed reports whether the message denies the action.
func (m *Message) Failed() bool {
	return m != nil && m.Status == StatusFailed
}

func failedMessage(target Target, action Action, text string) *Message {
	return &Message{
		Status:  StatusFailed,
		Message: text,
		Target:  target,
		Action:  &action,
	}
}
