package models

import "time"

// StatusKind is the phase of a user-visible operation.
type StatusKind string

const (
	StatusIdle    StatusKind = "idle"
	StatusPending StatusKind = "pending"
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// OperationStatus is the message shown to the user for one scope (a record id
// or an operation name such as "create").
type OperationStatus struct {
	Scope   string
	Kind    StatusKind
	Message string
	SetAt   time.Time
}

// Visible reports whether the status should be rendered.
func (s OperationStatus) Visible() bool {
	return s.Kind != "" && s.Kind != StatusIdle
}
