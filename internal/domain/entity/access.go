// Package entity contains the core business objects of the project.
package entity

// GuardState is the outcome of a section guard.
type GuardState string

const (
	GuardDenied  GuardState = "DENIED"
	GuardGranted GuardState = "GRANTED"
)

// GuardDecision is the single-shot result of guarding a section for a role.
type GuardDecision struct {
	State GuardState
	Role  Role
}

// Granted reports whether access was granted.
func (d GuardDecision) Granted() bool {
	return d.State == GuardGranted
}
