// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated principal resolved from a session.
type Identity struct {
	ID    uuid.UUID // Opaque user id assigned by the auth provider at signup.
	Email string    // The email the identity signed up with.
}

// OnboardingStatus tracks how far a user got through the onboarding wizard.
type OnboardingStatus string

const (
	OnboardingNotStarted OnboardingStatus = "not_started"
	OnboardingInProgress OnboardingStatus = "in_progress"
	OnboardingCompleted  OnboardingStatus = "completed"
)

// IsValid checks if the OnboardingStatus is a valid value.
func (s OnboardingStatus) IsValid() bool {
	switch s {
	case OnboardingNotStarted, OnboardingInProgress, OnboardingCompleted:
		return true
	default:
		return false
	}
}

// Track is the marketplace segment a user prefers to browse.
type Track string

const (
	TrackAll         Track = "all"
	TrackOperational Track = "operational"
	TrackDigital     Track = "digital"
)

// String returns the string representation of the Track.
func (t Track) String() string {
	return string(t)
}

// IsValid checks if the Track is a valid value.
func (t Track) IsValid() bool {
	switch t {
	case TrackAll, TrackOperational, TrackDigital:
		return true
	default:
		return false
	}
}

// ParseTrack converts a string to a Track, falling back to TrackAll for unknown input.
func ParseTrack(s string) Track {
	track := Track(s)
	if !track.IsValid() {
		return TrackAll
	}

	return track
}

// Profile is the stored record describing a user's role(s), onboarding state and plan tier.
// Optional fields are pointers; everything else is guaranteed to hold a valid value once the
// profile has passed the repository boundary.
type Profile struct {
	UserID           uuid.UUID        // Key, equal to the Identity ID.
	Role             *Role            // Primary role. Nil when never chosen.
	Roles            Roles            // All roles the user picked during onboarding.
	OnboardingStatus OnboardingStatus // Progress through the onboarding wizard.
	PreferredTrack   *Track           // Nil until onboarding records a preference.
	Tier             Tier             // Current subscription tier.
	DisplayName      *string
	CompanyName      *string
	IsVerified       bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PrimaryRole returns the primary role, falling back to the first listed role and finally to buyer.
func (p *Profile) PrimaryRole() Role {
	if p.Role != nil {
		return *p.Role
	}
	if first, ok := p.Roles.First(); ok {
		return first
	}

	return RoleBuyer
}

// HasRole reports whether the role is the primary role or one of the listed roles.
func (p *Profile) HasRole(role Role) bool {
	if p.Role != nil && *p.Role == role {
		return true
	}

	return p.Roles.Contains(role)
}

// IsOnboarded reports whether onboarding is complete: the status says so, at least one role was
// chosen and a preferred track is recorded.
func (p *Profile) IsOnboarded() bool {
	return p.OnboardingStatus == OnboardingCompleted &&
		len(p.Roles) > 0 &&
		p.PreferredTrack != nil
}

// RoleGrant is a secondary role record, granted by an operator rather than chosen by the user.
type RoleGrant struct {
	UserID    uuid.UUID
	Role      Role
	GrantedBy *uuid.UUID
	GrantedAt time.Time
}
