// Package profile is the session/profile provider: account sign-up and
// sign-in, JWT sessions, the viewer profile (sector and admin flag) that
// every pricing-aware component depends on, and change notifications for
// session events.
package profile

import (
	"time"

	"github.com/google/uuid"
)

// Sector classifies a viewer and determines which price field applies.
// The stored values are the ones the store's database has always used.
type Sector string

const (
	SectorRetail   Sector = "varejo"
	SectorReseller Sector = "revenda"
)

// Valid reports whether s is a known sector value.
func (s Sector) Valid() bool {
	return s == SectorRetail || s == SectorReseller
}

// User is an account that can sign in.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile is the viewer-facing identity record. Anonymous viewers have no
// profile and are treated as retail.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Sector    Sector    `json:"setor"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventKind identifies a session change.
type EventKind string

const (
	EventSignedIn       EventKind = "signed_in"
	EventTokenRefreshed EventKind = "token_refreshed"
	EventSignedOut      EventKind = "signed_out"
)

// Event is broadcast to subscribers whenever the session identity changes.
type Event struct {
	Kind   EventKind
	UserID uuid.UUID
}
