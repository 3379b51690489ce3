// Package session keeps authenticated browser sessions server-side.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned for unknown or expired session ids
var ErrSessionNotFound = errors.New("session not found")

// Role is the role bound to a session
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAlumni
}

// Session is the immutable identity of one logged-in browser.
type Session struct {
	id       string
	personID int64
	role     Role
}

// New builds a session value
func New(id string, personID int64, role Role) Session {
	return Session{id: id, personID: personID, role: role}
}

// ID returns the opaque session id
func (s Session) ID() string { return s.id }

// PersonID returns the id of the logged-in person
func (s Session) PersonID() int64 { return s.personID }

// Role returns the role computed at login
func (s Session) Role() Role { return s.role }

// IsAlumni reports whether the session belongs to an alumni
func (s Session) IsAlumni() bool { return s.role == RoleAlumni }

// Store persists sessions outside the process
type Store interface {
	Create(ctx context.Context, personID int64, role Role) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
	TTL() time.Duration
}
