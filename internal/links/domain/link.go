// Package domain defines the shareable link entities and the outcomes of
// resolving a bearer token.
package domain

import (
	"time"

	"github.com/google/uuid"

	trabalhosDomain "github.com/estudiomov/linkgate/internal/trabalhos/domain"
)

// LinkType enumerates what a link token points at.
type LinkType string

const (
	// LinkTypeTrabalho targets a delivered job whose final files can be
	// downloaded through the gate.
	LinkTypeTrabalho LinkType = "trabalho"
	// LinkTypeBriefing targets an external URL the viewer redirects to.
	LinkTypeBriefing LinkType = "briefing"
)

// Valid reports whether the persisted type is a recognized value.
func (t LinkType) Valid() bool {
	return t == LinkTypeTrabalho || t == LinkTypeBriefing
}

// Link is a row of the unique_links table: an opaque bearer token granting
// time-limited access to one target entity. The token value is the sole
// lookup key; rows are never mutated, only created, deleted, or left to
// expire passively.
type Link struct {
	Token    string
	Tipo     LinkType
	AlvoID   uuid.UUID
	URL      string
	CriadoEm time.Time
	ExpiraEm *time.Time
}

// Expired reports whether the link is past its expiration at the given
// instant. A nil ExpiraEm means the link never expires.
func (l *Link) Expired(now time.Time) bool {
	return l.ExpiraEm != nil && l.ExpiraEm.Before(now)
}

// Resolution is the outcome of resolving a valid token: either a redirect
// instruction (briefing) or the public-safe projection of a trabalho.
type Resolution struct {
	Tipo        LinkType
	RedirectURL string
	Trabalho    *trabalhosDomain.Projection
}

// IssuedLink is what the issuer hands back to the operator after a
// successful regeneration.
type IssuedLink struct {
	Token    string
	URL      string
	CriadoEm time.Time
	ExpiraEm time.Time
}
