package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is one authenticated login context for one user on one originating
// network address. The row carries the last-issued access and refresh token
// payload snapshots; exactly one pair is live at a time, and minting a new
// pair invalidates the previous one.
type Session struct {
	ID               uuid.UUID    // The unique identifier for the session.
	UserID           uuid.UUID    // Owning user.
	IP               string       // Originating IP address.
	IsActive         bool         // False after logout or mass revocation; inactive sessions mint and validate nothing.
	IsClosed         bool         // Terminal: once true, no operation may reset it.
	IsExpired        bool         // Expiry marker cleared by Revive.
	AuthTokenData    TokenPayload // Snapshot of the last-issued access token payload.
	RefreshTokenData TokenPayload // Snapshot of the last-issued refresh token payload.
	CreatedAt        time.Time    // Timestamp of session creation.
	UpdatedAt        time.Time    // Timestamp of the last modification.
}
