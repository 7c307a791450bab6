package model

import (
	"time"

	"linkvault/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. The two snapshot columns carry
// the last-issued access and refresh token payloads as JSONB.
type SessionModel struct {
	ID               uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID           `gorm:"type:uuid;not null;index"`
	IP               string              `gorm:"type:varchar(45);not null"`
	IsActive         bool                `gorm:"not null;default:true"`
	IsClosed         bool                `gorm:"not null;default:false"`
	IsExpired        bool                `gorm:"not null;default:false"`
	AuthTokenData    entity.TokenPayload `gorm:"type:jsonb;serializer:json"`
	RefreshTokenData entity.TokenPayload `gorm:"type:jsonb;serializer:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
