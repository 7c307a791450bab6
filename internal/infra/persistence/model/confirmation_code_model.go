package model

import (
	"time"

	"github.com/google/uuid"
)

// ConfirmationCodeModel mirrors the 'confirmation_codes' table.
type ConfirmationCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ExpiredAt time.Time `gorm:"not null;index"`
	Used      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ConfirmationCodeModel) TableName() string {
	return "confirmation_codes"
}
