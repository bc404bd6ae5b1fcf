package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record kept for verified token subjects. Account
// management (signup, password flows) lives in the identity provider, not here.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"type:text" json:"email"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
