package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Resume struct {
	ID         uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string                      `gorm:"type:text;not null" json:"title"`
	Content    string                      `gorm:"type:text;not null" json:"content"`
	Filename   string                      `gorm:"type:text" json:"filename"`
	Skills     datatypes.JSONSlice[string] `json:"skills"`
	Experience datatypes.JSONSlice[string] `json:"experience"`
	Education  datatypes.JSONSlice[string] `json:"education"`
	CreatedAt  time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Resume) TableName() string {
	return "resumes"
}
