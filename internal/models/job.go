package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Job struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string                      `gorm:"type:text;not null" json:"title"`
	Description  string                      `gorm:"type:text;not null" json:"description"`
	Company      string                      `gorm:"type:text;not null" json:"company"`
	Location     string                      `gorm:"type:text;default:'Remote'" json:"location"`
	Salary       string                      `gorm:"type:text;default:'Competitive'" json:"salary"`
	Requirements datatypes.JSONSlice[string] `json:"requirements"`
	Skills       datatypes.JSONSlice[string] `json:"skills"`
	CreatedAt    time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}
