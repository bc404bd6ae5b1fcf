package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Score struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	ResumeID        uuid.UUID                   `gorm:"type:uuid;not null" json:"resume_id"`
	JobID           uuid.UUID                   `gorm:"type:uuid;not null" json:"job_id"`
	MatchScore      float64                     `gorm:"type:decimal(5,2);not null" json:"match_score"`
	Confidence      float64                     `gorm:"type:decimal(3,2);not null" json:"confidence"`
	KeywordsMatched datatypes.JSONSlice[string] `json:"keywords_matched"`
	Recommendation  string                      `gorm:"type:text" json:"recommendation"`
	CreatedAt       time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relations used by the score history join.
	Resume Resume `gorm:"foreignKey:ResumeID" json:"-"`
	Job    Job    `gorm:"foreignKey:JobID" json:"-"`
}

func (Score) TableName() string {
	return "scores"
}
