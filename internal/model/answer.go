package model

import (
	"time"

	"gorm.io/gorm"
)

type Answer struct {
	ID         uint `gorm:"primarykey" json:"id"`
	ResponseID uint `json:"response_id" gorm:"not null;index"`
	// QuestionKey references Question.Key on the owning form. The reference
	// may dangle once the form evolves; matching treats that as omission.
	QuestionKey string `json:"question_key" gorm:"not null;index"`
	// Value is a single string, a numeric string (linearScale), or a
	// JSON-encoded string array (checkbox).
	Value        string         `json:"value" gorm:"type:text;not null"`
	IsCorrect    *bool          `json:"is_correct,omitempty"`    // quiz forms only
	PointsEarned *float64       `json:"points_earned,omitempty"` // quiz forms only
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
