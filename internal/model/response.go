package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Response struct {
	ID               uint     `gorm:"primarykey" json:"id"`
	FormID           uint     `json:"form_id" gorm:"not null;index"`
	Form             Form     `json:"form,omitempty" gorm:"foreignKey:FormID"`
	RespondentUserID *uint    `json:"respondent_user_id,omitempty" gorm:"index"`
	RespondentName   *string  `json:"respondent_name,omitempty"`
	RespondentEmail  *string  `json:"respondent_email,omitempty"`
	SubmittedAt      time.Time `json:"submitted_at" gorm:"autoCreateTime"`
	TotalScore       *float64 `json:"total_score,omitempty"` // quiz forms only
	Answers          []Answer `json:"answers,omitempty" gorm:"foreignKey:ResponseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	// LegacyData holds the pre-migration keyed answer mapping
	// (questionKey -> value) for responses submitted before answers became
	// first-class rows. New submissions always use Answers.
	LegacyData json.RawMessage `json:"legacy_data,omitempty" gorm:"type:jsonb"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}
