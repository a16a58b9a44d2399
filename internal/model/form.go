package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type Form struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description,omitempty"`
	IsQuiz       bool   `json:"is_quiz" gorm:"default:false"`
	CollectEmail bool   `json:"collect_email" gorm:"default:false"`
	// AllowAnonymous carries no column default: with one, GORM omits an
	// explicit false from the INSERT and the setting becomes unstorable.
	// The application default lives in buildForm.
	AllowAnonymous        bool       `json:"allow_anonymous"`
	AllowResponseDeletion bool       `json:"allow_response_deletion" gorm:"default:false"`
	Published             bool       `json:"published" gorm:"default:false"`
	Questions             []Question `json:"questions,omitempty" gorm:"foreignKey:FormID"`
	// LegacyData carries the pre-migration question array for forms created
	// before the typed questions table existed. Either Questions or
	// LegacyData is populated, never both.
	LegacyData json.RawMessage `json:"legacy_data,omitempty" gorm:"type:jsonb"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}
