package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID     uint `gorm:"primarykey" json:"id"`
	FormID uint `json:"form_id" gorm:"not null;uniqueIndex:idx_form_question_key"`
	// Key is the stable question identifier answers reference. It survives
	// form edits, so stored answers stay matchable after questions are
	// reordered or retyped.
	Key           string         `json:"key" gorm:"not null;uniqueIndex:idx_form_question_key"`
	Text          string         `json:"text" gorm:"type:text;not null"`
	Type          string         `json:"type" gorm:"not null"` // shortAnswer, paragraph, multipleChoice, checkbox, dropdown, fileUpload, linearScale
	Options       []string       `json:"options,omitempty" gorm:"serializer:json"`
	OrderInForm   int            `json:"order_in_form" gorm:"not null"`
	CorrectAnswer *string        `json:"correct_answer,omitempty"` // quiz forms only
	Points        *int           `json:"points,omitempty"`         // quiz forms only
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
