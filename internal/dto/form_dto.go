package dto

import "time"

// QuestionCreateDTO is used within FormCreateDTO when an owner builds a form.
type QuestionCreateDTO struct {
	Key           string   `json:"key" binding:"required"`
	Text          string   `json:"text" binding:"required"`
	Type          string   `json:"type" binding:"required,oneof=shortAnswer paragraph multipleChoice checkbox dropdown fileUpload linearScale"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer *string  `json:"correct_answer,omitempty"`
	Points        *int     `json:"points,omitempty" binding:"omitempty,min=0"`
}

// FormCreateDTO is the admin request for creating a form with its questions.
type FormCreateDTO struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description,omitempty"`
	IsQuiz       bool   `json:"is_quiz"`
	CollectEmail bool   `json:"collect_email"`
	// Pointer so an omitted field (defaults to allowed) is distinguishable
	// from an explicit false.
	AllowAnonymous        *bool               `json:"allow_anonymous"`
	AllowResponseDeletion bool                `json:"allow_response_deletion"`
	Published             bool                `json:"published"`
	Questions             []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// QuestionResponseDTO is used for displaying question details.
type QuestionResponseDTO struct {
	ID            uint     `json:"id"`
	FormID        uint     `json:"form_id"`
	Key           string   `json:"key"`
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	OrderInForm   int      `json:"order_in_form"`
	CorrectAnswer *string  `json:"correct_answer,omitempty"`
	Points        *int     `json:"points,omitempty"`
}

// FormResponseDTO is used for displaying full form details.
type FormResponseDTO struct {
	ID                    uint                  `json:"id"`
	Title                 string                `json:"title"`
	Description           string                `json:"description,omitempty"`
	IsQuiz                bool                  `json:"is_quiz"`
	CollectEmail          bool                  `json:"collect_email"`
	AllowAnonymous        bool                  `json:"allow_anonymous"`
	AllowResponseDeletion bool                  `json:"allow_response_deletion"`
	Published             bool                  `json:"published"`
	Questions             []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt             time.Time             `json:"created_at"`
}

// FormSummaryDTO is used for listing forms an owner manages.
type FormSummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	IsQuiz        bool      `json:"is_quiz"`
	Published     bool      `json:"published"`
	QuestionCount int       `json:"question_count"`
	ResponseCount int       `json:"response_count"`
	CreatedAt     time.Time `json:"created_at"`
}
