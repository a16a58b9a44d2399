package dto

import "time"

// AnswerSubmitDTO is one answer within a response submission.
type AnswerSubmitDTO struct {
	QuestionKey string `json:"question_key" binding:"required"`
	Value       string `json:"value" binding:"required"`
}

// ResponseSubmitDTO is the request DTO for submitting a whole response.
type ResponseSubmitDTO struct {
	RespondentUserID *uint             `json:"respondent_user_id"` // Temporary, for non-auth respondent identification
	RespondentName   *string           `json:"respondent_name"`
	RespondentEmail  *string           `json:"respondent_email" binding:"omitempty,email"`
	Answers          []AnswerSubmitDTO `json:"answers" binding:"required,dive"`
}

// AnswerResponseDTO is used for displaying a stored answer.
type AnswerResponseDTO struct {
	ID           uint     `json:"id"`
	QuestionKey  string   `json:"question_key"`
	Value        string   `json:"value"`
	IsCorrect    *bool    `json:"is_correct,omitempty"`
	PointsEarned *float64 `json:"points_earned,omitempty"`
}

// ResponseDetailDTO is for displaying a full stored response.
type ResponseDetailDTO struct {
	ID               uint                `json:"id"`
	FormID           uint                `json:"form_id"`
	RespondentUserID *uint               `json:"respondent_user_id,omitempty"`
	RespondentName   *string             `json:"respondent_name,omitempty"`
	RespondentEmail  *string             `json:"respondent_email,omitempty"`
	SubmittedAt      time.Time           `json:"submitted_at"`
	TotalScore       *float64            `json:"total_score,omitempty"`
	Answers          []AnswerResponseDTO `json:"answers,omitempty"`
}

// ResponsePageDTO is a paginated slice of a form's responses.
type ResponsePageDTO struct {
	Responses  []ResponseDetailDTO `json:"responses"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalCount int64               `json:"total_count"`
}

type ErrorResponse struct {
	Message string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
