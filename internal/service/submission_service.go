package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lunarhue/formlark/internal/analytics"
	"github.com/lunarhue/formlark/internal/dto"
	"github.com/lunarhue/formlark/internal/model"
	"github.com/lunarhue/formlark/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService defines the interface for collecting and managing
// form responses.
type SubmissionService interface {
	SubmitResponse(formID uint, req dto.ResponseSubmitDTO) (*dto.ResponseDetailDTO, error)
	GetResponse(responseID uint) (*dto.ResponseDetailDTO, error)
	ListResponses(formID uint, page, limit int) (*dto.ResponsePageDTO, error)
	DeleteResponse(responseID uint, asRespondent *uint) error
}

type submissionService struct {
	formRepo     repository.FormRepository
	responseRepo repository.ResponseRepository
	db           *gorm.DB
}

// NewSubmissionService creates a new instance of SubmissionService.
func NewSubmissionService(
	formRepo repository.FormRepository,
	responseRepo repository.ResponseRepository,
	db *gorm.DB,
) SubmissionService {
	return &submissionService{
		formRepo:     formRepo,
		responseRepo: responseRepo,
		db:           db,
	}
}

// SubmitResponse validates and stores one whole response. A response is
// created exactly once; edits are not supported, deletion replaces nothing.
func (s *submissionService) SubmitResponse(formID uint, req dto.ResponseSubmitDTO) (*dto.ResponseDetailDTO, error) {
	form, err := s.formRepo.FindByIDWithQuestions(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("SubmitResponse: Form not found")
		return nil, fmt.Errorf("form not found with ID %d: %w", formID, err)
	}

	response, err := buildResponse(form, req)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// GORM creates the associated answers alongside the response row.
		if err := tx.Create(response).Error; err != nil {
			return fmt.Errorf("failed to create response record: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("SubmitResponse: Transaction failed")
		return nil, err
	}

	var resp dto.ResponseDetailDTO
	if err := copier.Copy(&resp, response); err != nil {
		log.Error().Err(err).Msg("Failed to copy Response model to ResponseDetailDTO")
		return nil, fmt.Errorf("error preparing submission response: %w", err)
	}
	return &resp, nil
}

// buildResponse validates a submission against the form's settings and maps
// it to the persistence model. Quiz forms are scored here: per-answer
// correctness and points, accumulated into the response's total score.
func buildResponse(form *model.Form, req dto.ResponseSubmitDTO) (*model.Response, error) {
	if !form.Published {
		return nil, fmt.Errorf("form %d is not accepting responses", form.ID)
	}
	if !form.AllowAnonymous && req.RespondentUserID == nil {
		return nil, fmt.Errorf("form %d does not accept anonymous responses", form.ID)
	}
	if form.CollectEmail && (req.RespondentEmail == nil || *req.RespondentEmail == "") {
		return nil, fmt.Errorf("form %d requires a respondent email", form.ID)
	}

	questionMap := make(map[string]model.Question)
	for _, q := range form.Questions {
		questionMap[q.Key] = q
	}

	response := model.Response{
		FormID:           form.ID,
		RespondentUserID: req.RespondentUserID,
		RespondentName:   req.RespondentName,
		RespondentEmail:  req.RespondentEmail,
		SubmittedAt:      time.Now(),
	}

	totalScore := 0.0
	for _, answerDto := range req.Answers {
		question, exists := questionMap[answerDto.QuestionKey]
		if !exists {
			log.Warn().Str("questionKey", answerDto.QuestionKey).Uint("formID", form.ID).
				Msg("SubmitResponse: Answer references a question not on this form, skipping.")
			continue
		}
		answer := model.Answer{
			QuestionKey: question.Key,
			Value:       answerDto.Value,
		}
		if form.IsQuiz && question.CorrectAnswer != nil {
			correct := answerIsCorrect(question, answerDto.Value)
			answer.IsCorrect = &correct
			earned := 0.0
			if correct && question.Points != nil {
				earned = float64(*question.Points)
			}
			answer.PointsEarned = &earned
			totalScore += earned
		}
		response.Answers = append(response.Answers, answer)
	}

	if len(response.Answers) == 0 {
		return nil, fmt.Errorf("no valid answers provided for the questions in form %d", form.ID)
	}
	if form.IsQuiz {
		response.TotalScore = &totalScore
	}
	return &response, nil
}

func (s *submissionService) GetResponse(responseID uint) (*dto.ResponseDetailDTO, error) {
	response, err := s.responseRepo.FindByIDWithAnswers(responseID)
	if err != nil {
		log.Error().Err(err).Uint("responseID", responseID).Msg("Failed to get response from repository")
		return nil, fmt.Errorf("response not found with ID %d: %w", responseID, err)
	}

	var resp dto.ResponseDetailDTO
	if err := copier.Copy(&resp, response); err != nil {
		log.Error().Err(err).Msg("Failed to copy Response model to ResponseDetailDTO")
		return nil, fmt.Errorf("error preparing response details: %w", err)
	}
	return &resp, nil
}

func (s *submissionService) ListResponses(formID uint, page, limit int) (*dto.ResponsePageDTO, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	total, err := s.responseRepo.CountByForm(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Failed to count responses")
		return nil, fmt.Errorf("error counting responses for form %d: %w", formID, err)
	}
	responses, err := s.responseRepo.FindPageByForm(formID, (page-1)*limit, limit)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Failed to fetch response page")
		return nil, fmt.Errorf("error fetching responses for form %d: %w", formID, err)
	}

	pageDto := dto.ResponsePageDTO{Page: page, Limit: limit, TotalCount: total, Responses: []dto.ResponseDetailDTO{}}
	for i := range responses {
		var detail dto.ResponseDetailDTO
		if err := copier.Copy(&detail, &responses[i]); err != nil {
			log.Error().Err(err).Msg("Failed to copy Response model to ResponseDetailDTO")
			return nil, fmt.Errorf("error preparing response list: %w", err)
		}
		pageDto.Responses = append(pageDto.Responses, detail)
	}
	return &pageDto, nil
}

// DeleteResponse removes a whole response. Called without asRespondent it is
// an owner action; with asRespondent it is the original respondent retracting
// their submission, which the form's settings must allow.
func (s *submissionService) DeleteResponse(responseID uint, asRespondent *uint) error {
	response, err := s.responseRepo.FindByID(responseID)
	if err != nil {
		return fmt.Errorf("response not found with ID %d: %w", responseID, err)
	}
	if asRespondent != nil {
		form, err := s.formRepo.FindByID(response.FormID)
		if err != nil {
			return fmt.Errorf("form not found with ID %d: %w", response.FormID, err)
		}
		if !form.AllowResponseDeletion {
			return fmt.Errorf("form %d does not allow respondents to delete responses", form.ID)
		}
		if response.RespondentUserID == nil || *response.RespondentUserID != *asRespondent {
			return fmt.Errorf("response %d was not submitted by user %d", responseID, *asRespondent)
		}
	}
	if err := s.responseRepo.Delete(responseID); err != nil {
		log.Error().Err(err).Uint("responseID", responseID).Msg("Failed to delete response")
		return fmt.Errorf("failed to delete response %d: %w", responseID, err)
	}
	return nil
}

// answerIsCorrect compares a submitted value against the question's answer
// key. Checkbox answers compare as sets over the decoded element lists;
// everything else compares as trimmed strings.
func answerIsCorrect(question model.Question, value string) bool {
	if question.CorrectAnswer == nil {
		return false
	}
	if question.Type == string(analytics.TypeCheckbox) {
		want := analytics.DecodeValues(*question.CorrectAnswer)
		got := analytics.DecodeValues(value)
		if len(want) != len(got) {
			return false
		}
		wantSet := make(map[string]int, len(want))
		for _, v := range want {
			wantSet[v]++
		}
		for _, v := range got {
			if wantSet[v] == 0 {
				return false
			}
			wantSet[v]--
		}
		return true
	}
	return strings.TrimSpace(value) == strings.TrimSpace(*question.CorrectAnswer)
}
