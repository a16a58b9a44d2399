package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lunarhue/formlark/internal/analytics"
	"github.com/lunarhue/formlark/internal/dto"
	"github.com/lunarhue/formlark/internal/model"
	"github.com/lunarhue/formlark/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type FormAdminService interface {
	CreateForm(req dto.FormCreateDTO) (*dto.FormResponseDTO, error)
	GetForm(formID uint) (*dto.FormResponseDTO, error)
	ListForms() ([]dto.FormSummaryDTO, error)
	DeleteForm(formID uint) error
	DeleteQuestion(formID uint, key string) error
}

type formAdminService struct {
	formRepo     repository.FormRepository
	questionRepo repository.QuestionRepository
	db           *gorm.DB
}

func NewFormAdminService(formRepo repository.FormRepository, questionRepo repository.QuestionRepository, db *gorm.DB) FormAdminService {
	return &formAdminService{formRepo: formRepo, questionRepo: questionRepo, db: db}
}

func (s *formAdminService) CreateForm(req dto.FormCreateDTO) (*dto.FormResponseDTO, error) {
	formModel, err := buildForm(req)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Create cascades to the question rows.
		return tx.Create(formModel).Error
	})
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateForm: Transaction failed")
		return nil, fmt.Errorf("failed to create form: %w", err)
	}

	var resp dto.FormResponseDTO
	if err := copier.Copy(&resp, formModel); err != nil {
		log.Error().Err(err).Msg("Failed to copy Form model to FormResponseDTO")
		return nil, fmt.Errorf("error preparing form response: %w", err)
	}
	return &resp, nil
}

// buildForm validates a creation request and maps it to the persistence model.
// Anonymous submission defaults to allowed when the request leaves the field
// unset; an explicit false is preserved as sent.
func buildForm(req dto.FormCreateDTO) (*model.Form, error) {
	keySeen := make(map[string]bool)
	var questionModels []model.Question

	for i, qDto := range req.Questions {
		if keySeen[qDto.Key] {
			return nil, fmt.Errorf("duplicate question key %q", qDto.Key)
		}
		keySeen[qDto.Key] = true

		qType := analytics.QuestionType(qDto.Type)
		if !qType.Valid() {
			return nil, fmt.Errorf("unknown question type %q for question %q", qDto.Type, qDto.Key)
		}
		if qType.HasOptions() && len(qDto.Options) == 0 {
			return nil, fmt.Errorf("question %q of type %s requires a non-empty options list", qDto.Key, qDto.Type)
		}
		if !req.IsQuiz && (qDto.CorrectAnswer != nil || qDto.Points != nil) {
			return nil, fmt.Errorf("question %q carries quiz fields but the form is not a quiz", qDto.Key)
		}

		var questionModel model.Question
		if err := copier.Copy(&questionModel, &qDto); err != nil {
			return nil, fmt.Errorf("error preparing question %q: %w", qDto.Key, err)
		}
		questionModel.OrderInForm = i + 1
		questionModels = append(questionModels, questionModel)
	}

	allowAnonymous := true
	if req.AllowAnonymous != nil {
		allowAnonymous = *req.AllowAnonymous
	}

	return &model.Form{
		Title:                 req.Title,
		Description:           req.Description,
		IsQuiz:                req.IsQuiz,
		CollectEmail:          req.CollectEmail,
		AllowAnonymous:        allowAnonymous,
		AllowResponseDeletion: req.AllowResponseDeletion,
		Published:             req.Published,
		Questions:             questionModels,
	}, nil
}

func (s *formAdminService) GetForm(formID uint) (*dto.FormResponseDTO, error) {
	form, err := s.formRepo.FindByIDWithQuestions(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Failed to get form from repository")
		return nil, fmt.Errorf("form not found with ID %d: %w", formID, err)
	}

	var resp dto.FormResponseDTO
	if err := copier.Copy(&resp, form); err != nil {
		log.Error().Err(err).Msg("Failed to copy Form model to FormResponseDTO")
		return nil, fmt.Errorf("error preparing form response: %w", err)
	}
	return &resp, nil
}

func (s *formAdminService) ListForms() ([]dto.FormSummaryDTO, error) {
	formsWithCounts, err := s.formRepo.FindAllWithCounts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list forms with counts from repository")
		return nil, fmt.Errorf("error fetching forms: %w", err)
	}

	var dtos []dto.FormSummaryDTO
	for _, fwc := range formsWithCounts {
		dtos = append(dtos, dto.FormSummaryDTO{
			ID:            fwc.Form.ID,
			Title:         fwc.Form.Title,
			Description:   fwc.Form.Description,
			IsQuiz:        fwc.Form.IsQuiz,
			Published:     fwc.Form.Published,
			QuestionCount: fwc.QuestionCount,
			ResponseCount: fwc.ResponseCount,
			CreatedAt:     fwc.Form.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *formAdminService) DeleteForm(formID uint) error {
	if _, err := s.formRepo.FindByID(formID); err != nil {
		return fmt.Errorf("form not found with ID %d: %w", formID, err)
	}
	if err := s.formRepo.Delete(formID); err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("Failed to delete form")
		return fmt.Errorf("failed to delete form %d: %w", formID, err)
	}
	return nil
}

// DeleteQuestion removes one question from a form. Stored answers keyed by
// the question survive; analytics simply stops reporting the question.
func (s *formAdminService) DeleteQuestion(formID uint, key string) error {
	question, err := s.questionRepo.FindByFormIDAndKey(formID, key)
	if err != nil {
		return fmt.Errorf("question %q not found on form %d: %w", key, formID, err)
	}
	if err := s.questionRepo.Delete(question.ID); err != nil {
		log.Error().Err(err).Uint("formID", formID).Str("key", key).Msg("Failed to delete question")
		return fmt.Errorf("failed to delete question %q: %w", key, err)
	}
	log.Info().Uint("formID", formID).Str("key", key).Msg("Question deleted; existing answers become orphans")
	return nil
}
