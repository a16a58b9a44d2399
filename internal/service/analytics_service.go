package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/lunarhue/formlark/internal/analytics"
	"github.com/lunarhue/formlark/internal/model"
	"github.com/lunarhue/formlark/internal/repository"
	"github.com/rs/zerolog/log"
)

// AnalyticsService loads a form and its responses and runs the aggregation
// engine over them. All shape reconciliation (legacy vs. current) happens
// inside the engine; callers always see the stable payload shape.
type AnalyticsService interface {
	GetFormAnalytics(formID uint, page, limit int) (*analytics.AnalyticsPayload, error)
	GetResponders(formID uint) ([]analytics.Responder, error)
}

type analyticsService struct {
	formRepo     repository.FormRepository
	responseRepo repository.ResponseRepository
}

func NewAnalyticsService(formRepo repository.FormRepository, responseRepo repository.ResponseRepository) AnalyticsService {
	return &analyticsService{formRepo: formRepo, responseRepo: responseRepo}
}

// GetFormAnalytics aggregates the form's responses. When limit > 0 only the
// requested page of responses is aggregated; percentages then describe the
// page, which is self-consistent, not the whole collection.
func (s *analyticsService) GetFormAnalytics(formID uint, page, limit int) (*analytics.AnalyticsPayload, error) {
	form, err := s.formRepo.FindByIDWithQuestions(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("GetFormAnalytics: Form not found")
		return nil, fmt.Errorf("form not found with ID %d: %w", formID, err)
	}

	var responses []model.Response
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		responses, err = s.responseRepo.FindPageByForm(formID, (page-1)*limit, limit)
	} else {
		responses, err = s.responseRepo.FindAllByForm(formID)
	}
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("GetFormAnalytics: Failed to fetch responses")
		return nil, fmt.Errorf("error fetching responses for form %d: %w", formID, err)
	}

	record := toFormRecord(form)
	questions := analytics.Normalize(record)
	payload := analytics.Assemble(record, questions, toResponseRecords(responses))
	return &payload, nil
}

func (s *analyticsService) GetResponders(formID uint) ([]analytics.Responder, error) {
	if _, err := s.formRepo.FindByID(formID); err != nil {
		return nil, fmt.Errorf("form not found with ID %d: %w", formID, err)
	}
	responses, err := s.responseRepo.FindAllByForm(formID)
	if err != nil {
		log.Error().Err(err).Uint("formID", formID).Msg("GetResponders: Failed to fetch responses")
		return nil, fmt.Errorf("error fetching responses for form %d: %w", formID, err)
	}
	return analytics.Responders(toResponseRecords(responses)), nil
}

// toFormRecord maps a stored form to the engine's input shape. Pre-migration
// forms carry their question list as a raw JSON blob; an unparsable blob
// degrades to a form with no questions rather than failing the request.
func toFormRecord(form *model.Form) analytics.FormRecord {
	record := analytics.FormRecord{
		FormID:      strconv.FormatUint(uint64(form.ID), 10),
		Title:       form.Title,
		Description: form.Description,
	}
	for _, q := range form.Questions {
		desc := analytics.QuestionDescriptor{
			QuestionID: q.Key,
			Type:       analytics.QuestionType(q.Type),
			Text:       q.Text,
			Options:    q.Options,
		}
		if q.CorrectAnswer != nil {
			desc.CorrectAnswer = *q.CorrectAnswer
		}
		if q.Points != nil {
			desc.Points = *q.Points
		}
		record.Questions = append(record.Questions, desc)
	}
	if len(record.Questions) == 0 && len(form.LegacyData) > 0 {
		var legacy []map[string]any
		if err := json.Unmarshal(form.LegacyData, &legacy); err != nil {
			log.Warn().Err(err).Uint("formID", form.ID).Msg("Unparsable legacy question data, treating form as empty")
		} else {
			record.Legacy = legacy
		}
	}
	return record
}

func toResponseRecords(responses []model.Response) []analytics.ResponseRecord {
	records := make([]analytics.ResponseRecord, 0, len(responses))
	for _, r := range responses {
		record := analytics.ResponseRecord{
			ResponseID:  strconv.FormatUint(uint64(r.ID), 10),
			SubmittedAt: r.SubmittedAt,
			TotalScore:  r.TotalScore,
		}
		if r.RespondentName != nil {
			record.RespondentName = *r.RespondentName
		}
		if r.RespondentEmail != nil {
			record.RespondentEmail = *r.RespondentEmail
		}
		for _, a := range r.Answers {
			record.Answers = append(record.Answers, analytics.AnswerRecord{
				QuestionID:   a.QuestionKey,
				Value:        a.Value,
				IsCorrect:    a.IsCorrect,
				PointsEarned: a.PointsEarned,
			})
		}
		if len(r.LegacyData) > 0 {
			var legacy map[string]any
			if err := json.Unmarshal(r.LegacyData, &legacy); err != nil {
				log.Warn().Err(err).Uint("responseID", r.ID).Msg("Unparsable legacy answer data, keeping structured answers only")
			} else {
				record.Legacy = legacy
			}
		}
		records = append(records, record)
	}
	return records
}
