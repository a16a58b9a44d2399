package service

import (
	"testing"

	"github.com/lunarhue/formlark/internal/dto"
	"github.com/lunarhue/formlark/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerIsCorrect(t *testing.T) {
	cases := []struct {
		name     string
		question model.Question
		value    string
		want     bool
	}{
		{"exact match", model.Question{Type: "shortAnswer", CorrectAnswer: strPtr("42")}, "42", true},
		{"trimmed match", model.Question{Type: "shortAnswer", CorrectAnswer: strPtr("42")}, "  42 ", true},
		{"wrong answer", model.Question{Type: "shortAnswer", CorrectAnswer: strPtr("42")}, "41", false},
		{"case sensitive", model.Question{Type: "multipleChoice", CorrectAnswer: strPtr("Paris")}, "paris", false},
		{"no answer key", model.Question{Type: "shortAnswer"}, "anything", false},
		{"checkbox order independent", model.Question{Type: "checkbox", CorrectAnswer: strPtr(`["A","B"]`)}, `["B","A"]`, true},
		{"checkbox missing selection", model.Question{Type: "checkbox", CorrectAnswer: strPtr(`["A","B"]`)}, `["A"]`, false},
		{"checkbox extra selection", model.Question{Type: "checkbox", CorrectAnswer: strPtr(`["A"]`)}, `["A","B"]`, false},
		{"checkbox bare value", model.Question{Type: "checkbox", CorrectAnswer: strPtr(`["A"]`)}, "A", true},
		{"checkbox duplicate selections", model.Question{Type: "checkbox", CorrectAnswer: strPtr(`["A","B"]`)}, `["A","A"]`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, answerIsCorrect(tc.question, tc.value))
		})
	}
}

func TestSubmitResponseRejectsUnpublishedForm(t *testing.T) {
	forms := &stubFormRepo{forms: map[uint]*model.Form{
		1: {ID: 1, Published: false, AllowAnonymous: true},
	}}
	svc := NewSubmissionService(forms, &stubResponseRepo{}, nil)

	_, err := svc.SubmitResponse(1, dto.ResponseSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{{QuestionKey: "q1", Value: "x"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not accepting responses")
}

func TestSubmitResponseRejectsAnonymousWhenDisallowed(t *testing.T) {
	forms := &stubFormRepo{forms: map[uint]*model.Form{
		1: {ID: 1, Published: true, AllowAnonymous: false},
	}}
	svc := NewSubmissionService(forms, &stubResponseRepo{}, nil)

	_, err := svc.SubmitResponse(1, dto.ResponseSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{{QuestionKey: "q1", Value: "x"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anonymous")
}

func TestSubmitResponseRequiresEmailWhenCollected(t *testing.T) {
	forms := &stubFormRepo{forms: map[uint]*model.Form{
		1: {ID: 1, Published: true, AllowAnonymous: true, CollectEmail: true},
	}}
	svc := NewSubmissionService(forms, &stubResponseRepo{}, nil)

	_, err := svc.SubmitResponse(1, dto.ResponseSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{{QuestionKey: "q1", Value: "x"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a respondent email")
}

func TestSubmitResponseRejectsAllUnknownKeys(t *testing.T) {
	forms := &stubFormRepo{forms: map[uint]*model.Form{
		1: {ID: 1, Published: true, AllowAnonymous: true, Questions: []model.Question{
			{FormID: 1, Key: "q1", Type: "shortAnswer"},
		}},
	}}
	svc := NewSubmissionService(forms, &stubResponseRepo{}, nil)

	_, err := svc.SubmitResponse(1, dto.ResponseSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{{QuestionKey: "nope", Value: "x"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid answers")
}

func TestBuildResponseQuizScoring(t *testing.T) {
	three, two := 3, 2
	form := &model.Form{
		ID: 1, Published: true, AllowAnonymous: true, IsQuiz: true,
		Questions: []model.Question{
			{Key: "q1", Type: "shortAnswer", CorrectAnswer: strPtr("42"), Points: &three},
			{Key: "q2", Type: "checkbox", CorrectAnswer: strPtr(`["A","B"]`), Points: &two},
			{Key: "q3", Type: "paragraph"},
		},
	}

	response, err := buildResponse(form, dto.ResponseSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{
			{QuestionKey: "q1", Value: "42"},
			{QuestionKey: "q2", Value: `["B","A"]`},
			{QuestionKey: "q3", Value: "free text"},
		},
	})
	require.NoError(t, err)
	require.Len(t, response.Answers, 3)

	require.NotNil(t, response.Answers[0].IsCorrect)
	assert.True(t, *response.Answers[0].IsCorrect)
	require.NotNil(t, response.Answers[0].PointsEarned)
	assert.Equal(t, 3.0, *response.Answers[0].PointsEarned)

	require.NotNil(t, response.Answers[1].IsCorrect)
	assert.True(t, *response.Answers[1].IsCorrect, "checkbox scoring is order independent")
	require.NotNil(t, response.Answers[1].PointsEarned)
	assert.Equal(t, 2.0, *response.Answers[1].PointsEarned)

	// No answer key: the answer is stored but not graded.
	assert.Nil(t, response.Answers[2].IsCorrect)
	assert.Nil(t, response.Answers[2].PointsEarned)

	require.NotNil(t, response.TotalScore)
	assert.Equal(t, 5.0, *response.TotalScore)
}

func TestBuildResponseQuizWrongAnswerEarnsZero(t *testing.T) {
	three := 3
	form := &model.Form{
		ID: 1, Published: true, AllowAnonymous: true, IsQuiz: true,
		Questions: []model.Question{
			{Key: "q1", Type: "shortAnswer", CorrectAnswer: strPtr("42"), Points: &three},
		},
	}

	response, err := buildResponse(form, dto.ResponseSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{{QuestionKey: "q1", Value: "41"}},
	})
	require.NoError(t, err)
	require.Len(t, response.Answers, 1)
	require.NotNil(t, response.Answers[0].IsCorrect)
	assert.False(t, *response.Answers[0].IsCorrect)
	require.NotNil(t, response.Answers[0].PointsEarned)
	assert.Equal(t, 0.0, *response.Answers[0].PointsEarned)
	require.NotNil(t, response.TotalScore)
	assert.Equal(t, 0.0, *response.TotalScore)
}

func TestBuildResponseNonQuizCarriesNoScore(t *testing.T) {
	form := &model.Form{
		ID: 1, Published: true, AllowAnonymous: true,
		Questions: []model.Question{{Key: "q1", Type: "shortAnswer"}},
	}

	response, err := buildResponse(form, dto.ResponseSubmitDTO{
		Answers: []dto.AnswerSubmitDTO{{QuestionKey: "q1", Value: "x"}},
	})
	require.NoError(t, err)
	assert.Nil(t, response.TotalScore)
	assert.Nil(t, response.Answers[0].IsCorrect)
}

func TestListResponsesClampsPagination(t *testing.T) {
	var stored []model.Response
	for i := 0; i < 3; i++ {
		stored = append(stored, model.Response{ID: uint(i + 1), FormID: 7})
	}
	repo := &stubResponseRepo{responses: stored}
	svc := NewSubmissionService(&stubFormRepo{}, repo, nil)

	page, err := svc.ListResponses(7, -4, 9999)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, int64(3), page.TotalCount)
	assert.Len(t, page.Responses, 3)
}

func TestDeleteResponseAsOwner(t *testing.T) {
	repo := &stubResponseRepo{responses: []model.Response{{ID: 9, FormID: 1}}}
	svc := NewSubmissionService(&stubFormRepo{}, repo, nil)

	require.NoError(t, svc.DeleteResponse(9, nil))
	assert.Equal(t, []uint{9}, repo.deleted)
}

func TestDeleteResponseAsRespondent(t *testing.T) {
	forms := &stubFormRepo{forms: map[uint]*model.Form{
		1: {ID: 1, AllowResponseDeletion: true},
		2: {ID: 2, AllowResponseDeletion: false},
	}}
	repo := &stubResponseRepo{responses: []model.Response{
		{ID: 10, FormID: 1, RespondentUserID: uintPtr(5)},
		{ID: 11, FormID: 1, RespondentUserID: uintPtr(6)},
		{ID: 12, FormID: 1},
		{ID: 13, FormID: 2, RespondentUserID: uintPtr(5)},
	}}
	svc := NewSubmissionService(forms, repo, nil)

	require.NoError(t, svc.DeleteResponse(10, uintPtr(5)))

	err := svc.DeleteResponse(11, uintPtr(5))
	require.Error(t, err, "only the original respondent may retract")

	err = svc.DeleteResponse(12, uintPtr(5))
	require.Error(t, err, "anonymous responses have no respondent to match")

	err = svc.DeleteResponse(13, uintPtr(5))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not allow respondents to delete")

	assert.Equal(t, []uint{10}, repo.deleted)
}

func TestDeleteResponseNotFound(t *testing.T) {
	svc := NewSubmissionService(&stubFormRepo{}, &stubResponseRepo{}, nil)
	assert.Error(t, svc.DeleteResponse(404, nil))
}
