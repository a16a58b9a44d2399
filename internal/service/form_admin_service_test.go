package service

import (
	"testing"

	"github.com/lunarhue/formlark/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildFormAllowAnonymousExplicitFalseIsKept(t *testing.T) {
	form, err := buildForm(dto.FormCreateDTO{
		Title:          "Closed survey",
		AllowAnonymous: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, form.AllowAnonymous, "an explicit false must survive to the stored form")
}

func TestBuildFormAllowAnonymousDefaultsToTrue(t *testing.T) {
	form, err := buildForm(dto.FormCreateDTO{Title: "Open survey"})
	require.NoError(t, err)
	assert.True(t, form.AllowAnonymous)

	form, err = buildForm(dto.FormCreateDTO{Title: "Explicitly open", AllowAnonymous: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, form.AllowAnonymous)
}

func TestBuildFormQuestionValidation(t *testing.T) {
	cases := []struct {
		name      string
		req       dto.FormCreateDTO
		wantError string
	}{
		{
			"duplicate key",
			dto.FormCreateDTO{Title: "t", Questions: []dto.QuestionCreateDTO{
				{Key: "q1", Text: "a", Type: "shortAnswer"},
				{Key: "q1", Text: "b", Type: "paragraph"},
			}},
			"duplicate question key",
		},
		{
			"unknown type",
			dto.FormCreateDTO{Title: "t", Questions: []dto.QuestionCreateDTO{
				{Key: "q1", Text: "a", Type: "grid"},
			}},
			"unknown question type",
		},
		{
			"choice without options",
			dto.FormCreateDTO{Title: "t", Questions: []dto.QuestionCreateDTO{
				{Key: "q1", Text: "a", Type: "multipleChoice"},
			}},
			"requires a non-empty options list",
		},
		{
			"quiz fields on non-quiz",
			dto.FormCreateDTO{Title: "t", Questions: []dto.QuestionCreateDTO{
				{Key: "q1", Text: "a", Type: "shortAnswer", CorrectAnswer: strPtr("x")},
			}},
			"form is not a quiz",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := buildForm(tc.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantError)
		})
	}
}

func TestBuildFormAssignsQuestionOrder(t *testing.T) {
	form, err := buildForm(dto.FormCreateDTO{
		Title: "Ordered",
		Questions: []dto.QuestionCreateDTO{
			{Key: "first", Text: "a", Type: "shortAnswer"},
			{Key: "second", Text: "b", Type: "paragraph"},
		},
	})
	require.NoError(t, err)
	require.Len(t, form.Questions, 2)
	assert.Equal(t, 1, form.Questions[0].OrderInForm)
	assert.Equal(t, 2, form.Questions[1].OrderInForm)
}
