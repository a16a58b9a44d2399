package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCanonicalPassthrough(t *testing.T) {
	questions := []QuestionDescriptor{
		{QuestionID: "q1", Type: TypeShortAnswer, Text: "Name?"},
		{QuestionID: "q2", Type: TypeMultipleChoice, Text: "Pick one", Options: []string{"A", "B"}},
	}
	form := FormRecord{FormID: "1", Questions: questions}

	got := Normalize(form)
	require.Equal(t, questions, got)

	// Normalizing an already-canonical list is a fixed point.
	again := Normalize(FormRecord{FormID: "1", Questions: got})
	assert.Equal(t, got, again)
}

func TestNormalizeLegacyElements(t *testing.T) {
	form := FormRecord{
		FormID: "2",
		Legacy: []map[string]any{
			{"id": "intro", "question": "Welcome question", "option": "shortAnswer"},
			{"data": map[string]any{"question": "Favorite color", "option": "multipleChoice", "options": []any{"Red", "Blue"}}},
			{"text": "Fallback text path", "type": "paragraph"},
		},
	}

	got := Normalize(form)
	require.Len(t, got, 3)

	assert.Equal(t, "intro", got[0].QuestionID)
	assert.Equal(t, "Welcome question", got[0].Text)
	assert.Equal(t, TypeShortAnswer, got[0].Type)

	// No id field: synthetic positional identifier.
	assert.Equal(t, "legacy_1", got[1].QuestionID)
	assert.Equal(t, "Favorite color", got[1].Text)
	assert.Equal(t, TypeMultipleChoice, got[1].Type)
	assert.Equal(t, []string{"Red", "Blue"}, got[1].Options)

	assert.Equal(t, "legacy_2", got[2].QuestionID)
	assert.Equal(t, "Fallback text path", got[2].Text)
	assert.Equal(t, TypeParagraph, got[2].Type)
}

func TestNormalizeMalformedLegacyElement(t *testing.T) {
	form := FormRecord{
		FormID: "3",
		Legacy: []map[string]any{
			{"id": "ok", "question": "Fine", "option": "shortAnswer"},
			nil,
			{"unexpected": 42},
			{"id": "also_ok", "question": "Still fine", "option": "paragraph"},
		},
	}

	got := Normalize(form)
	require.Len(t, got, 4, "a malformed element must not block the rest of the form")

	assert.Equal(t, "ok", got[0].QuestionID)
	assert.Equal(t, QuestionDescriptor{QuestionID: "legacy_1"}, got[1])
	assert.Equal(t, "legacy_2", got[2].QuestionID)
	assert.Empty(t, got[2].Text)
	assert.Equal(t, "also_ok", got[3].QuestionID)
}

func TestNormalizeEmptyForm(t *testing.T) {
	assert.Empty(t, Normalize(FormRecord{FormID: "4"}))
}
