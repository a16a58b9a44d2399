package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answers(values ...any) []AnswerRecord {
	out := make([]AnswerRecord, 0, len(values))
	for _, v := range values {
		out = append(out, AnswerRecord{QuestionID: "q", Value: v})
	}
	return out
}

func TestAggregateMultipleChoice(t *testing.T) {
	desc := QuestionDescriptor{QuestionID: "q", Type: TypeMultipleChoice, Text: "Agree?", Options: []string{"Yes", "No"}}

	qa := Aggregate(desc, answers("Yes", "Yes", "No"))
	assert.Equal(t, 3, qa.TotalResponses)
	assert.Equal(t, map[string]int{"Yes": 2, "No": 1}, qa.Distribution)

	// The payload carries derived percentages alongside the raw counts.
	assert.InDelta(t, 66.7, qa.Percentages["Yes"], 0.001)
	assert.InDelta(t, 33.3, qa.Percentages["No"], 0.001)
}

func TestAggregateDropdownNoValueNormalization(t *testing.T) {
	desc := QuestionDescriptor{QuestionID: "q", Type: TypeDropdown, Options: []string{"a"}}

	qa := Aggregate(desc, answers("a", "A", " a"))
	assert.Equal(t, map[string]int{"a": 1, "A": 1, " a": 1}, qa.Distribution)
}

func TestAggregateCheckboxRoundTrip(t *testing.T) {
	desc := QuestionDescriptor{QuestionID: "q", Type: TypeCheckbox, Options: []string{"Red", "Blue", "Green"}}

	// JSON-encoded array string and literal array aggregate identically.
	encoded := Aggregate(desc, answers(`["Red","Blue"]`, `["Red"]`))
	literal := Aggregate(desc, answers([]string{"Red", "Blue"}, []any{"Red"}))

	want := map[string]int{"Red": 2, "Blue": 1}
	assert.Equal(t, want, encoded.OptionDistribution)
	assert.Equal(t, want, literal.OptionDistribution)

	// Per-respondent option shares; multi-select may sum past 100.
	assert.Equal(t, map[string]float64{"Red": 100.0, "Blue": 50.0}, encoded.Percentages)
}

func TestAggregateCheckboxBareValueAndMalformedJSON(t *testing.T) {
	desc := QuestionDescriptor{QuestionID: "q", Type: TypeCheckbox}

	qa := Aggregate(desc, answers("Red", `["Blue",`, `["Green"]`))
	assert.Equal(t, map[string]int{"Red": 1, "Green": 1}, qa.OptionDistribution,
		"a bare value counts as a single selection; malformed JSON is skipped")
	assert.Equal(t, 3, qa.TotalResponses)
}

func TestAggregateLinearScale(t *testing.T) {
	desc := QuestionDescriptor{QuestionID: "q", Type: TypeLinearScale}

	qa := Aggregate(desc, answers("1", "3", "5"))
	require.NotNil(t, qa.Average)
	assert.Equal(t, 3.0, *qa.Average)
	assert.Equal(t, map[string]int{"1": 1, "3": 1, "5": 1}, qa.Distribution)
}

func TestAggregateLinearScaleDiscardsNonNumeric(t *testing.T) {
	desc := QuestionDescriptor{QuestionID: "q", Type: TypeLinearScale}

	qa := Aggregate(desc, answers("2", "not a number", " 4 ", ""))
	require.NotNil(t, qa.Average)
	assert.Equal(t, 3.0, *qa.Average)
	assert.Equal(t, map[string]int{"2": 1, "4": 1}, qa.Distribution)
}

func TestAggregateLinearScaleRounding(t *testing.T) {
	desc := QuestionDescriptor{QuestionID: "q", Type: TypeLinearScale}

	qa := Aggregate(desc, answers("1", "2", "2"))
	require.NotNil(t, qa.Average)
	assert.Equal(t, 1.67, *qa.Average)
}

func TestAggregateShortAnswerCollation(t *testing.T) {
	desc := QuestionDescriptor{QuestionID: "q", Type: TypeShortAnswer}

	qa := Aggregate(desc, answers("foo", "foo", "bar"))
	require.NotNil(t, qa.UniqueCount)
	assert.Equal(t, 2, *qa.UniqueCount)
	assert.Equal(t, []string{"foo", "bar"}, qa.SampleResponses)
}

func TestAggregateParagraphSampleCap(t *testing.T) {
	desc := QuestionDescriptor{QuestionID: "q", Type: TypeParagraph}

	qa := Aggregate(desc, answers("a", "b", "c", "d", "e", "f", "g", "  ", "a"))
	require.NotNil(t, qa.UniqueCount)
	assert.Equal(t, 7, *qa.UniqueCount, "true unique count is reported past the sample cap")
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, qa.SampleResponses)
}

func TestAggregateFileUploadCountOnly(t *testing.T) {
	desc := QuestionDescriptor{QuestionID: "q", Type: TypeFileUpload}

	qa := Aggregate(desc, answers("upload-1.png", "upload-2.png"))
	assert.Equal(t, 2, qa.TotalResponses)
	assert.Nil(t, qa.Distribution)
	assert.Nil(t, qa.OptionDistribution)
	assert.Nil(t, qa.Percentages)
	assert.Nil(t, qa.Average)
	assert.Nil(t, qa.UniqueCount)
	assert.Nil(t, qa.SampleResponses)
}

func TestAggregateUnknownTypeGenericSummary(t *testing.T) {
	desc := QuestionDescriptor{QuestionID: "q", Type: "grid_of_ponies"}

	qa := Aggregate(desc, answers("a", "b", "c", "d", "e", "f"))
	assert.Equal(t, 6, qa.TotalResponses)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, qa.SampleResponses)
}

func TestAggregateZeroResponsesSafeForEveryType(t *testing.T) {
	types := []QuestionType{
		TypeShortAnswer, TypeParagraph, TypeMultipleChoice, TypeCheckbox,
		TypeDropdown, TypeFileUpload, TypeLinearScale,
	}
	for _, typ := range types {
		qa := Aggregate(QuestionDescriptor{QuestionID: "q", Type: typ}, nil)
		assert.Equal(t, 0, qa.TotalResponses, typ)
		if qa.Average != nil {
			assert.Equal(t, 0.0, *qa.Average, "zero responses must not yield NaN for %s", typ)
		}
		if qa.UniqueCount != nil {
			assert.Equal(t, 0, *qa.UniqueCount, typ)
		}
	}
}

func TestDistributionSumsMatchAnswerCount(t *testing.T) {
	desc := QuestionDescriptor{QuestionID: "q", Type: TypeMultipleChoice}
	matched := answers("a", "b", "a", "c", "b", "a")

	qa := Aggregate(desc, matched)
	sum := 0
	for v, count := range qa.Distribution {
		sum += count
		pct := qa.Percentages[v]
		assert.GreaterOrEqual(t, pct, 0.0, v)
		assert.LessOrEqual(t, pct, 100.0, v)
	}
	assert.Equal(t, len(matched), sum)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0.0, Percent(0, 0), "zero total yields 0, not NaN")
	assert.Equal(t, 0.0, Percent(3, 0))
	assert.Equal(t, 50.0, Percent(1, 2))
	assert.Equal(t, 100.0, Percent(7, 7))
	assert.InDelta(t, 66.7, Percent(2, 3), 0.001)
	assert.InDelta(t, 33.3, Percent(1, 3), 0.001)
}

func TestDecodeValues(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want []string
	}{
		{"json array string", `["A","B"]`, []string{"A", "B"}},
		{"bare string", "A", []string{"A"}},
		{"string slice", []string{"A", "B"}, []string{"A", "B"}},
		{"any slice", []any{"A", float64(2)}, []string{"A", "2"}},
		{"empty string", "", nil},
		{"nil", nil, nil},
		{"malformed json", `["A"`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeValues(tc.in))
		})
	}
}
