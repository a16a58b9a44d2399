package analytics

import "time"

// QuestionType is the closed enumeration of question kinds a form may carry.
// Every member has a dedicated handler in Aggregate; tags outside the
// enumeration (possible in pre-migration data) degrade to a generic summary.
type QuestionType string

const (
	TypeShortAnswer    QuestionType = "shortAnswer"
	TypeParagraph      QuestionType = "paragraph"
	TypeMultipleChoice QuestionType = "multipleChoice"
	TypeCheckbox       QuestionType = "checkbox"
	TypeDropdown       QuestionType = "dropdown"
	TypeFileUpload     QuestionType = "fileUpload"
	TypeLinearScale    QuestionType = "linearScale"
)

// Valid reports whether t is a member of the closed enumeration.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeShortAnswer, TypeParagraph, TypeMultipleChoice, TypeCheckbox,
		TypeDropdown, TypeFileUpload, TypeLinearScale:
		return true
	}
	return false
}

// HasOptions reports whether t carries an option list.
func (t QuestionType) HasOptions() bool {
	switch t {
	case TypeMultipleChoice, TypeCheckbox, TypeDropdown:
		return true
	}
	return false
}

// QuestionDescriptor is the canonical, post-normalization question shape.
// QuestionID is unique within one form and stable across form edits.
type QuestionDescriptor struct {
	QuestionID    string       `json:"questionId"`
	Type          QuestionType `json:"type"`
	Text          string       `json:"text"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer,omitempty"`
	Points        int          `json:"points,omitempty"`
}

// FormRecord is the engine's view of a stored form. Exactly one of Questions
// (current shape) or Legacy (pre-migration free-form elements) is expected to
// be populated; Normalize resolves the union once so nothing downstream
// branches on shape.
type FormRecord struct {
	FormID      string
	Title       string
	Description string
	Questions   []QuestionDescriptor
	Legacy      []map[string]any
}

// AnswerRecord is one resolved answer. Value is typed any because legacy
// responses may hold already-decoded arrays where current responses hold a
// JSON-encoded array string; both aggregate identically.
type AnswerRecord struct {
	QuestionID   string
	Value        any
	IsCorrect    *bool
	PointsEarned *float64
}

// ResponseRecord is the engine's view of one stored response. Answers holds
// the current shape; Legacy holds the pre-migration keyed mapping. A response
// may carry fewer answers than the form has questions: skipped questions are
// normal, not an error.
type ResponseRecord struct {
	ResponseID      string
	Answers         []AnswerRecord
	Legacy          map[string]any
	RespondentName  string
	RespondentEmail string
	SubmittedAt     time.Time
	TotalScore      *float64
}

// FormInfo is the response-level header of an analytics payload.
type FormInfo struct {
	FormID          string `json:"formId"`
	FormTitle       string `json:"formTitle"`
	FormDescription string `json:"formDescription"`
	TotalResponses  int    `json:"totalResponses"`
}

// QuestionAnalytics is the per-question aggregate. Exactly one of the
// type-specific fields is populated, depending on Type.
type QuestionAnalytics struct {
	QuestionID     string       `json:"questionId"`
	Question       string       `json:"question"`
	Type           QuestionType `json:"type"`
	TotalResponses int          `json:"totalResponses"`
	Responses      []any        `json:"responses"`

	Distribution       map[string]int     `json:"distribution,omitempty"`
	OptionDistribution map[string]int     `json:"optionDistribution,omitempty"`
	Percentages        map[string]float64 `json:"percentages,omitempty"`
	Average            *float64           `json:"average,omitempty"`
	UniqueCount        *int               `json:"uniqueCount,omitempty"`
	SampleResponses    []string           `json:"sampleResponses,omitempty"`
}

// AnalyticsPayload is the engine's full output. Its shape is identical
// whether the underlying data was legacy- or current-shaped.
type AnalyticsPayload struct {
	FormInfo          FormInfo            `json:"formInfo"`
	QuestionAnalytics []QuestionAnalytics `json:"questionAnalytics"`
}

// Responder is one row of the lighter-weight "who has responded" view.
type Responder struct {
	ResponseID  string    `json:"responseId"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
	TotalScore  *float64  `json:"totalScore,omitempty"`
}
