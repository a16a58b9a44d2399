package analytics

import (
	"sort"
	"strings"
	"unicode"
)

// Assemble merges per-question aggregates with response-level metadata into
// the final payload. questionAnalytics[i] corresponds positionally to
// questions[i]. A form with zero questions yields an empty slice with
// formInfo still populated; zero responses degrade every aggregate to its
// zero state. Assemble never fails on data-shape irregularities.
func Assemble(form FormRecord, questions []QuestionDescriptor, responses []ResponseRecord) AnalyticsPayload {
	payload := AnalyticsPayload{
		FormInfo: FormInfo{
			FormID:          form.FormID,
			FormTitle:       form.Title,
			FormDescription: form.Description,
			TotalResponses:  len(responses),
		},
		QuestionAnalytics: make([]QuestionAnalytics, 0, len(questions)),
	}
	for i, q := range questions {
		matched := Match(q.QuestionID, i, responses)
		payload.QuestionAnalytics = append(payload.QuestionAnalytics, Aggregate(q, matched))
	}
	return payload
}

// Responders builds the "who has responded" view, one row per response, in
// the order the responses were supplied.
func Responders(responses []ResponseRecord) []Responder {
	out := make([]Responder, 0, len(responses))
	for _, r := range responses {
		out = append(out, Responder{
			ResponseID:  r.ResponseID,
			DisplayName: displayName(r),
			Email:       r.RespondentEmail,
			SubmittedAt: r.SubmittedAt,
			TotalScore:  r.TotalScore,
		})
	}
	return out
}

// displayName resolves a respondent label with this precedence: profile
// name, captured email, then a best-effort scan of answer values for
// something that reads like an email or a short name. The scan is a display
// convenience inherited from earlier versions of the product, not a data
// integrity guarantee.
func displayName(r ResponseRecord) string {
	if r.RespondentName != "" {
		return r.RespondentName
	}
	if r.RespondentEmail != "" {
		return r.RespondentEmail
	}
	for _, a := range r.Answers {
		if s := nameLike(a.Value); s != "" {
			return s
		}
	}
	if len(r.Legacy) > 0 {
		// Keyed legacy answers have no ordering; scan in sorted key order so
		// repeated invocations resolve the same label.
		keys := make([]string, 0, len(r.Legacy))
		for k := range r.Legacy {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if s := nameLike(r.Legacy[k]); s != "" {
				return s
			}
		}
	}
	return "Anonymous"
}

func nameLike(v any) string {
	s := strings.TrimSpace(valueString(v))
	if s == "" {
		return ""
	}
	if looksLikeEmail(s) || looksLikeName(s) {
		return s
	}
	return ""
}

func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 {
		return false
	}
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(s, " \t")
}

// looksLikeName accepts short strings of letters and spaces only.
func looksLikeName(s string) bool {
	if len(s) < 2 || len(s) > 30 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}
