package analytics

import "fmt"

// Match locates the answer for one question across every response. index is
// the question's position in the canonical descriptor list and is only used
// for the positional legacy key fallback. The result holds one entry per
// response that actually answered the question; absence is represented by
// omission, never by a sentinel, so downstream aggregation filters nothing.
//
// Resolution order per response:
//  1. linear scan of the current-shape answers slice by questionId
//  2. legacy keyed mapping under the questionId itself
//  3. legacy keyed mapping under "question_<index>"
//
// An answer whose questionId references a question no longer on the form is
// simply never matched; dangling references are tolerated by construction.
func Match(questionID string, index int, responses []ResponseRecord) []AnswerRecord {
	out := make([]AnswerRecord, 0, len(responses))
	for _, resp := range responses {
		if a, ok := resolveAnswer(questionID, index, resp); ok {
			out = append(out, a)
		}
	}
	return out
}

func resolveAnswer(questionID string, index int, resp ResponseRecord) (AnswerRecord, bool) {
	for _, a := range resp.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	if resp.Legacy != nil {
		if v, ok := resp.Legacy[questionID]; ok && v != nil {
			return AnswerRecord{QuestionID: questionID, Value: v}, true
		}
		if v, ok := resp.Legacy[fmt.Sprintf("question_%d", index)]; ok && v != nil {
			return AnswerRecord{QuestionID: questionID, Value: v}, true
		}
	}
	return AnswerRecord{}, false
}
