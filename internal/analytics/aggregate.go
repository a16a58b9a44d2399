package analytics

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxSampleResponses caps the sample lists carried in a payload; the true
// counts are reported alongside, so capping loses no information.
const maxSampleResponses = 5

// Aggregate computes the summary for one question from its matched answers.
// Dispatch is purely on the descriptor's type. The function is pure: it never
// mutates its inputs and carries no state between calls. Malformed answer
// values (unparsable checkbox JSON, non-numeric scale entries) are skipped
// silently; historical responses must stay analyzable as forms evolve.
func Aggregate(desc QuestionDescriptor, matched []AnswerRecord) QuestionAnalytics {
	qa := QuestionAnalytics{
		QuestionID:     desc.QuestionID,
		Question:       desc.Text,
		Type:           desc.Type,
		TotalResponses: len(matched),
		Responses:      rawValues(matched),
	}

	switch desc.Type {
	case TypeMultipleChoice, TypeDropdown:
		qa.Distribution = tallySingle(matched)
		qa.Percentages = percentages(qa.Distribution, qa.TotalResponses)
	case TypeCheckbox:
		qa.OptionDistribution = tallyMulti(matched)
		qa.Percentages = percentages(qa.OptionDistribution, qa.TotalResponses)
	case TypeLinearScale:
		avg, dist := scaleStats(matched)
		qa.Average = &avg
		qa.Distribution = dist
	case TypeShortAnswer, TypeParagraph:
		unique, samples := collateText(matched)
		qa.UniqueCount = &unique
		qa.SampleResponses = samples
	case TypeFileUpload:
		// Count only; uploaded content is opaque to aggregation.
	default:
		// Unknown tag from pre-migration data: generic summary.
		qa.SampleResponses = sampleStrings(matched)
	}
	return qa
}

// Percent computes count/total*100 to one decimal place. A zero total yields
// 0, never NaN.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}

// percentages derives the share of responses behind each tally entry.
// Checkbox entries are per-respondent shares, so multi-select questions may
// sum past 100.
func percentages(dist map[string]int, total int) map[string]float64 {
	out := make(map[string]float64, len(dist))
	for k, count := range dist {
		out[k] = Percent(count, total)
	}
	return out
}

// tallySingle builds a frequency map over exact answer strings, as given.
// No case or whitespace normalization: "Yes" and "yes" are distinct answers.
func tallySingle(matched []AnswerRecord) map[string]int {
	dist := make(map[string]int)
	for _, a := range matched {
		dist[valueString(a.Value)]++
	}
	return dist
}

// tallyMulti increments a per-option tally for every element of every
// multi-select answer. Values arrive either as a JSON-encoded array string
// (current shape) or as an already-decoded array (legacy shape); both
// decode to the same elements.
func tallyMulti(matched []AnswerRecord) map[string]int {
	dist := make(map[string]int)
	for _, a := range matched {
		for _, v := range DecodeValues(a.Value) {
			dist[v]++
		}
	}
	return dist
}

// scaleStats parses each answer as an integer, discarding non-numeric
// entries, and returns the arithmetic mean rounded to two decimal places
// plus per-value raw counts. No parsable entries yields average 0.
func scaleStats(matched []AnswerRecord) (float64, map[string]int) {
	dist := make(map[string]int)
	sum, n := 0, 0
	for _, a := range matched {
		v, err := strconv.Atoi(strings.TrimSpace(valueString(a.Value)))
		if err != nil {
			continue
		}
		dist[strconv.Itoa(v)]++
		sum += v
		n++
	}
	if n == 0 {
		return 0, dist
	}
	return math.Round(float64(sum)/float64(n)*100) / 100, dist
}

// collateText collects non-empty trimmed answers, de-duplicated by exact
// string equality. The sample list keeps first-occurrence order and is
// capped; the returned count is the true number of unique answers.
func collateText(matched []AnswerRecord) (int, []string) {
	seen := make(map[string]struct{})
	samples := []string{}
	for _, a := range matched {
		s := strings.TrimSpace(valueString(a.Value))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if len(samples) < maxSampleResponses {
			samples = append(samples, s)
		}
	}
	return len(seen), samples
}

func sampleStrings(matched []AnswerRecord) []string {
	samples := []string{}
	for _, a := range matched {
		if len(samples) == maxSampleResponses {
			break
		}
		if s := strings.TrimSpace(valueString(a.Value)); s != "" {
			samples = append(samples, s)
		}
	}
	return samples
}

func rawValues(matched []AnswerRecord) []any {
	out := make([]any, 0, len(matched))
	for _, a := range matched {
		out = append(out, a.Value)
	}
	return out
}

// valueString renders an answer value as the string the respondent
// effectively submitted. Non-string scalars come from legacy JSON mappings.
func valueString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// DecodeValues normalizes a multi-select answer to its element list. A
// string that parses as a JSON string array is expanded; any other non-empty
// string counts as a single selection; decoded arrays pass through
// element-wise. Quiz scoring shares this decode so checkbox answers compare
// the same way they aggregate.
func DecodeValues(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return nil
		}
		if strings.HasPrefix(trimmed, "[") {
			var items []string
			if err := json.Unmarshal([]byte(trimmed), &items); err == nil {
				return items
			}
			// Malformed JSON: skip this answer rather than abort the tally.
			return nil
		}
		return []string{val}
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, valueString(item))
		}
		return out
	default:
		return []string{valueString(v)}
	}
}
