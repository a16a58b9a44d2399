package analytics

import "fmt"

// Normalize reconciles a form's question list into the canonical descriptor
// sequence. A form carrying a non-empty Questions slice is already canonical
// and is returned verbatim; otherwise each legacy element is mapped to one
// descriptor. Source ordering is preserved in both paths.
//
// A legacy element missing every expected field degrades to a placeholder
// descriptor so that one malformed question never blocks analytics for the
// rest of the form.
func Normalize(form FormRecord) []QuestionDescriptor {
	if len(form.Questions) > 0 {
		return form.Questions
	}
	out := make([]QuestionDescriptor, 0, len(form.Legacy))
	for i, el := range form.Legacy {
		out = append(out, normalizeLegacyElement(el, i))
	}
	return out
}

// normalizeLegacyElement derives one canonical descriptor from a
// pre-migration element. Elements had no stable id, so an element without an
// "id" field gets a synthetic questionId built from its position. The
// question body may sit at the top level or be wrapped under "data"; the
// type lived under the legacy name "option" before "type" existed.
func normalizeLegacyElement(el map[string]any, index int) QuestionDescriptor {
	desc := QuestionDescriptor{QuestionID: fmt.Sprintf("legacy_%d", index)}
	if len(el) == 0 {
		return desc
	}
	if id := stringAt(el, "id"); id != "" {
		desc.QuestionID = id
	}

	inner := el
	if wrapped, ok := el["data"].(map[string]any); ok {
		inner = wrapped
	}

	desc.Text = firstStringAt(inner, "question", "text", "title")
	desc.Type = QuestionType(firstStringAt(inner, "option", "type"))
	desc.Options = stringSliceAt(inner, "options")
	return desc
}

func stringAt(m map[string]any, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func firstStringAt(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := stringAt(m, key); s != "" {
			return s
		}
	}
	return ""
}

func stringSliceAt(m map[string]any, key string) []string {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
