package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractObject locates the first top-level JSON object in a raw model reply.
// Models occasionally wrap JSON in a markdown code fence or prepend prose; we
// strip the fence and take the outermost {...} span.
func ExtractObject(raw string) ([]byte, error) {
	cleaned := stripFence(strings.TrimSpace(raw))

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformed)
	}
	candidate := []byte(cleaned[start : end+1])
	if !json.Valid(candidate) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	return candidate, nil
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop a language tag like "json" on the opening fence.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "" || !strings.ContainsAny(first, "{}") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// DecodeRole validates and decodes a role-mode reply.
func DecodeRole(raw []byte) (RoleAssessment, error) {
	fields, err := decodeFields(raw)
	if err != nil {
		return RoleAssessment{}, err
	}

	out := RoleAssessment{}
	if out.Score, err = numberField(fields, "score"); err != nil {
		return RoleAssessment{}, err
	}
	if out.Strengths, err = stringListField(fields, "strengths"); err != nil {
		return RoleAssessment{}, err
	}
	if out.Weaknesses, err = stringListField(fields, "weaknesses"); err != nil {
		return RoleAssessment{}, err
	}
	if out.Suggestions, err = stringListField(fields, "suggestions"); err != nil {
		return RoleAssessment{}, err
	}
	return out, nil
}

// DecodeJD validates and decodes a jd-mode reply.
func DecodeJD(raw []byte) (JDAssessment, error) {
	fields, err := decodeFields(raw)
	if err != nil {
		return JDAssessment{}, err
	}

	out := JDAssessment{}
	if out.Score, err = numberField(fields, "score"); err != nil {
		return JDAssessment{}, err
	}
	if out.MatchScore, err = numberField(fields, "match_score"); err != nil {
		return JDAssessment{}, err
	}
	if out.Strengths, err = stringListField(fields, "strengths"); err != nil {
		return JDAssessment{}, err
	}
	if out.Weaknesses, err = stringListField(fields, "weaknesses"); err != nil {
		return JDAssessment{}, err
	}
	if out.Suggestions, err = stringListField(fields, "suggestions"); err != nil {
		return JDAssessment{}, err
	}
	if out.MissingKeywords, err = stringListField(fields, "missing_keywords"); err != nil {
		return JDAssessment{}, err
	}
	return out, nil
}

func decodeFields(raw []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return fields, nil
}

func numberField(fields map[string]json.RawMessage, key string) (float64, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrInvalidShape, key)
	}
	var val float64
	if err := json.Unmarshal(raw, &val); err != nil {
		return 0, fmt.Errorf("%w: %q must be numeric", ErrInvalidShape, key)
	}
	return val, nil
}

func stringListField(fields map[string]json.RawMessage, key string) ([]string, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrInvalidShape, key)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: %q must be an array of strings", ErrInvalidShape, key)
	}
	return list, nil
}
