package llm

import (
	"encoding/json"
	"strings"
)

// ExtractJSONObject extracts a JSON object from text that may wrap it in
// markdown code fences or surrounding prose. Fence markers are stripped
// first; if the remaining text is not itself a valid object, the span
// from the first "{" to the last "}" is used. This is the most
// failure-prone step in the pipeline since upstream models do not
// guarantee their output format.
func ExtractJSONObject(text string) (string, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	if strings.HasPrefix(cleaned, "{") && json.Valid([]byte(cleaned)) {
		return cleaned, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end <= start {
		return "", NewError(KindParse, "no JSON object found in model response")
	}
	return cleaned[start : end+1], nil
}

// ParseObject extracts a JSON object from model output text and
// unmarshals it into v.
func ParseObject(text string, v any) error {
	jsonStr, err := ExtractJSONObject(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(jsonStr), v); err != nil {
		return WrapError(KindParse, err, "failed to parse model response JSON: %v", err)
	}
	return nil
}
