package llm

import (
	"encoding/json"
	"strings"
)

// ExtractJSON locates a single JSON object in model output, tolerating one
// layer of fenced-code wrapping. Returns "" when no valid object is found.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)

	if json.Valid([]byte(text)) && strings.HasPrefix(text, "{") {
		return text
	}

	text = StripCodeFence(text)
	if json.Valid([]byte(text)) && strings.HasPrefix(text, "{") {
		return text
	}

	return findJSONObjectByBraceMatching(text)
}

// StripCodeFence removes a single outer triple-backtick wrapper, with or
// without a language tag, leaving other text untouched.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	// Drop a language tag on the opening fence line.
	if idx := strings.IndexByte(body, '\n'); idx != -1 && !strings.ContainsAny(body[:idx], " \t{") {
		body = body[idx+1:]
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}

func findJSONObjectByBraceMatching(text string) string {
	start := strings.Index(text, "{")
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}

		if c == '\\' && inString {
			escaped = true
			continue
		}

		if c == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := text[start : i+1]
				if json.Valid([]byte(candidate)) {
					return candidate
				}
			}
		}
	}

	return ""
}
