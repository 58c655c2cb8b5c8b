package llm

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxInputChars is the per-message input cap. Longer content is truncated
// and a truncation event is logged.
const maxInputChars = 4000

var whitespaceRun = regexp.MustCompile(`\s+`)

// injectionPhrases is the fixed list of prompt-injection markers. Detections
// are logged, never blocked — blocking silently would hide the attempt from
// the audit trail while an LLM may still refuse on its own.
var injectionPhrases = []string{
	"ignore previous instructions",
	"ignore all previous instructions",
	"disregard the above",
	"you are now",
	"system prompt",
	"jailbreak",
}

// Sanitize normalizes task-derived input before it reaches the provider:
// collapse whitespace runs, truncate to the input cap, and scan for
// injection phrases. Returns the sanitized text and any detected phrases.
func Sanitize(text string) (string, []string) {
	sanitized := strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))

	if len(sanitized) > maxInputChars {
		slog.Warn("LLM input truncated",
			"original_chars", len(sanitized),
			"limit", maxInputChars)
		// Back off to a rune boundary so the cut never splits a multi-byte
		// character into invalid UTF-8.
		cut := maxInputChars
		for cut > 0 && !utf8.RuneStart(sanitized[cut]) {
			cut--
		}
		sanitized = sanitized[:cut]
	}

	var detected []string
	lower := strings.ToLower(sanitized)
	for _, phrase := range injectionPhrases {
		if strings.Contains(lower, phrase) {
			detected = append(detected, phrase)
		}
	}
	if len(detected) > 0 {
		slog.Warn("Possible prompt injection in LLM input", "phrases", detected)
	}

	return sanitized, detected
}
