// Package masking redacts credentials from anything that reaches logs or
// audit records. Patterns are compiled eagerly at creation; masking failures
// never block the caller.
package masking

import (
	"regexp"
	"strings"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns cover the credential shapes the core handles: provider API
// keys, bearer tokens, and generic key=value secrets.
var builtinPatterns = []*CompiledPattern{
	{
		Name:        "anthropic_api_key",
		Regex:       regexp.MustCompile(`sk-ant-[A-Za-z0-9_\-]{8,}`),
		Replacement: "***MASKED_API_KEY***",
	},
	{
		Name:        "bearer_token",
		Regex:       regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.=]{8,}`),
		Replacement: "Bearer ***MASKED***",
	},
	{
		Name:        "generic_secret_assignment",
		Regex:       regexp.MustCompile(`(?i)(api[_-]?key|secret|password|token)\s*[=:]\s*["']?[^\s"']{8,}["']?`),
		Replacement: "$1=***MASKED***",
	},
}

// Service applies credential masking to free text. Stateless aside from the
// compiled patterns; safe for concurrent use.
type Service struct {
	patterns []*CompiledPattern
}

// NewService creates a masking service with the builtin patterns compiled.
func NewService() *Service {
	return &Service{patterns: builtinPatterns}
}

// Mask redacts all recognized credential shapes in the text.
func (s *Service) Mask(text string) string {
	if text == "" {
		return text
	}
	for _, p := range s.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// MaskCredential masks a credential to its last 4 characters, the form used
// when a key must be identifiable in logs ("...w3Xk"). Short values are
// fully masked.
func MaskCredential(credential string) string {
	if credential == "" {
		return ""
	}
	if len(credential) <= 4 {
		return strings.Repeat("*", len(credential))
	}
	return "..." + credential[len(credential)-4:]
}
