// Package prompt turns lines typed into the preset browser into intents.
package prompt

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/shotgraph/internal/domain"
	"github.com/hammamikhairi/shotgraph/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches user input to intents using keywords and simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

// patternRule maps a regex to an intent. When the regex has a capture
// group, its first match becomes the payload.
type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(?:list|ls|presets|browse|l)$`), domain.IntentListPresets},
		{regexp.MustCompile(`(?i)^(?:show|chart|graph|view)$`), domain.IntentShowPreset},
		{regexp.MustCompile(`(?i)^(?:show|chart|graph|view)\s+(.+)$`), domain.IntentShowPreset},
		{regexp.MustCompile(`(?i)^(?:select|pick|use)\s+(.+)$`), domain.IntentSelectPreset},
		{regexp.MustCompile(`(?i)^(?:search|find|/)\s*(.+)$`), domain.IntentSearch},
		{regexp.MustCompile(`(?i)^(?:about|info)$`), domain.IntentAbout},
		{regexp.MustCompile(`(?i)^(?:help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(?:quit|exit|q|bye)$`), domain.IntentQuit},
	}
	return p
}

// Parse converts user input into an intent.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	// Preset selection by number (e.g., "1", "12").
	if len(trimmed) <= 3 && isDigits(trimmed) {
		return &domain.Intent{Type: domain.IntentSelectPreset, Payload: trimmed}, nil
	}

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		intent := &domain.Intent{Type: rule.intent}
		if len(m) > 1 {
			intent.Payload = strings.TrimSpace(m[1])
		}
		return intent, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
