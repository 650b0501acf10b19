package application

import (
	"fmt"
	"strings"

	"github.com/bnema/bundesliga-context-cli/internal/domain"
)

// Placeholders every chatbot prompt template must contain.
const (
	PlaceholderCityName  = "{city_name}"
	PlaceholderClubName  = "{club_name}"
	PlaceholderCoachName = "{coach_name}"
	PlaceholderCoachInfo = "{coach_info}"
)

var requiredPlaceholders = []string{
	PlaceholderCityName,
	PlaceholderClubName,
	PlaceholderCoachName,
	PlaceholderCoachInfo,
}

// PromptComposer renders a chatbot system prompt from a template.
type PromptComposer struct {
	template string
}

// NewPromptComposer checks that template names every placeholder.
func NewPromptComposer(template string) (*PromptComposer, error) {
	var missing []string
	for _, placeholder := range requiredPlaceholders {
		if !strings.Contains(template, placeholder) {
			missing = append(missing, placeholder)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing placeholders %s", domain.ErrTemplate, strings.Join(missing, ", "))
	}

	return &PromptComposer{template: template}, nil
}

// Compose substitutes the context values in one pass, so braces inside a
// value are emitted as they are. "{{" and "}}" render as single braces.
func (c *PromptComposer) Compose(prompt domain.PromptContext) string {
	replacer := strings.NewReplacer(
		"{{", "{",
		"}}", "}",
		PlaceholderCityName, prompt.CityName,
		PlaceholderClubName, prompt.ClubName,
		PlaceholderCoachName, prompt.CoachName,
		PlaceholderCoachInfo, prompt.CoachInfo,
	)

	return replacer.Replace(c.template)
}
