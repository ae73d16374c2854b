package architect

import (
	"errors"
	"strings"

	"google.golang.org/genai"
)

// ErrInvalidSVG is returned when the model answer carries no SVG root tag
var ErrInvalidSVG = errors.New("model failed to generate valid SVG")

// ResponseText joins the text parts of the first candidate.
// Thought parts are skipped; a missing answer yields "".
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

// CleanMarkup strips code fences wherever they occur and trims the result
func CleanMarkup(text string) string {
	text = strings.ReplaceAll(text, "```svg", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ValidateMarkup only checks for the opening SVG tag. The markup is not
// parsed and the layout rules of the prompt are not verified.
func ValidateMarkup(markup string) error {
	if !strings.Contains(markup, "<svg") {
		return ErrInvalidSVG
	}
	return nil
}
