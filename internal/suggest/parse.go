package suggest

import (
	"encoding/json"
	"strings"

	"github.com/yutarok/tabinote/internal/domain"
)

// ParseList splits a comma-separated reply into discrete suggestions,
// trimming whitespace and dropping empty entries.
func ParseList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SpotSuggestion is one structured spot candidate parsed from a reply.
type SpotSuggestion struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    domain.SpotCategory `json:"category"`
}

// ParseSpots decodes a reply expected to be a JSON array of spot
// candidates, tolerating a markdown code-fence wrapper around the JSON.
// Any decode failure discards the whole reply and yields an empty
// result; there is no partial recovery. Candidates with an empty title
// are dropped and unknown categories are coerced to "other" so an
// accepted suggestion always passes validation.
func ParseSpots(raw string) []SpotSuggestion {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return nil
	}

	var decoded []SpotSuggestion
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil
	}

	out := make([]SpotSuggestion, 0, len(decoded))
	for _, s := range decoded {
		s.Title = strings.TrimSpace(s.Title)
		if s.Title == "" {
			continue
		}
		if !domain.ValidSpotCategory(s.Category) {
			s.Category = domain.SpotOther
		}
		out = append(out, s)
	}
	return out
}
