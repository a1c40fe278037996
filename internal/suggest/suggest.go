// Package suggest produces candidate packing items and wish-list spots
// from a text-generation backend. Prompt building and reply parsing are
// pure functions here; the network clients live in the gemini and claude
// subpackages.
package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/yutarok/tabinote/internal/domain"
)

// Completer is a text-generation backend: one prompt in, one reply out.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Disabled is the backend used when no API credential is configured.
// Every call returns an empty reply immediately; suggestions are a soft
// feature, never an error.
type Disabled struct{}

func (Disabled) Complete(context.Context, string) (string, error) {
	return "", nil
}

// PackingPrompt embeds the current checklist into the packing prompt.
// The reply is expected as a bare comma-separated list.
func PackingPrompt(items []domain.PackingItem) string {
	texts := make([]string, 0, len(items))
	for _, it := range items {
		texts = append(texts, it.Text)
	}
	return fmt.Sprintf("Traveler: 20s female, Helsinki in June. Packed: %s. Suggest 5 missing, specific, useful items. Return comma-separated list ONLY.", strings.Join(texts, ", "))
}

// SpotsPrompt embeds the current wish-list titles into the spot prompt.
// The reply is expected as a JSON array of {title, description, category}.
func SpotsPrompt(spots []domain.Spot) string {
	titles := make([]string, 0, len(spots))
	for _, s := range spots {
		titles = append(titles, s.Title)
	}
	return fmt.Sprintf("Likes: %s. Suggest 3 NEW Helsinki spots. Return JSON array [{title, description, category}]. No markdown.", strings.Join(titles, ", "))
}
