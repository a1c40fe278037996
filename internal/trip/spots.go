package trip

import (
	"fmt"
	"strings"

	"github.com/yutarok/tabinote/internal/domain"
)

// AddSpot appends a new wish-list spot with a fresh id and no links.
func AddSpot(spots []domain.Spot, title, description string, category domain.SpotCategory, imageColor string) ([]domain.Spot, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return spots, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !domain.ValidSpotCategory(category) {
		return spots, fmt.Errorf("%w: unknown spot category %q", domain.ErrValidation, category)
	}

	next := make([]domain.Spot, len(spots), len(spots)+1)
	copy(next, spots)
	return append(next, domain.Spot{
		ID:          domain.NewID(),
		Title:       title,
		Category:    category,
		Description: description,
		ImageColor:  imageColor,
		Links:       []domain.LinkItem{},
	}), nil
}

// DeleteSpot removes the spot with the given id; unknown ids are a no-op.
func DeleteSpot(spots []domain.Spot, id string) []domain.Spot {
	next := make([]domain.Spot, 0, len(spots))
	for _, s := range spots {
		if s.ID != id {
			next = append(next, s)
		}
	}
	return next
}

// UpdateSpotDescription replaces one spot's memo text, leaving siblings
// untouched.
func UpdateSpotDescription(spots []domain.Spot, id, description string) ([]domain.Spot, error) {
	next := make([]domain.Spot, len(spots))
	copy(next, spots)
	for i := range next {
		if next[i].ID == id {
			next[i].Description = description
			return next, nil
		}
	}
	return spots, fmt.Errorf("%w: spot %s", domain.ErrNotFound, id)
}

// AddLink appends a titled URL to a spot's link list. The URL is
// required; an empty title falls back to "Link".
func AddLink(spots []domain.Spot, spotID, title, url string) ([]domain.Spot, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return spots, fmt.Errorf("%w: url is required", domain.ErrValidation)
	}
	if strings.TrimSpace(title) == "" {
		title = "Link"
	}

	next := make([]domain.Spot, len(spots))
	copy(next, spots)
	for i := range next {
		if next[i].ID != spotID {
			continue
		}
		links := make([]domain.LinkItem, len(next[i].Links), len(next[i].Links)+1)
		copy(links, next[i].Links)
		next[i].Links = append(links, domain.LinkItem{ID: domain.NewID(), Title: title, URL: url})
		return next, nil
	}
	return spots, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
}

// DeleteLink removes one link from a spot. An unknown link id is a
// no-op; an unknown spot id is an error.
func DeleteLink(spots []domain.Spot, spotID, linkID string) ([]domain.Spot, error) {
	next := make([]domain.Spot, len(spots))
	copy(next, spots)
	for i := range next {
		if next[i].ID != spotID {
			continue
		}
		links := make([]domain.LinkItem, 0, len(next[i].Links))
		for _, l := range next[i].Links {
			if l.ID != linkID {
				links = append(links, l)
			}
		}
		next[i].Links = links
		return next, nil
	}
	return spots, fmt.Errorf("%w: spot %s", domain.ErrNotFound, spotID)
}
