// Saved link lifecycle.
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/notespend/notespend/pkg/types"
)

// NormalizeURL prepends https:// when the URL carries no recognized
// scheme. Scheme matching is case-insensitive.
func NormalizeURL(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return "https://" + raw
}

// CreateLink stores a new saved link. The URL is required and normalized
// to carry a scheme before it reaches the store.
func (s *Service) CreateLink(name, rawURL string) (*types.SavedLink, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("%w: %w", types.ErrValidation, types.ErrEmptyURL)
	}

	now := time.Now()
	l := &types.SavedLink{
		ID:        uuid.NewString(),
		Name:      name,
		URL:       NormalizeURL(strings.TrimSpace(rawURL)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	coll, err := s.store.Collection(types.LinksCollection)
	if err != nil {
		return nil, err
	}
	if err := coll.Put(l); err != nil {
		return nil, err
	}
	return l, nil
}

// DeleteLink soft-deletes a saved link.
func (s *Service) DeleteLink(id string) error {
	coll, err := s.store.Collection(types.LinksCollection)
	if err != nil {
		return err
	}
	return coll.SoftDelete(id)
}

// ActiveLinks returns the active saved links, newest first.
func (s *Service) ActiveLinks() ([]*types.SavedLink, error) {
	coll, err := s.store.Collection(types.LinksCollection)
	if err != nil {
		return nil, err
	}
	records, err := coll.FetchActive()
	if err != nil {
		return nil, err
	}
	links := make([]*types.SavedLink, 0, len(records))
	for _, r := range records {
		links = append(links, r.(*types.SavedLink))
	}
	return links, nil
}
