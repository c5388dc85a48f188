package services

import (
	"context"
	"strings"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/store"
	"github.com/tonearm/tonearm/internal/validate"
)

// ArtistInput is the draft payload an artist form stages.
type ArtistInput struct {
	Name     string             `json:"name"`
	Bio      string             `json:"bio"`
	Genre    string             `json:"genre"`
	PhotoURL string             `json:"photo_url"`
	Social   *model.SocialLinks `json:"social,omitempty"`
}

// Validate applies the artist field rules.
func (in ArtistInput) Validate() error {
	if err := validate.NonEmpty("name", in.Name); err != nil {
		return err
	}
	if err := validate.NonEmpty("bio", in.Bio); err != nil {
		return err
	}
	if err := validate.NonEmpty("genre", in.Genre); err != nil {
		return err
	}
	return validate.NonEmpty("photo_url", in.PhotoURL)
}

type ArtistService struct {
	store store.Store
}

func NewArtistService(s store.Store) *ArtistService { return &ArtistService{store: s} }

func (s *ArtistService) ListArtists(ctx context.Context) ([]*model.Artist, error) {
	return s.store.Artists().List(ctx)
}

func (s *ArtistService) GetArtist(ctx context.Context, id string) (*model.Artist, error) {
	return s.store.Artists().GetByID(ctx, id)
}

// SearchByName returns artists whose name contains q, case-insensitively.
func (s *ArtistService) SearchByName(ctx context.Context, q string) ([]*model.Artist, error) {
	all, err := s.store.Artists().List(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(q)
	var out []*model.Artist
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Name), q) {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListByGenre returns artists whose genre contains q, case-insensitively.
func (s *ArtistService) ListByGenre(ctx context.Context, q string) ([]*model.Artist, error) {
	all, err := s.store.Artists().List(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(q)
	var out []*model.Artist
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Genre), q) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *ArtistService) CreateArtist(ctx context.Context, in ArtistInput) (*model.Artist, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a := &model.Artist{
		Name:     strings.TrimSpace(in.Name),
		Bio:      strings.TrimSpace(in.Bio),
		Genre:    strings.TrimSpace(in.Genre),
		PhotoURL: strings.TrimSpace(in.PhotoURL),
		Social:   in.Social,
	}
	return s.store.Artists().Create(ctx, a)
}

func (s *ArtistService) UpdateArtist(ctx context.Context, id string, in ArtistInput) (*model.Artist, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	bio := strings.TrimSpace(in.Bio)
	genre := strings.TrimSpace(in.Genre)
	photo := strings.TrimSpace(in.PhotoURL)
	p := model.ArtistPatch{Name: &name, Bio: &bio, Genre: &genre, PhotoURL: &photo, Social: in.Social}
	return s.store.Artists().Update(ctx, id, p)
}

func (s *ArtistService) DeleteArtist(ctx context.Context, id string) (bool, error) {
	return s.store.Artists().Delete(ctx, id)
}

// ArtistStats summarizes the catalog.
type ArtistStats struct {
	Total  int      `json:"total"`
	Genres []string `json:"genres"`
}

// Stats counts artists and collects the distinct genres in catalog order.
func (s *ArtistService) Stats(ctx context.Context) (*ArtistStats, error) {
	all, err := s.store.Artists().List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	stats := &ArtistStats{Total: len(all)}
	for _, a := range all {
		if !seen[a.Genre] {
			seen[a.Genre] = true
			stats.Genres = append(stats.Genres, a.Genre)
		}
	}
	return stats, nil
}
