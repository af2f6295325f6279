package artist

import (
	"context"
	"fmt"

	"ms-booking/internal/models"
	"ms-booking/internal/storage"
)

type DBLayer interface {
	GetArtistByID(ctx context.Context, id int64) (*models.Artist, error)
	ListArtists(ctx context.Context) ([]models.EntityRef, error)
	SearchArtistsByName(ctx context.Context, term string) ([]models.Artist, error)
	CreateArtist(ctx context.Context, artist *models.Artist) error
	UpdateArtist(ctx context.Context, artist *models.Artist) error
}

type EventPublisher interface {
	PublishArtistCreated(artist models.Artist) error
	PublishArtistUpdated(artist models.Artist) error
}

type ArtistService struct {
	DB     DBLayer
	Events EventPublisher
}

func NewArtistService(db DBLayer, events EventPublisher) *ArtistService {
	return &ArtistService{DB: db, Events: events}
}

func (s *ArtistService) Get(ctx context.Context, id int64) (*models.Artist, error) {
	return s.DB.GetArtistByID(ctx, id)
}

func (s *ArtistService) List(ctx context.Context) ([]models.EntityRef, error) {
	return s.DB.ListArtists(ctx)
}

func (s *ArtistService) Search(ctx context.Context, term string) (*models.SearchResults, error) {
	artists, err := s.DB.SearchArtistsByName(ctx, term)
	if err != nil {
		return nil, err
	}
	results := &models.SearchResults{Count: len(artists), Data: make([]models.EntityRef, 0, len(artists))}
	for _, a := range artists {
		results.Data = append(results.Data, models.EntityRef{ID: a.ID, Name: a.Name})
	}
	return results, nil
}

func (s *ArtistService) Create(ctx context.Context, form models.ArtistForm) (*models.Artist, error) {
	if err := validateArtistForm(form); err != nil {
		return nil, err
	}

	var artist models.Artist
	form.Apply(&artist)
	if err := s.DB.CreateArtist(ctx, &artist); err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}

	if err := s.Events.PublishArtistCreated(artist); err != nil {
		fmt.Printf("Event publish error (artist created): %v\n", err)
	}
	return &artist, nil
}

// Update applies the submitted form fields to an existing artist.
// Website and seeking fields are not form-backed and keep their stored
// values.
func (s *ArtistService) Update(ctx context.Context, id int64, form models.ArtistForm) (*models.Artist, error) {
	if err := validateArtistForm(form); err != nil {
		return nil, err
	}

	artist, err := s.DB.GetArtistByID(ctx, id)
	if err != nil {
		return nil, err
	}

	form.Apply(artist)
	if err := s.DB.UpdateArtist(ctx, artist); err != nil {
		return nil, fmt.Errorf("update artist %d: %w", id, err)
	}

	if err := s.Events.PublishArtistUpdated(*artist); err != nil {
		fmt.Printf("Event publish error (artist updated): %v\n", err)
	}
	return artist, nil
}

func validateArtistForm(form models.ArtistForm) error {
	if form.Name == "" {
		return fmt.Errorf("%w: name is required", storage.ErrValidation)
	}
	if form.City == "" {
		return fmt.Errorf("%w: city is required", storage.ErrValidation)
	}
	if form.State == "" {
		return fmt.Errorf("%w: state is required", storage.ErrValidation)
	}
	return nil
}
