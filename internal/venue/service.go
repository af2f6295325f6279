package venue

import (
	"context"
	"fmt"

	"ms-booking/internal/models"
	"ms-booking/internal/storage"
)

type DBLayer interface {
	GetVenueByID(ctx context.Context, id int64) (*models.Venue, error)
	ListVenuesByCity(ctx context.Context) ([]models.CityVenues, error)
	SearchVenuesByName(ctx context.Context, term string) ([]models.Venue, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	UpdateVenue(ctx context.Context, venue *models.Venue) error
	DeleteVenue(ctx context.Context, id int64) error
}

type EventPublisher interface {
	PublishVenueCreated(venue models.Venue) error
	PublishVenueUpdated(venue models.Venue) error
	PublishVenueDeleted(id int64) error
}

type VenueService struct {
	DB     DBLayer
	Events EventPublisher
}

func NewVenueService(db DBLayer, events EventPublisher) *VenueService {
	return &VenueService{DB: db, Events: events}
}

func (s *VenueService) Get(ctx context.Context, id int64) (*models.Venue, error) {
	return s.DB.GetVenueByID(ctx, id)
}

func (s *VenueService) ListByCity(ctx context.Context) ([]models.CityVenues, error) {
	return s.DB.ListVenuesByCity(ctx)
}

// Search returns all venues whose name contains the term, with the
// count equal to the list length.
func (s *VenueService) Search(ctx context.Context, term string) (*models.SearchResults, error) {
	venues, err := s.DB.SearchVenuesByName(ctx, term)
	if err != nil {
		return nil, err
	}
	results := &models.SearchResults{Count: len(venues), Data: make([]models.EntityRef, 0, len(venues))}
	for _, v := range venues {
		results.Data = append(results.Data, models.EntityRef{ID: v.ID, Name: v.Name})
	}
	return results, nil
}

func (s *VenueService) Create(ctx context.Context, form models.VenueForm) (*models.Venue, error) {
	if err := validateVenueForm(form); err != nil {
		return nil, err
	}

	var venue models.Venue
	form.Apply(&venue)
	if err := s.DB.CreateVenue(ctx, &venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	if err := s.Events.PublishVenueCreated(venue); err != nil {
		fmt.Printf("Event publish error (venue created): %v\n", err)
	}
	return &venue, nil
}

// Update applies the submitted form fields to an existing venue. Fields
// the form does not carry keep their stored values.
func (s *VenueService) Update(ctx context.Context, id int64, form models.VenueForm) (*models.Venue, error) {
	if err := validateVenueForm(form); err != nil {
		return nil, err
	}

	venue, err := s.DB.GetVenueByID(ctx, id)
	if err != nil {
		return nil, err
	}

	form.Apply(venue)
	if err := s.DB.UpdateVenue(ctx, venue); err != nil {
		return nil, fmt.Errorf("update venue %d: %w", id, err)
	}

	if err := s.Events.PublishVenueUpdated(*venue); err != nil {
		fmt.Printf("Event publish error (venue updated): %v\n", err)
	}
	return venue, nil
}

func (s *VenueService) Delete(ctx context.Context, id int64) error {
	if err := s.DB.DeleteVenue(ctx, id); err != nil {
		return err
	}
	if err := s.Events.PublishVenueDeleted(id); err != nil {
		fmt.Printf("Event publish error (venue deleted): %v\n", err)
	}
	return nil
}

func validateVenueForm(form models.VenueForm) error {
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
