package show

import (
	"context"
	"fmt"
	"time"

	"ms-booking/internal/models"
	"ms-booking/internal/storage"
	"ms-booking/internal/utils"
)

type DBLayer interface {
	CreateShow(ctx context.Context, show *models.Show) error
	ListUpcoming(ctx context.Context, now time.Time) ([]models.ShowListingRow, error)
	ShowsAtVenue(ctx context.Context, venueID int64) ([]models.VenueShowRow, error)
	ShowsByArtist(ctx context.Context, artistID int64) ([]models.ArtistShowRow, error)
}

type EventPublisher interface {
	PublishShowCreated(show models.Show) error
}

type ShowService struct {
	DB     DBLayer
	Events EventPublisher
}

func NewShowService(db DBLayer, events EventPublisher) *ShowService {
	return &ShowService{DB: db, Events: events}
}

func (s *ShowService) Create(ctx context.Context, form models.ShowForm) (*models.Show, error) {
	if form.ArtistID == 0 || form.VenueID == 0 {
		return nil, fmt.Errorf("%w: artist_id and venue_id are required", storage.ErrValidation)
	}
	if form.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time is required", storage.ErrValidation)
	}

	show := models.Show{
		ArtistID:  form.ArtistID,
		VenueID:   form.VenueID,
		StartTime: form.StartTime,
	}
	if err := s.DB.CreateShow(ctx, &show); err != nil {
		return nil, fmt.Errorf("create show: %w", err)
	}

	if err := s.Events.PublishShowCreated(show); err != nil {
		fmt.Printf("Event publish error (show created): %v\n", err)
	}
	return &show, nil
}

// ListUpcoming returns the /shows listing: shows starting after now
// with venue and artist display fields, start times rendered as text.
func (s *ShowService) ListUpcoming(ctx context.Context, now time.Time) ([]models.ShowListingRow, error) {
	rows, err := s.DB.ListUpcoming(ctx, now)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].StartTimeText = utils.FormatStartTime(rows[i].StartTime)
	}
	return rows, nil
}

// AggregateForVenue partitions a venue's shows around now. A show
// starting exactly at now falls in neither bucket; both comparisons are
// strict. Buckets keep the query's ascending start order.
func (s *ShowService) AggregateForVenue(ctx context.Context, venueID int64, now time.Time) (*models.VenueShows, error) {
	rows, err := s.DB.ShowsAtVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	agg := &models.VenueShows{
		Past:     []models.ShowAtVenue{},
		Upcoming: []models.ShowAtVenue{},
	}
	for _, row := range rows {
		entry := models.ShowAtVenue{
			ArtistID:        row.ArtistID,
			ArtistName:      row.ArtistName,
			ArtistImageLink: row.ArtistImageLink,
			StartTime:       utils.FormatStartTime(row.StartTime),
		}
		switch {
		case row.StartTime.Before(now):
			agg.Past = append(agg.Past, entry)
		case row.StartTime.After(now):
			agg.Upcoming = append(agg.Upcoming, entry)
		}
	}
	agg.PastCount = len(agg.Past)
	agg.UpcomingCount = len(agg.Upcoming)
	return agg, nil
}

// AggregateForArtist is the artist-side partition, with the venue as
// the counterpart entity.
func (s *ShowService) AggregateForArtist(ctx context.Context, artistID int64, now time.Time) (*models.ArtistShows, error) {
	rows, err := s.DB.ShowsByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	agg := &models.ArtistShows{
		Past:     []models.ShowByArtist{},
		Upcoming: []models.ShowByArtist{},
	}
	for _, row := range rows {
		entry := models.ShowByArtist{
			VenueID:        row.VenueID,
			VenueName:      row.VenueName,
			VenueImageLink: row.VenueImageLink,
			StartTime:      utils.FormatStartTime(row.StartTime),
		}
		switch {
		case row.StartTime.Before(now):
			agg.Past = append(agg.Past, entry)
		case row.StartTime.After(now):
			agg.Upcoming = append(agg.Upcoming, entry)
		}
	}
	agg.PastCount = len(agg.Past)
	agg.UpcomingCount = len(agg.Upcoming)
	return agg, nil
}
