package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/uptrace/bun"

	"ms-booking/internal/models"
	"ms-booking/internal/storage"
)

type DB struct {
	Bun *bun.DB
}

// GetVenueByID fetches one venue or storage.ErrNotFound.
func (d *DB) GetVenueByID(ctx context.Context, id int64) (*models.Venue, error) {
	var venue models.Venue
	err := d.Bun.NewSelect().
		Model(&venue).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return &venue, nil
}

// ListVenuesByCity returns all venues grouped by city+state in one read,
// ordered by city, state, then id.
func (d *DB) ListVenuesByCity(ctx context.Context) ([]models.CityVenues, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Order("city ASC", "state ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}

	var grouped []models.CityVenues
	for _, v := range venues {
		n := len(grouped)
		if n == 0 || grouped[n-1].City != v.City || grouped[n-1].State != v.State {
			grouped = append(grouped, models.CityVenues{City: v.City, State: v.State})
			n++
		}
		grouped[n-1].Venues = append(grouped[n-1].Venues, models.EntityRef{ID: v.ID, Name: v.Name})
	}
	return grouped, nil
}

// SearchVenuesByName matches the name field case-insensitively on a
// substring. No ranking, no pagination.
func (d *DB) SearchVenuesByName(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return venues, nil
}

// CreateVenue inserts the venue in one transaction and fills in the
// assigned id.
func (d *DB) CreateVenue(ctx context.Context, venue *models.Venue) error {
	err := d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(venue).Returning("id").Exec(ctx)
		return err
	})
	return storage.MapError(err)
}

// UpdateVenue rewrites the form-backed columns of an existing venue.
func (d *DB) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	err := d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model(venue).
			Column("name", "city", "state", "address", "phone", "genres", "facebook_link").
			Where("id = ?", venue.ID).
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
	return storage.MapError(err)
}

// DeleteVenue removes one venue. Deletion is refused while shows still
// reference the venue.
func (d *DB) DeleteVenue(ctx context.Context, id int64) error {
	err := d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		shows, err := tx.NewSelect().
			Model((*models.Show)(nil)).
			Where("venue_id = ?", id).
			Count(ctx)
		if err != nil {
			return err
		}
		if shows > 0 {
			return storage.ErrConflict
		}

		res, err := tx.NewDelete().
			Model((*models.Venue)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
	return storage.MapError(err)
}
