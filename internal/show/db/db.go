package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"

	"ms-booking/internal/models"
	"ms-booking/internal/storage"
)

type DB struct {
	Bun *bun.DB
}

// CreateShow inserts the show in one transaction. A nonexistent artist
// or venue reference fails with storage.ErrIntegrity and leaves the
// table unchanged.
func (d *DB) CreateShow(ctx context.Context, show *models.Show) error {
	err := d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(show).Returning("id").Exec(ctx)
		return err
	})
	return storage.MapError(err)
}

// ListUpcoming returns all shows starting strictly after now, joined
// with the venue and artist display fields, ascending by start time.
func (d *DB) ListUpcoming(ctx context.Context, now time.Time) ([]models.ShowListingRow, error) {
	var rows []models.ShowListingRow
	err := d.Bun.NewSelect().
		Model((*models.Show)(nil)).
		ColumnExpr("show.venue_id").
		ColumnExpr("v.name AS venue_name").
		ColumnExpr("show.artist_id").
		ColumnExpr("a.name AS artist_name").
		ColumnExpr("a.image_link AS artist_image_link").
		ColumnExpr("show.start_time").
		Join("JOIN venues v ON v.id = show.venue_id").
		Join("JOIN artists a ON a.id = show.artist_id").
		Where("show.start_time > ?", now).
		OrderExpr("show.start_time ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return rows, nil
}

// ShowsAtVenue returns every show at a venue joined with the performing
// artist, ascending by start time. The caller partitions past/upcoming.
func (d *DB) ShowsAtVenue(ctx context.Context, venueID int64) ([]models.VenueShowRow, error) {
	var rows []models.VenueShowRow
	err := d.Bun.NewSelect().
		Model((*models.Show)(nil)).
		ColumnExpr("show.artist_id").
		ColumnExpr("a.name AS artist_name").
		ColumnExpr("a.image_link AS artist_image_link").
		ColumnExpr("show.start_time").
		Join("JOIN artists a ON a.id = show.artist_id").
		Where("show.venue_id = ?", venueID).
		OrderExpr("show.start_time ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return rows, nil
}

// ShowsByArtist returns every show of an artist joined with the hosting
// venue, ascending by start time.
func (d *DB) ShowsByArtist(ctx context.Context, artistID int64) ([]models.ArtistShowRow, error) {
	var rows []models.ArtistShowRow
	err := d.Bun.NewSelect().
		Model((*models.Show)(nil)).
		ColumnExpr("show.venue_id").
		ColumnExpr("v.name AS venue_name").
		ColumnExpr("v.image_link AS venue_image_link").
		ColumnExpr("show.start_time").
		Join("JOIN venues v ON v.id = show.venue_id").
		Where("show.artist_id = ?", artistID).
		OrderExpr("show.start_time ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return rows, nil
}
