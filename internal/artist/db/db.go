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

// GetArtistByID fetches one artist or storage.ErrNotFound.
func (d *DB) GetArtistByID(ctx context.Context, id int64) (*models.Artist, error) {
	var artist models.Artist
	err := d.Bun.NewSelect().
		Model(&artist).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return &artist, nil
}

// ListArtists returns the id+name pairs of all artists.
func (d *DB) ListArtists(ctx context.Context) ([]models.EntityRef, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Column("id", "name").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}

	refs := make([]models.EntityRef, len(artists))
	for i, a := range artists {
		refs[i] = models.EntityRef{ID: a.ID, Name: a.Name}
	}
	return refs, nil
}

// SearchArtistsByName matches the name field case-insensitively on a
// substring.
func (d *DB) SearchArtistsByName(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, storage.MapError(err)
	}
	return artists, nil
}

// CreateArtist inserts the artist in one transaction and fills in the
// assigned id.
func (d *DB) CreateArtist(ctx context.Context, artist *models.Artist) error {
	err := d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(artist).Returning("id").Exec(ctx)
		return err
	})
	return storage.MapError(err)
}

// UpdateArtist rewrites the form-backed columns of an existing artist.
func (d *DB) UpdateArtist(ctx context.Context, artist *models.Artist) error {
	err := d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model(artist).
			Column("name", "city", "state", "phone", "genres", "facebook_link").
			Where("id = ?", artist.ID).
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
