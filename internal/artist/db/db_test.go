package db_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"ms-booking/internal/artist/db"
	"ms-booking/internal/models"
	"ms-booking/internal/storage"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = bunDB.NewCreateTable().Model((*models.Artist)(nil)).Exec(context.Background())
	if err != nil {
		t.Fatalf("Failed to create artists table: %v", err)
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func TestCreateAndGetArtist(t *testing.T) {
	artistDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	created := models.Artist{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "326-123-5000",
		Genres:       models.GenreList{"Rock n Roll"},
		FacebookLink: "https://www.facebook.com/GunsNPetals",
	}

	err := artistDB.CreateArtist(context.Background(), &created)
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	artist, err := artistDB.GetArtistByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Guns N Petals", artist.Name)
	assert.Equal(t, "San Francisco", artist.City)
	assert.Equal(t, models.GenreList{"Rock n Roll"}, artist.Genres)

	artist, err = artistDB.GetArtistByID(context.Background(), 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Nil(t, artist)
}

func TestListArtists(t *testing.T) {
	artistDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	artists := []models.Artist{
		{Name: "Guns N Petals", City: "San Francisco", State: "CA", Genres: models.GenreList{"Rock n Roll"}},
		{Name: "Matt Quevedo", City: "New York", State: "NY", Genres: models.GenreList{"Jazz"}},
	}
	_, err := bunDB.NewInsert().Model(&artists).Exec(context.Background())
	assert.NoError(t, err)

	refs, err := artistDB.ListArtists(context.Background())
	assert.NoError(t, err)
	assert.Len(t, refs, 2)
	assert.Equal(t, artists[0].ID, refs[0].ID)
	assert.Equal(t, "Guns N Petals", refs[0].Name)
	assert.Equal(t, "Matt Quevedo", refs[1].Name)
}

func TestSearchArtistsByName(t *testing.T) {
	artistDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	artists := []models.Artist{
		{Name: "Guns N Petals", City: "San Francisco", State: "CA", Genres: models.GenreList{"Rock n Roll"}},
		{Name: "Matt Quevedo", City: "New York", State: "NY", Genres: models.GenreList{"Jazz"}},
		{Name: "The Wild Sax Band", City: "San Francisco", State: "CA", Genres: models.GenreList{"Jazz"}},
	}
	_, err := bunDB.NewInsert().Model(&artists).Exec(context.Background())
	assert.NoError(t, err)

	// "band" matches only through case folding
	found, err := artistDB.SearchArtistsByName(context.Background(), "band")
	assert.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "The Wild Sax Band", found[0].Name)

	found, err = artistDB.SearchArtistsByName(context.Background(), "a")
	assert.NoError(t, err)
	assert.Len(t, found, 3)
}

func TestUpdateArtist(t *testing.T) {
	artistDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	created := models.Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Genres:             models.GenreList{"Rock n Roll"},
		Website:            "https://www.gunsnpetalsband.com",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	}
	err := artistDB.CreateArtist(context.Background(), &created)
	assert.NoError(t, err)

	created.Name = "Guns N Petals Revival"
	created.City = "Oakland"
	err = artistDB.UpdateArtist(context.Background(), &created)
	assert.NoError(t, err)

	updated, err := artistDB.GetArtistByID(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Guns N Petals Revival", updated.Name)
	assert.Equal(t, "Oakland", updated.City)
	// Columns outside the edit form keep their stored values
	assert.Equal(t, "https://www.gunsnpetalsband.com", updated.Website)
	assert.True(t, updated.SeekingVenue)
	assert.Equal(t, "Looking for shows to perform at in the San Francisco Bay Area!", updated.SeekingDescription)

	missing := models.Artist{ID: 9999, Name: "Ghost", City: "Nowhere", State: "NA", Genres: models.GenreList{}}
	err = artistDB.UpdateArtist(context.Background(), &missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
