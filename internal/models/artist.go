package models

import (
	"github.com/uptrace/bun"
)

type Artist struct {
	bun.BaseModel `bun:"table:artists,alias:artist"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Name         string    `bun:"name,notnull" json:"name"`
	City         string    `bun:"city,notnull" json:"city"`
	State        string    `bun:"state,notnull" json:"state"`
	Phone        string    `bun:"phone,nullzero" json:"phone,omitempty"`
	Genres       GenreList `bun:"genres,notnull,type:text" json:"genres"`
	ImageLink    string    `bun:"image_link,nullzero" json:"image_link,omitempty"`
	FacebookLink string    `bun:"facebook_link,nullzero" json:"facebook_link,omitempty"`

	// Present in the schema but not populated by the current forms.
	Website            string `bun:"website,nullzero" json:"website,omitempty"`
	SeekingVenue       bool   `bun:"seeking_venue,nullzero" json:"seeking_venue,omitempty"`
	SeekingDescription string `bun:"seeking_description,nullzero" json:"seeking_description,omitempty"`
}

// ArtistForm carries the fields submitted by the artist create/edit forms.
type ArtistForm struct {
	Name         string
	City         string
	State        string
	Phone        string
	Genres       []string
	FacebookLink string
}

func (f ArtistForm) Apply(a *Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.Genres = GenreList(f.Genres)
	a.FacebookLink = f.FacebookLink
}
