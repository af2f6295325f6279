package models

import (
	"github.com/uptrace/bun"
)

type Venue struct {
	bun.BaseModel `bun:"table:venues,alias:venue"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Name         string    `bun:"name,notnull" json:"name"`
	City         string    `bun:"city,notnull" json:"city"`
	State        string    `bun:"state,notnull" json:"state"`
	Address      string    `bun:"address,nullzero" json:"address,omitempty"`
	Phone        string    `bun:"phone,nullzero" json:"phone,omitempty"`
	Genres       GenreList `bun:"genres,notnull,type:text" json:"genres"`
	ImageLink    string    `bun:"image_link,nullzero" json:"image_link,omitempty"`
	FacebookLink string    `bun:"facebook_link,nullzero" json:"facebook_link,omitempty"`
}

// VenueForm carries the fields submitted by the venue create/edit forms.
// Image link is not part of the current forms and is never overwritten here.
type VenueForm struct {
	Name         string
	City         string
	State        string
	Address      string
	Phone        string
	Genres       []string
	FacebookLink string
}

func (f VenueForm) Apply(v *Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.Genres = GenreList(f.Genres)
	v.FacebookLink = f.FacebookLink
}
