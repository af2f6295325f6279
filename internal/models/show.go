package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Show struct {
	bun.BaseModel `bun:"table:shows,alias:show"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	ArtistID  int64     `bun:"artist_id,notnull" json:"artist_id"`
	VenueID   int64     `bun:"venue_id,notnull" json:"venue_id"`
	StartTime time.Time `bun:"start_time,notnull" json:"start_time"`

	Artist *Artist `bun:"rel:belongs-to,join:artist_id=id" json:"-"`
	Venue  *Venue  `bun:"rel:belongs-to,join:venue_id=id" json:"-"`
}

// ShowForm carries the fields submitted by the show create form.
type ShowForm struct {
	ArtistID  int64
	VenueID   int64
	StartTime time.Time
}
