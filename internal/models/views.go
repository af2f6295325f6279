package models

import "time"

// EntityRef is the id+name pair rendered in overview and search listings.
type EntityRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CityVenues groups the venues of one city+state pairing.
type CityVenues struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []EntityRef `json:"venues"`
}

// SearchResults is the response shape of the search endpoints.
type SearchResults struct {
	Count int         `json:"count"`
	Data  []EntityRef `json:"data"`
}

// VenueShowRow is one joined row of shows at a venue with the performing
// artist's display fields.
type VenueShowRow struct {
	ArtistID        int64     `bun:"artist_id"`
	ArtistName      string    `bun:"artist_name"`
	ArtistImageLink string    `bun:"artist_image_link"`
	StartTime       time.Time `bun:"start_time"`
}

// ArtistShowRow is one joined row of an artist's shows with the hosting
// venue's display fields.
type ArtistShowRow struct {
	VenueID        int64     `bun:"venue_id"`
	VenueName      string    `bun:"venue_name"`
	VenueImageLink string    `bun:"venue_image_link"`
	StartTime      time.Time `bun:"start_time"`
}

// ShowListingRow is one joined row of the /shows listing.
type ShowListingRow struct {
	VenueID         int64     `bun:"venue_id" json:"venue_id"`
	VenueName       string    `bun:"venue_name" json:"venue_name"`
	ArtistID        int64     `bun:"artist_id" json:"artist_id"`
	ArtistName      string    `bun:"artist_name" json:"artist_name"`
	ArtistImageLink string    `bun:"artist_image_link" json:"artist_image_link"`
	StartTime       time.Time `bun:"start_time" json:"-"`

	StartTimeText string `bun:"-" json:"start_time"`
}

// ShowAtVenue is one entry in a venue page's past/upcoming buckets.
type ShowAtVenue struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ShowByArtist is one entry in an artist page's past/upcoming buckets.
type ShowByArtist struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// VenueShows is the aggregated past/upcoming partition for a venue.
type VenueShows struct {
	Past          []ShowAtVenue `json:"past_shows"`
	Upcoming      []ShowAtVenue `json:"upcoming_shows"`
	PastCount     int           `json:"past_shows_count"`
	UpcomingCount int           `json:"upcoming_shows_count"`
}

// ArtistShows is the aggregated past/upcoming partition for an artist.
type ArtistShows struct {
	Past          []ShowByArtist `json:"past_shows"`
	Upcoming      []ShowByArtist `json:"upcoming_shows"`
	PastCount     int            `json:"past_shows_count"`
	UpcomingCount int            `json:"upcoming_shows_count"`
}

// VenuePage is the assembled data for a venue detail page.
type VenuePage struct {
	Venue
	VenueShows
}

// ArtistPage is the assembled data for an artist detail page.
type ArtistPage struct {
	Artist
	ArtistShows
}
