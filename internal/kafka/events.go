package kafka

import (
	"encoding/json"
	"strconv"

	"ms-booking/internal/config"
	"ms-booking/internal/models"
)

// event wraps an entity payload with the action that produced it.
type event struct {
	Action string      `json:"action"`
	Entity interface{} `json:"entity,omitempty"`
	ID     int64       `json:"id,omitempty"`
}

// Events publishes listing changes to the booking topics. It satisfies
// the EventPublisher interfaces of the venue, artist and show services.
type Events struct {
	Producer *Producer
	Topics   config.TopicConfig
}

func NewEvents(producer *Producer, topics config.TopicConfig) *Events {
	return &Events{Producer: producer, Topics: topics}
}

func (e *Events) publish(topic, key string, ev event) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return e.Producer.Publish(topic, key, value)
}

func (e *Events) PublishVenueCreated(venue models.Venue) error {
	return e.publish(e.Topics.Venues, strconv.FormatInt(venue.ID, 10), event{Action: "created", Entity: venue})
}

func (e *Events) PublishVenueUpdated(venue models.Venue) error {
	return e.publish(e.Topics.Venues, strconv.FormatInt(venue.ID, 10), event{Action: "updated", Entity: venue})
}

func (e *Events) PublishVenueDeleted(id int64) error {
	return e.publish(e.Topics.Venues, strconv.FormatInt(id, 10), event{Action: "deleted", ID: id})
}

func (e *Events) PublishArtistCreated(artist models.Artist) error {
	return e.publish(e.Topics.Artists, strconv.FormatInt(artist.ID, 10), event{Action: "created", Entity: artist})
}

func (e *Events) PublishArtistUpdated(artist models.Artist) error {
	return e.publish(e.Topics.Artists, strconv.FormatInt(artist.ID, 10), event{Action: "updated", Entity: artist})
}

func (e *Events) PublishShowCreated(show models.Show) error {
	return e.publish(e.Topics.Shows, strconv.FormatInt(show.ID, 10), event{Action: "created", Entity: show})
}
