package venue_api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"ms-booking/internal/logger"
	"ms-booking/internal/models"
	"ms-booking/internal/storage"
	"ms-booking/internal/venue/venue_api"
	"ms-booking/internal/web"
)

// MockVenueService is a mock implementation of the venue service used for testing handlers
type MockVenueService struct {
	venues        map[int64]*models.Venue
	nextID        int64
	shouldFailOn  string
	errorToReturn error
}

func NewMockVenueService() *MockVenueService {
	return &MockVenueService{venues: make(map[int64]*models.Venue), nextID: 1}
}

func (m *MockVenueService) SetupFailure(operation string, err error) {
	m.shouldFailOn = operation
	m.errorToReturn = err
}

func (m *MockVenueService) Get(ctx context.Context, id int64) (*models.Venue, error) {
	if m.shouldFailOn == "Get" {
		return nil, m.errorToReturn
	}
	v, ok := m.venues[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return v, nil
}

func (m *MockVenueService) ListByCity(ctx context.Context) ([]models.CityVenues, error) {
	if m.shouldFailOn == "ListByCity" {
		return nil, m.errorToReturn
	}
	var areas []models.CityVenues
	for _, v := range m.venues {
		areas = append(areas, models.CityVenues{
			City: v.City, State: v.State,
			Venues: []models.EntityRef{{ID: v.ID, Name: v.Name}},
		})
	}
	return areas, nil
}

func (m *MockVenueService) Search(ctx context.Context, term string) (*models.SearchResults, error) {
	if m.shouldFailOn == "Search" {
		return nil, m.errorToReturn
	}
	results := &models.SearchResults{Data: []models.EntityRef{}}
	for _, v := range m.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			results.Data = append(results.Data, models.EntityRef{ID: v.ID, Name: v.Name})
		}
	}
	results.Count = len(results.Data)
	return results, nil
}

func (m *MockVenueService) Create(ctx context.Context, form models.VenueForm) (*models.Venue, error) {
	if m.shouldFailOn == "Create" {
		return nil, m.errorToReturn
	}
	v := &models.Venue{ID: m.nextID}
	m.nextID++
	form.Apply(v)
	m.venues[v.ID] = v
	return v, nil
}

func (m *MockVenueService) Update(ctx context.Context, id int64, form models.VenueForm) (*models.Venue, error) {
	if m.shouldFailOn == "Update" {
		return nil, m.errorToReturn
	}
	v, ok := m.venues[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	form.Apply(v)
	return v, nil
}

func (m *MockVenueService) Delete(ctx context.Context, id int64) error {
	if m.shouldFailOn == "Delete" {
		return m.errorToReturn
	}
	if _, ok := m.venues[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.venues, id)
	return nil
}

// MockAggregator returns canned show buckets
type MockAggregator struct {
	shows *models.VenueShows
}

func (m *MockAggregator) AggregateForVenue(ctx context.Context, venueID int64, now time.Time) (*models.VenueShows, error) {
	if m.shows != nil {
		return m.shows, nil
	}
	return &models.VenueShows{Past: []models.ShowAtVenue{}, Upcoming: []models.ShowAtVenue{}}, nil
}

// MockFlash keeps flash messages in memory
type MockFlash struct {
	messages []string
}

func (m *MockFlash) Add(ctx context.Context, w http.ResponseWriter, r *http.Request, message string) {
	m.messages = append(m.messages, message)
}

func (m *MockFlash) Pop(ctx context.Context, w http.ResponseWriter, r *http.Request) []string {
	out := m.messages
	m.messages = nil
	return out
}

func setupRouter(t *testing.T, service *MockVenueService, agg *MockAggregator, flash *MockFlash) chi.Router {
	log := logger.NewLogger()
	t.Cleanup(func() { log.Close() })

	renderer, err := web.NewRenderer(log)
	if err != nil {
		t.Fatalf("Failed to build renderer: %v", err)
	}

	handler := venue_api.NewHandler(service, agg, flash, renderer, log)
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func sampleVenue() *models.Venue {
	return &models.Venue{
		ID:      1,
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Genres:  models.GenreList{"Jazz", "Reggae"},
	}
}

func TestShowVenue(t *testing.T) {
	service := NewMockVenueService()
	service.venues[1] = sampleVenue()
	agg := &MockAggregator{shows: &models.VenueShows{
		Past: []models.ShowAtVenue{},
		Upcoming: []models.ShowAtVenue{
			{ArtistID: 4, ArtistName: "Guns N Petals", StartTime: "2026-09-21 21:30:00"},
		},
		UpcomingCount: 1,
	}}
	router := setupRouter(t, service, agg, &MockFlash{})

	req := httptest.NewRequest("GET", "/venues/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "The Musical Hop")
	assert.Contains(t, body, "Upcoming shows (1)")
	assert.Contains(t, body, "Guns N Petals")
}

func TestShowVenueNotFound(t *testing.T) {
	router := setupRouter(t, NewMockVenueService(), &MockAggregator{}, &MockFlash{})

	req := httptest.NewRequest("GET", "/venues/9999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchVenues(t *testing.T) {
	service := NewMockVenueService()
	service.venues[1] = sampleVenue()
	service.venues[2] = &models.Venue{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"}
	router := setupRouter(t, service, &MockAggregator{}, &MockFlash{})

	form := url.Values{"search_term": {"Hop"}}
	req := httptest.NewRequest("POST", "/venues/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Number of search results: 1")
	assert.Contains(t, body, "The Musical Hop")
	assert.NotContains(t, body, "The Dueling Pianos Bar")
}

func TestCreateVenueRedirectsWithFlash(t *testing.T) {
	service := NewMockVenueService()
	flash := &MockFlash{}
	router := setupRouter(t, service, &MockAggregator{}, flash)

	form := url.Values{
		"name":   {"The Musical Hop"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"genres": {"Jazz", "Reggae"},
	}
	req := httptest.NewRequest("POST", "/venues/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, []string{"Venue The Musical Hop was successfully listed!"}, flash.messages)

	created := service.venues[1]
	assert.NotNil(t, created)
	assert.Equal(t, models.GenreList{"Jazz", "Reggae"}, created.Genres)
}

func TestCreateVenueFailure(t *testing.T) {
	service := NewMockVenueService()
	service.SetupFailure("Create", storage.ErrValidation)
	flash := &MockFlash{}
	router := setupRouter(t, service, &MockAggregator{}, flash)

	form := url.Values{"name": {"The Musical Hop"}}
	req := httptest.NewRequest("POST", "/venues/create", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Rejected submissions render inline, nothing is flashed
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Venue The Musical Hop was not listed!")
	assert.Empty(t, flash.messages)
}

func TestUpdateVenueRedirectsToDetail(t *testing.T) {
	service := NewMockVenueService()
	service.venues[1] = sampleVenue()
	flash := &MockFlash{}
	router := setupRouter(t, service, &MockAggregator{}, flash)

	form := url.Values{
		"name":  {"The Musical Hop 2.0"},
		"city":  {"San Francisco"},
		"state": {"CA"},
	}
	req := httptest.NewRequest("POST", "/venues/1/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/venues/1", w.Header().Get("Location"))
	assert.Equal(t, []string{"Venue The Musical Hop 2.0 was successfully updated!"}, flash.messages)
}

func TestDeleteVenue(t *testing.T) {
	service := NewMockVenueService()
	service.venues[1] = sampleVenue()
	router := setupRouter(t, service, &MockAggregator{}, &MockFlash{})

	req := httptest.NewRequest("DELETE", "/venues/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest("DELETE", "/venues/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteVenueWithShows(t *testing.T) {
	service := NewMockVenueService()
	service.venues[1] = sampleVenue()
	service.SetupFailure("Delete", storage.ErrConflict)
	router := setupRouter(t, service, &MockAggregator{}, &MockFlash{})

	req := httptest.NewRequest("DELETE", "/venues/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
