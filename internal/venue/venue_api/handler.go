package venue_api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"ms-booking/internal/logger"
	"ms-booking/internal/models"
	"ms-booking/internal/storage"
	"ms-booking/internal/web"
)

type VenueService interface {
	Get(ctx context.Context, id int64) (*models.Venue, error)
	ListByCity(ctx context.Context) ([]models.CityVenues, error)
	Search(ctx context.Context, term string) (*models.SearchResults, error)
	Create(ctx context.Context, form models.VenueForm) (*models.Venue, error)
	Update(ctx context.Context, id int64, form models.VenueForm) (*models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

type ShowAggregator interface {
	AggregateForVenue(ctx context.Context, venueID int64, now time.Time) (*models.VenueShows, error)
}

type FlashStore interface {
	Add(ctx context.Context, w http.ResponseWriter, r *http.Request, message string)
	Pop(ctx context.Context, w http.ResponseWriter, r *http.Request) []string
}

type Handler struct {
	Venues   VenueService
	Shows    ShowAggregator
	Flash    FlashStore
	Renderer *web.Renderer
	Logger   *logger.Logger
}

func NewHandler(venues VenueService, shows ShowAggregator, flash FlashStore, renderer *web.Renderer, log *logger.Logger) *Handler {
	return &Handler{Venues: venues, Shows: shows, Flash: flash, Renderer: renderer, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/venues", func(r chi.Router) {
		r.Get("/", h.ListVenues)
		r.Post("/search", h.SearchVenues)
		r.Get("/create", h.NewVenueForm)
		r.Post("/create", h.CreateVenue)
		r.Get("/{venueID}", h.ShowVenue)
		r.Delete("/{venueID}", h.DeleteVenue)
		r.Get("/{venueID}/edit", h.EditVenueForm)
		r.Post("/{venueID}/edit", h.UpdateVenue)
	})
}

type searchPage struct {
	SearchTerm string
	Results    *models.SearchResults
}

func venueID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := h.Venues.ListByCity(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListVenues: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	flashes := h.Flash.Pop(r.Context(), w, r)
	h.Renderer.Render(w, http.StatusOK, "venues.html", flashes, areas)
}

func (h *Handler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")
	results, err := h.Venues.Search(r.Context(), term)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchVenues %q: %v", term, err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("SearchVenues %q: %d results", term, results.Count))
	h.Renderer.Render(w, http.StatusOK, "search_venues.html", nil, searchPage{SearchTerm: term, Results: results})
}

func (h *Handler) ShowVenue(w http.ResponseWriter, r *http.Request) {
	id, err := venueID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	venue, err := h.Venues.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Logger.Error("API", fmt.Sprintf("ShowVenue %d: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}

	shows, err := h.Shows.AggregateForVenue(r.Context(), id, time.Now())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ShowVenue %d: aggregate: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}

	flashes := h.Flash.Pop(r.Context(), w, r)
	h.Renderer.Render(w, http.StatusOK, "show_venue.html", flashes, models.VenuePage{Venue: *venue, VenueShows: *shows})
}

func (h *Handler) NewVenueForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "new_venue.html", nil, nil)
}

func venueFormFromRequest(r *http.Request) models.VenueForm {
	r.ParseForm()
	return models.VenueForm{
		Name:         r.FormValue("name"),
		City:         r.FormValue("city"),
		State:        r.FormValue("state"),
		Address:      r.FormValue("address"),
		Phone:        r.FormValue("phone"),
		Genres:       r.Form["genres"],
		FacebookLink: r.FormValue("facebook_link"),
	}
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	form := venueFormFromRequest(r)

	venue, err := h.Venues.Create(r.Context(), form)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateVenue: %v", err))
		message := "Venue " + form.Name + " was not listed! Something wrong happened!"
		h.Renderer.Render(w, web.StatusFor(err), "home.html", []string{message}, nil)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreateVenue: created venue %d", venue.ID))
	h.Flash.Add(r.Context(), w, r, "Venue "+venue.Name+" was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, err := venueID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}
	venue, err := h.Venues.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.Render(w, http.StatusOK, "edit_venue.html", nil, venue)
}

func (h *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := venueID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	form := venueFormFromRequest(r)
	venue, err := h.Venues.Update(r.Context(), id, form)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Logger.Error("API", fmt.Sprintf("UpdateVenue %d: %v", id, err))
		message := "Venue " + form.Name + " could not be updated!"
		h.Renderer.Render(w, web.StatusFor(err), "home.html", []string{message}, nil)
		return
	}

	h.Flash.Add(r.Context(), w, r, "Venue "+venue.Name+" was successfully updated!")
	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}

func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := venueID(r)
	if err != nil {
		http.Error(w, "Invalid venue id", http.StatusNotFound)
		return
	}

	if err := h.Venues.Delete(r.Context(), id); err != nil {
		h.Logger.Error("API", fmt.Sprintf("DeleteVenue %d: %v", id, err))
		switch {
		case errors.Is(err, storage.ErrNotFound):
			http.Error(w, "Venue not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrConflict):
			http.Error(w, "Venue still has shows", http.StatusConflict)
		default:
			http.Error(w, "Could not delete venue", http.StatusInternalServerError)
		}
		return
	}

	h.Logger.Info("API", fmt.Sprintf("DeleteVenue: deleted venue %d", id))
	w.WriteHeader(http.StatusNoContent)
}
