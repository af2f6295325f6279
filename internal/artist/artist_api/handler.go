package artist_api

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

type ArtistService interface {
	Get(ctx context.Context, id int64) (*models.Artist, error)
	List(ctx context.Context) ([]models.EntityRef, error)
	Search(ctx context.Context, term string) (*models.SearchResults, error)
	Create(ctx context.Context, form models.ArtistForm) (*models.Artist, error)
	Update(ctx context.Context, id int64, form models.ArtistForm) (*models.Artist, error)
}

type ShowAggregator interface {
	AggregateForArtist(ctx context.Context, artistID int64, now time.Time) (*models.ArtistShows, error)
}

type FlashStore interface {
	Add(ctx context.Context, w http.ResponseWriter, r *http.Request, message string)
	Pop(ctx context.Context, w http.ResponseWriter, r *http.Request) []string
}

type Handler struct {
	Artists  ArtistService
	Shows    ShowAggregator
	Flash    FlashStore
	Renderer *web.Renderer
	Logger   *logger.Logger
}

func NewHandler(artists ArtistService, shows ShowAggregator, flash FlashStore, renderer *web.Renderer, log *logger.Logger) *Handler {
	return &Handler{Artists: artists, Shows: shows, Flash: flash, Renderer: renderer, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/artists", func(r chi.Router) {
		r.Get("/", h.ListArtists)
		r.Post("/search", h.SearchArtists)
		r.Get("/create", h.NewArtistForm)
		r.Post("/create", h.CreateArtist)
		r.Get("/{artistID}", h.ShowArtist)
		r.Get("/{artistID}/edit", h.EditArtistForm)
		r.Post("/{artistID}/edit", h.UpdateArtist)
	})
}

type searchPage struct {
	SearchTerm string
	Results    *models.SearchResults
}

func artistID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "artistID"), 10, 64)
}

func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.Artists.List(r.Context())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListArtists: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	flashes := h.Flash.Pop(r.Context(), w, r)
	h.Renderer.Render(w, http.StatusOK, "artists.html", flashes, artists)
}

func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")
	results, err := h.Artists.Search(r.Context(), term)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("SearchArtists %q: %v", term, err))
		h.Renderer.ServerError(w, r)
		return
	}
	h.Logger.Info("API", fmt.Sprintf("SearchArtists %q: %d results", term, results.Count))
	h.Renderer.Render(w, http.StatusOK, "search_artists.html", nil, searchPage{SearchTerm: term, Results: results})
}

func (h *Handler) ShowArtist(w http.ResponseWriter, r *http.Request) {
	id, err := artistID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	artist, err := h.Artists.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Logger.Error("API", fmt.Sprintf("ShowArtist %d: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}

	shows, err := h.Shows.AggregateForArtist(r.Context(), id, time.Now())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ShowArtist %d: aggregate: %v", id, err))
		h.Renderer.ServerError(w, r)
		return
	}

	flashes := h.Flash.Pop(r.Context(), w, r)
	h.Renderer.Render(w, http.StatusOK, "show_artist.html", flashes, models.ArtistPage{Artist: *artist, ArtistShows: *shows})
}

func (h *Handler) NewArtistForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "new_artist.html", nil, nil)
}

func artistFormFromRequest(r *http.Request) models.ArtistForm {
	r.ParseForm()
	return models.ArtistForm{
		Name:         r.FormValue("name"),
		City:         r.FormValue("city"),
		State:        r.FormValue("state"),
		Phone:        r.FormValue("phone"),
		Genres:       r.Form["genres"],
		FacebookLink: r.FormValue("facebook_link"),
	}
}

func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	form := artistFormFromRequest(r)

	artist, err := h.Artists.Create(r.Context(), form)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateArtist: %v", err))
		message := "Artist " + form.Name + " was not listed! Something wrong happened!"
		h.Renderer.Render(w, web.StatusFor(err), "home.html", []string{message}, nil)
		return
	}

	h.Logger.Info("API", fmt.Sprintf("CreateArtist: created artist %d", artist.ID))
	h.Flash.Add(r.Context(), w, r, "Artist "+artist.Name+" was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, err := artistID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}
	artist, err := h.Artists.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Renderer.ServerError(w, r)
		return
	}
	h.Renderer.Render(w, http.StatusOK, "edit_artist.html", nil, artist)
}

func (h *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := artistID(r)
	if err != nil {
		h.Renderer.NotFound(w, r)
		return
	}

	form := artistFormFromRequest(r)
	artist, err := h.Artists.Update(r.Context(), id, form)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.Renderer.NotFound(w, r)
			return
		}
		h.Logger.Error("API", fmt.Sprintf("UpdateArtist %d: %v", id, err))
		message := "Artist " + form.Name + " could not be updated!"
		h.Renderer.Render(w, web.StatusFor(err), "home.html", []string{message}, nil)
		return
	}

	h.Flash.Add(r.Context(), w, r, "Artist "+artist.Name+" was successfully updated!")
	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}
