package show_api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"ms-booking/internal/logger"
	"ms-booking/internal/models"
	"ms-booking/internal/storage"
	"ms-booking/internal/utils"
	"ms-booking/internal/web"
)

type ShowService interface {
	Create(ctx context.Context, form models.ShowForm) (*models.Show, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]models.ShowListingRow, error)
}

type FlashStore interface {
	Add(ctx context.Context, w http.ResponseWriter, r *http.Request, message string)
	Pop(ctx context.Context, w http.ResponseWriter, r *http.Request) []string
}

type Handler struct {
	Shows    ShowService
	Flash    FlashStore
	Renderer *web.Renderer
	Logger   *logger.Logger
}

func NewHandler(shows ShowService, flash FlashStore, renderer *web.Renderer, log *logger.Logger) *Handler {
	return &Handler{Shows: shows, Flash: flash, Renderer: renderer, Logger: log}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/shows", func(r chi.Router) {
		r.Get("/", h.ListShows)
		r.Get("/create", h.NewShowForm)
		r.Post("/create", h.CreateShow)
	})
}

func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.Shows.ListUpcoming(r.Context(), time.Now())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListShows: %v", err))
		h.Renderer.ServerError(w, r)
		return
	}
	flashes := h.Flash.Pop(r.Context(), w, r)
	h.Renderer.Render(w, http.StatusOK, "shows.html", flashes, shows)
}

func (h *Handler) NewShowForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "new_show.html", nil, nil)
}

func (h *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	r.ParseForm()
	form, err := showFormFromRequest(r)
	if err == nil {
		_, err = h.Shows.Create(r.Context(), form)
	}
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateShow: %v", err))
		h.Renderer.Render(w, web.StatusFor(err), "home.html", []string{"An error occurred. Show could not be listed."}, nil)
		return
	}

	h.Logger.Info("API", "CreateShow: show listed")
	h.Flash.Add(r.Context(), w, r, "Show was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func showFormFromRequest(r *http.Request) (models.ShowForm, error) {
	artistID, err := strconv.ParseInt(r.FormValue("artist_id"), 10, 64)
	if err != nil {
		return models.ShowForm{}, fmt.Errorf("%w: invalid artist_id", storage.ErrValidation)
	}
	venueID, err := strconv.ParseInt(r.FormValue("venue_id"), 10, 64)
	if err != nil {
		return models.ShowForm{}, fmt.Errorf("%w: invalid venue_id", storage.ErrValidation)
	}
	startTime, err := utils.ParseStartTime(r.FormValue("start_time"))
	if err != nil {
		return models.ShowForm{}, fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}
	return models.ShowForm{ArtistID: artistID, VenueID: venueID, StartTime: startTime}, nil
}
