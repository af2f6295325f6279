package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"ms-booking/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the envelope handed to every template.
type Page struct {
	Flashes []string
	Data    interface{}
}

// Renderer executes the embedded page templates.
type Renderer struct {
	templates *template.Template
	Logger    *logger.Logger
}

func NewRenderer(log *logger.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl, Logger: log}, nil
}

// Render writes one page. Template failures after the header is sent
// can only be logged.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, flashes []string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := r.templates.ExecuteTemplate(w, name, Page{Flashes: flashes, Data: data}); err != nil {
		if r.Logger != nil {
			r.Logger.Error("RENDER", fmt.Sprintf("template %s: %v", name, err))
		}
	}
}

// NotFound renders the 404 error page.
func (r *Renderer) NotFound(w http.ResponseWriter, req *http.Request) {
	r.Render(w, http.StatusNotFound, "404.html", nil, nil)
}

// ServerError renders the 500 error page.
func (r *Renderer) ServerError(w http.ResponseWriter, req *http.Request) {
	r.Render(w, http.StatusInternalServerError, "500.html", nil, nil)
}

// Recoverer converts handler panics into the 500 page.
func (r *Renderer) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if r.Logger != nil {
					r.Logger.Error("HTTP", fmt.Sprintf("panic serving %s %s: %v", req.Method, req.URL.Path, rec))
				}
				r.ServerError(w, req)
			}
		}()
		next.ServeHTTP(w, req)
	})
}
