package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	tombolos "github.com/AlexandrosLiaskos/Tombolos"
)

// Service is the gateway surface the HTTP layer depends on.
type Service interface {
	Health() tombolos.Health
	Routes() []tombolos.Route
	Index(ctx context.Context) (tombolos.Asset, io.ReadSeekCloser, error)
	Named(ctx context.Context, pattern string) (tombolos.Asset, io.ReadSeekCloser, error)
	Favicon(ctx context.Context) (tombolos.Asset, io.ReadSeekCloser, error)
	FaviconSVG(ctx context.Context) (tombolos.Asset, io.ReadSeekCloser, error)
	Static(ctx context.Context, path string) (tombolos.Asset, io.ReadSeekCloser, error)
}

// CORSConfig controls the cross-origin policy applied to every response.
type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type HandlerConfig struct {
	CORS CORSConfig
}

// Handler provides HTTP handlers for the static gateway routes.
type Handler struct {
	config  HandlerConfig
	service Service
}

// NewHandler creates a new Handler with the given configuration and service.
func NewHandler(config *HandlerConfig, service Service) *Handler {
	return &Handler{
		config:  *config,
		service: service,
	}
}

// Router returns an http.Handler with the full route table configured.
// The router is immutable after this call; requests share no mutable state.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger)

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Get("/", h.handleIndex)
	r.Get("/health", h.handleHealth)
	r.Get("/favicon.svg", h.handleFaviconSVG)
	r.Get("/favicon.ico", h.handleFavicon)

	for _, rt := range h.service.Routes() {
		r.Get(rt.Pattern, h.handleNamed)
	}

	r.Get("/static/*", h.handleStatic)

	return r
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	asset, content, err := h.service.Index(r.Context())
	if err != nil {
		if errors.Is(err, tombolos.ErrNotFound) {
			// The map frontend may not be deployed yet; answer with a
			// placeholder instead of a 404.
			writeIndexFallback(w)
			return
		}
		HandleError(w, err)
		return
	}
	defer func() { _ = content.Close() }()

	serveAsset(w, r, asset, content)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = WriteJSON(w, http.StatusOK, h.service.Health())
}

func (h *Handler) handleFaviconSVG(w http.ResponseWriter, r *http.Request) {
	asset, content, err := h.service.FaviconSVG(r.Context())
	if err != nil {
		if errors.Is(err, tombolos.ErrNotFound) {
			writeFaviconNotFound(w)
			return
		}
		HandleError(w, err)
		return
	}
	defer func() { _ = content.Close() }()

	serveAsset(w, r, asset, content)
}

func (h *Handler) handleFavicon(w http.ResponseWriter, r *http.Request) {
	asset, content, err := h.service.Favicon(r.Context())
	if err != nil {
		if errors.Is(err, tombolos.ErrNotFound) {
			writeFaviconNotFound(w)
			return
		}
		HandleError(w, err)
		return
	}
	defer func() { _ = content.Close() }()

	serveAsset(w, r, asset, content)
}

func (h *Handler) handleNamed(w http.ResponseWriter, r *http.Request) {
	asset, content, err := h.service.Named(r.Context(), r.URL.Path)
	if err != nil {
		if errors.Is(err, tombolos.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "not_found", "Asset not found")
			return
		}
		HandleError(w, err)
		return
	}
	defer func() { _ = content.Close() }()

	serveAsset(w, r, asset, content)
}

func (h *Handler) handleStatic(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/static/")

	asset, content, err := h.service.Static(r.Context(), path)
	if err != nil {
		if errors.Is(err, tombolos.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "not_found", "Asset not found")
			return
		}
		HandleError(w, err)
		return
	}
	defer func() { _ = content.Close() }()

	serveAsset(w, r, asset, content)
}

// serveAsset streams the asset with its resolved media type. ServeContent
// handles Last-Modified and range requests; it keeps the Content-Type we set.
func serveAsset(w http.ResponseWriter, r *http.Request, asset tombolos.Asset, content io.ReadSeeker) {
	w.Header().Set("Content-Type", asset.ContentType)
	http.ServeContent(w, r, asset.Path, asset.ModTime, content)
}
