package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/service"
)

type LibraryHandler struct {
	svc *service.LibraryService
}

func NewLibraryHandler(s *service.LibraryService) *LibraryHandler { return &LibraryHandler{svc: s} }

type toggleResponse struct {
	Added bool              `json:"added"`
	Items []models.MediaDoc `json:"items"`
}

type toggleFn func(ctx context.Context, userID, tmdbID int, mediaType string) (bool, []models.MediaDoc, error)
type setFn func(ctx context.Context, userID int) ([]models.MediaDoc, error)

func (h *LibraryHandler) toggle(w http.ResponseWriter, r *http.Request, fn toggleFn) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())
	tmdbID, mediaType := mediaParams(r)

	added, items, err := fn(r.Context(), userID, tmdbID, mediaType)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(toggleResponse{Added: added, Items: items})
}

func (h *LibraryHandler) getSet(w http.ResponseWriter, r *http.Request, fn setFn) {
	w.Header().Set("Content-Type", "application/json")

	items, err := fn(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []models.MediaDoc{}
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Toggle watchlist
// @Tags library
// @Security BearerAuth
// @Produce json
// @Param mediaType path string true "movie|series"
// @Param tmdbId path int true "id de TMDB"
// @Success 200 {object} toggleResponse
// @Router /me/watchlist/{mediaType}/{tmdbId} [post]
func (h *LibraryHandler) ToggleWatchlist(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.ToggleWatchlist)
}

// @Summary Toggle favoritos
// @Tags library
// @Security BearerAuth
// @Produce json
// @Param mediaType path string true "movie|series"
// @Param tmdbId path int true "id de TMDB"
// @Success 200 {object} toggleResponse
// @Router /me/favorites/{mediaType}/{tmdbId} [post]
func (h *LibraryHandler) ToggleFavorites(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.ToggleFavorites)
}

// @Summary Toggle visto. Al desmarcar, borra la review del usuario.
// @Tags library
// @Security BearerAuth
// @Produce json
// @Param mediaType path string true "movie|series"
// @Param tmdbId path int true "id de TMDB"
// @Success 200 {object} toggleResponse
// @Router /me/watch-history/{mediaType}/{tmdbId} [post]
func (h *LibraryHandler) ToggleWatched(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.ToggleWatched)
}

// @Summary Watchlist del usuario (hidratada)
// @Tags library
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.MediaDoc
// @Router /me/watchlist [get]
func (h *LibraryHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	h.getSet(w, r, h.svc.Watchlist)
}

// @Summary Favoritos del usuario (hidratados)
// @Tags library
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.MediaDoc
// @Router /me/favorites [get]
func (h *LibraryHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	h.getSet(w, r, h.svc.Favorites)
}

// @Summary Watch history del usuario (hidratada)
// @Tags library
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.MediaDoc
// @Router /me/watch-history [get]
func (h *LibraryHandler) GetWatchHistory(w http.ResponseWriter, r *http.Request) {
	h.getSet(w, r, h.svc.WatchHistory)
}
