// internal/handler/media_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/service"
)

type MediaHandler struct {
	svc *service.MediaService
}

func NewMediaHandler(s *service.MediaService) *MediaHandler { return &MediaHandler{svc: s} }

// @Summary Buscar películas y series en TMDB (sincroniza resultados)
// @Tags media
// @Security BearerAuth
// @Produce json
// @Param query query string true "texto de búsqueda"
// @Success 200 {array} tmdb.Summary
// @Router /movies/search [get]
func (h *MediaHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	results, err := h.svc.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(results)
}

// @Summary Trending del día (sincroniza resultados)
// @Tags media
// @Security BearerAuth
// @Produce json
// @Success 200 {array} tmdb.Summary
// @Router /movies/trending [get]
func (h *MediaHandler) Trending(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	results, err := h.svc.Trending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(results)
}

// @Summary Detalle de una media (sincroniza desde TMDB si no está local)
// @Tags media
// @Security BearerAuth
// @Produce json
// @Param mediaType path string true "movie|series"
// @Param tmdbId path int true "id de TMDB"
// @Success 200 {object} models.MediaDoc
// @Router /movies/{mediaType}/{tmdbId} [get]
func (h *MediaHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tmdbID, mediaType := mediaParams(r)
	m, err := h.svc.Resolve(r.Context(), tmdbID, mediaType)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(m)
}
