package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/service"

	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler { return &ReviewHandler{svc: s} }

type reviewRequest struct {
	TMDBID    int    `json:"tmdbId"`
	MediaType string `json:"mediaType"`
	Sentiment string `json:"sentiment"`
	Comment   string `json:"comment"`
}

// @Summary Crear review (una por usuario y media)
// @Tags reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body reviewRequest true "review"
// @Success 201 {object} models.ReviewDoc
// @Failure 400 {string} string "sentiment inválido o review duplicada"
// @Router /reviews [post]
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	rev, err := h.svc.Add(r.Context(), UserIDFromContext(r.Context()),
		req.TMDBID, req.MediaType, req.Sentiment, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rev)
}

// @Summary Reviews de una media (más nuevas primero, autor público)
// @Tags reviews
// @Produce json
// @Param mediaType path string true "movie|series"
// @Param tmdbId path int true "id de TMDB"
// @Success 200 {array} models.ReviewWithOwner
// @Router /reviews/m/{mediaType}/{tmdbId} [get]
func (h *ReviewHandler) ForMedia(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tmdbID, mediaType := mediaParams(r)
	revs, err := h.svc.ForMedia(r.Context(), tmdbID, mediaType)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(revs)
}

// @Summary Stats de sentiments de una media (nunca 404: media desconocida devuelve ceros)
// @Tags reviews
// @Produce json
// @Param mediaType path string true "movie|series"
// @Param tmdbId path int true "id de TMDB"
// @Success 200 {object} models.SentimentStats
// @Router /reviews/stats/{mediaType}/{tmdbId} [get]
func (h *ReviewHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tmdbID, mediaType := mediaParams(r)
	stats, err := h.svc.Stats(r.Context(), tmdbID, mediaType)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}

// @Summary Reviews de un usuario (con media completa)
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Param id path int true "userId"
// @Success 200 {array} models.ReviewWithMedia
// @Router /reviews/user/{id} [get]
func (h *ReviewHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	h.byOwner(w, r, userID)
}

// @Summary Reviews del usuario autenticado
// @Tags reviews
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ReviewWithMedia
// @Router /me/reviews [get]
func (h *ReviewHandler) Mine(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	h.byOwner(w, r, UserIDFromContext(r.Context()))
}

func (h *ReviewHandler) byOwner(w http.ResponseWriter, r *http.Request, ownerID int) {
	revs, err := h.svc.ByOwner(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	if revs == nil {
		revs = []models.ReviewWithMedia{}
	}
	_ = json.NewEncoder(w).Encode(revs)
}
