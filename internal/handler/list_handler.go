package handler

import (
	"encoding/json"
	"net/http"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/service"

	"github.com/go-chi/chi/v5"
)

type ListHandler struct {
	svc *service.ListService
}

func NewListHandler(s *service.ListService) *ListHandler { return &ListHandler{svc: s} }

type listRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"isPublic"`
}

// @Summary Crear lista
// @Tags lists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body listRequest true "datos de la lista"
// @Success 201 {object} models.ListDoc
// @Router /lists [post]
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req listRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	l, err := h.svc.Create(r.Context(), UserIDFromContext(r.Context()), req.Title, req.Description, req.IsPublic)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(l)
}

// @Summary Editar lista (solo owner)
// @Tags lists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param listId path string true "id de la lista"
// @Param body body listRequest true "campos a actualizar"
// @Success 200 {object} models.ListDoc
// @Router /lists/{listId} [put]
func (h *ListHandler) Edit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req listRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	l, err := h.svc.Edit(r.Context(), chi.URLParam(r, "listId"), UserIDFromContext(r.Context()),
		req.Title, req.Description, req.IsPublic)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(l)
}

// @Summary Borrar lista (solo owner, hard delete)
// @Tags lists
// @Security BearerAuth
// @Param listId path string true "id de la lista"
// @Success 204
// @Router /lists/{listId} [delete]
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "listId"), UserIDFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Agregar media a la lista (solo owner, idempotente)
// @Tags lists
// @Security BearerAuth
// @Produce json
// @Param listId path string true "id de la lista"
// @Param mediaType path string true "movie|series"
// @Param tmdbId path int true "id de TMDB"
// @Success 200 {object} models.ListWithMedia
// @Router /lists/{listId}/media/{mediaType}/{tmdbId} [post]
func (h *ListHandler) AddMedia(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tmdbID, mediaType := mediaParams(r)
	l, err := h.svc.AddMedia(r.Context(), chi.URLParam(r, "listId"), UserIDFromContext(r.Context()), tmdbID, mediaType)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(l)
}

// @Summary Sacar media de la lista (solo owner; si no estaba, no-op)
// @Tags lists
// @Security BearerAuth
// @Produce json
// @Param listId path string true "id de la lista"
// @Param mediaType path string true "movie|series"
// @Param tmdbId path int true "id de TMDB"
// @Success 200 {object} models.ListWithMedia
// @Router /lists/{listId}/media/{mediaType}/{tmdbId} [delete]
func (h *ListHandler) RemoveMedia(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	tmdbID, mediaType := mediaParams(r)
	l, err := h.svc.RemoveMedia(r.Context(), chi.URLParam(r, "listId"), UserIDFromContext(r.Context()), tmdbID, mediaType)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(l)
}

// @Summary Lista por id (privadas solo para el owner)
// @Tags lists
// @Security BearerAuth
// @Produce json
// @Param listId path string true "id de la lista"
// @Success 200 {object} models.ListWithMedia
// @Router /lists/{listId} [get]
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	l, err := h.svc.Get(r.Context(), chi.URLParam(r, "listId"), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(l)
}

// @Summary Listas del usuario autenticado (hidratadas)
// @Tags lists
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.ListWithMedia
// @Router /lists [get]
func (h *ListHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	lists, err := h.svc.ByOwner(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if lists == nil {
		lists = []models.ListWithMedia{}
	}
	_ = json.NewEncoder(w).Encode(lists)
}
