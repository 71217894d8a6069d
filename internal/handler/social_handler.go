package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/service"

	"github.com/go-chi/chi/v5"
)

type SocialHandler struct {
	svc *service.SocialService
}

func NewSocialHandler(s *service.SocialService) *SocialHandler { return &SocialHandler{svc: s} }

// @Summary Seguir / dejar de seguir a un usuario
// @Tags social
// @Security BearerAuth
// @Produce json
// @Param userId path int true "usuario a seguir"
// @Success 200 {object} map[string]bool
// @Router /social/follow/{userId} [post]
func (h *SocialHandler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	targetID, _ := strconv.Atoi(chi.URLParam(r, "userId"))
	following, err := h.svc.ToggleFollow(r.Context(), UserIDFromContext(r.Context()), targetID)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"isFollowing": following})
}

// @Summary Buscar usuarios por username
// @Tags social
// @Security BearerAuth
// @Produce json
// @Param username query string true "texto a buscar"
// @Success 200 {array} models.PublicUser
// @Router /social/search [get]
func (h *SocialHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	users, err := h.svc.Search(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		writeError(w, err)
		return
	}
	if users == nil {
		users = []models.PublicUser{}
	}
	_ = json.NewEncoder(w).Encode(users)
}

// @Summary Status social de un usuario (o del autenticado sin userId)
// @Tags social
// @Security BearerAuth
// @Produce json
// @Param userId path int false "userId"
// @Success 200 {object} models.UserStats
// @Router /social/status/{userId} [get]
func (h *SocialHandler) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	requesterID := UserIDFromContext(r.Context())
	targetID := requesterID
	if raw := chi.URLParam(r, "userId"); raw != "" {
		targetID, _ = strconv.Atoi(raw)
	}

	stats, err := h.svc.Status(r.Context(), targetID, requesterID)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}
