package handler

import (
	"encoding/json"
	"net/http"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/service"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type userResponse struct {
	UserID    int    `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Fullname  string `json:"fullname"`
	Avatar    string `json:"avatar,omitempty"`
	About     string `json:"about,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toUserResponse(u *models.UserDoc) userResponse {
	return userResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		Fullname:  u.Fullname,
		Avatar:    u.Avatar,
		About:     u.About,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
	About    string `json:"about"`
}

// @Summary Register
// @Description Crea un usuario nuevo
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "datos"
// @Success 201 {object} userResponse
// @Failure 400 {string} string "datos inválidos"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), service.RegisterUserData{
		Username: req.Username,
		Email:    req.Email,
		Fullname: req.Fullname,
		Password: req.Password,
		Avatar:   req.Avatar,
		About:    req.About,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} map[string]any
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// credenciales malas siempre son 401, no 403
		http.Error(w, "credenciales inválidas", http.StatusUnauthorized)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"token": token,
		"user":  toUserResponse(u),
	})
}

// @Summary Usuario autenticado
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} userResponse
// @Router /me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	u, err := h.svc.GetUserByID(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type updateProfileRequest struct {
	Fullname *string `json:"fullname"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
	About    *string `json:"about"`
}

// @Summary Actualizar perfil (parcial)
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body updateProfileRequest true "campos a actualizar"
// @Success 200 {object} userResponse
// @Router /me [patch]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), UserIDFromContext(r.Context()), service.UpdateProfileData{
		Fullname: req.Fullname,
		Email:    req.Email,
		Avatar:   req.Avatar,
		About:    req.About,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(toUserResponse(u))
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// @Summary Cambiar password
// @Tags users
// @Security BearerAuth
// @Accept json
// @Success 204
// @Router /me/change-password [post]
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}

	if err := h.svc.ChangePassword(r.Context(), UserIDFromContext(r.Context()), req.OldPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Perfil público por username
// @Tags users
// @Produce json
// @Param username path string true "username"
// @Success 200 {object} models.PublicProfile
// @Router /users/u/{username} [get]
func (h *AuthHandler) PublicProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	p, err := h.svc.PublicProfile(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(p)
}
