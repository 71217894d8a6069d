package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users     *repository.UserRepository
	jwtSecret []byte
}

type RegisterUserData struct {
	Username string
	Email    string
	Fullname string
	Password string
	Avatar   string
	About    string
}

type UpdateProfileData struct {
	Fullname *string
	Email    *string
	Avatar   *string
	About    *string
}

func NewAuthService(users *repository.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, jwtSecret: []byte(secret)}
}

// ================== REGISTER & LOGIN ==================

// Register crea un usuario nuevo. Username y email tienen que ser únicos.
func (s *AuthService) Register(ctx context.Context, data RegisterUserData) (*models.UserDoc, error) {
	data.Username = strings.ToLower(strings.TrimSpace(data.Username))

	if data.Username == "" || data.Email == "" || data.Fullname == "" || data.Password == "" {
		return nil, fmt.Errorf("%w: username, email, fullname y password son requeridos", ErrValidation)
	}

	if existing, err := s.users.FindByEmail(ctx, data.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: email ya registrado", ErrValidation)
	}
	if existing, err := s.users.FindByUsername(ctx, data.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: username ya tomado", ErrValidation)
	}

	nextID, err := s.users.GetNextUserID(ctx)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	u := &models.UserDoc{
		UserID:       nextID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: string(hash),
		Fullname:     data.Fullname,
		Avatar:       data.Avatar,
		About:        data.About,
		Favorites:    []primitive.ObjectID{},
		Watchlist:    []primitive.ObjectID{},
		WatchHistory: []primitive.ObjectID{},
		Followers:    []int{},
		Following:    []int{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDoc, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email y password son requeridos", ErrValidation)
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, fmt.Errorf("%w: credenciales inválidas", ErrForbidden)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("%w: credenciales inválidas", ErrForbidden)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      u.UserID,
		"username": u.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	sToken, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return sToken, u, nil
}

// ================== PERFIL ==================

func (s *AuthService) GetUserByID(ctx context.Context, userID int) (*models.UserDoc, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: usuario %d", ErrNotFound, userID)
	}
	return u, nil
}

// UpdateProfile actualiza campos opcionales del perfil.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int, data UpdateProfileData) (*models.UserDoc, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: usuario %d", ErrNotFound, userID)
	}

	update := bson.M{}

	if data.Email != nil {
		if *data.Email == "" {
			return nil, fmt.Errorf("%w: email no puede ser vacío", ErrValidation)
		}
		existing, err := s.users.FindByEmail(ctx, *data.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.UserID != userID {
			return nil, fmt.Errorf("%w: email ya en uso", ErrValidation)
		}
		update["email"] = *data.Email
	}
	if data.Fullname != nil {
		if *data.Fullname == "" {
			return nil, fmt.Errorf("%w: fullname no puede ser vacío", ErrValidation)
		}
		update["fullname"] = *data.Fullname
	}
	if data.Avatar != nil {
		update["avatar"] = *data.Avatar
	}
	if data.About != nil {
		update["about"] = *data.About
	}

	if len(update) == 0 {
		return nil, fmt.Errorf("%w: nada para actualizar", ErrValidation)
	}

	update["updatedAt"] = time.Now().UTC().Format(time.RFC3339)

	if err := s.users.UpdateByID(ctx, userID, update); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: oldPassword y newPassword son requeridos", ErrValidation)
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("%w: usuario %d", ErrNotFound, userID)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)); err != nil {
		return fmt.Errorf("%w: password actual incorrecta", ErrForbidden)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.UpdateByID(ctx, userID, bson.M{
		"passwordHash": string(hash),
		"updatedAt":    time.Now().UTC().Format(time.RFC3339),
	})
}

// PublicProfile arma el perfil público por username (sin email ni hash).
func (s *AuthService) PublicProfile(ctx context.Context, username string) (*models.PublicProfile, error) {
	u, err := s.users.FindByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: usuario %s", ErrNotFound, username)
	}

	return &models.PublicProfile{
		PublicUser: models.PublicUser{
			UserID:   u.UserID,
			Username: u.Username,
			Fullname: u.Fullname,
			Avatar:   u.Avatar,
		},
		About:          u.About,
		TotalReviews:   u.WatchNumber,
		FollowersCount: len(u.Followers),
		FollowingCount: len(u.Following),
		CreatedAt:      u.CreatedAt,
	}, nil
}
