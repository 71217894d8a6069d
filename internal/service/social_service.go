package service

import (
	"context"
	"fmt"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/repository"
)

// SocialService: follow/unfollow y búsqueda de usuarios.
type SocialService struct {
	users *repository.UserRepository
}

func NewSocialService(users *repository.UserRepository) *SocialService {
	return &SocialService{users: users}
}

func containsInt(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ToggleFollow sigue o deja de seguir al target. Devuelve el estado final
// (true = ahora lo sigue).
func (s *SocialService) ToggleFollow(ctx context.Context, userID, targetID int) (bool, error) {
	if userID == targetID {
		return false, fmt.Errorf("%w: no podés seguirte a vos mismo", ErrValidation)
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, fmt.Errorf("%w: usuario %d", ErrNotFound, targetID)
	}

	following := containsInt(target.Followers, userID)
	if following {
		if err := s.users.Unfollow(ctx, userID, targetID); err != nil {
			return false, err
		}
	} else {
		if err := s.users.Follow(ctx, userID, targetID); err != nil {
			return false, err
		}
	}
	return !following, nil
}

// Search busca usuarios por username (regex, case-insensitive).
func (s *SocialService) Search(ctx context.Context, username string) ([]models.PublicUser, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username es requerido", ErrValidation)
	}
	return s.users.SearchByUsername(ctx, username, 20)
}

// Status devuelve los contadores sociales de un usuario; isFollowing es
// relativo al requester.
func (s *SocialService) Status(ctx context.Context, targetID, requesterID int) (*models.UserStats, error) {
	u, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: usuario %d", ErrNotFound, targetID)
	}

	return &models.UserStats{
		TotalReviews:   u.WatchNumber,
		FollowersCount: len(u.Followers),
		FollowingCount: len(u.Following),
		IsFollowing:    containsInt(u.Followers, requesterID),
	}, nil
}
