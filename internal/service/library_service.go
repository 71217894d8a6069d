package service

import (
	"context"
	"fmt"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LibraryService maneja los sets de membresía del usuario: watchlist,
// favoritos y watch history.
type LibraryService struct {
	users    *repository.UserRepository
	media    *repository.MediaRepository
	reviews  *repository.ReviewRepository
	mediaSvc *MediaService
}

func NewLibraryService(
	users *repository.UserRepository,
	media *repository.MediaRepository,
	reviews *repository.ReviewRepository,
	mediaSvc *MediaService,
) *LibraryService {
	return &LibraryService{
		users:    users,
		media:    media,
		reviews:  reviews,
		mediaSvc: mediaSvc,
	}
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ToggleWatchlist agrega o saca la media de la watchlist del usuario.
// Devuelve added=true si terminó adentro.
func (s *LibraryService) ToggleWatchlist(ctx context.Context, userID, tmdbID int, mediaType string) (bool, []models.MediaDoc, error) {
	return s.toggle(ctx, userID, tmdbID, mediaType, repository.FieldWatchlist)
}

// ToggleFavorites agrega o saca la media de favoritos.
func (s *LibraryService) ToggleFavorites(ctx context.Context, userID, tmdbID int, mediaType string) (bool, []models.MediaDoc, error) {
	return s.toggle(ctx, userID, tmdbID, mediaType, repository.FieldFavorites)
}

func (s *LibraryService) toggle(ctx context.Context, userID, tmdbID int, mediaType, field string) (bool, []models.MediaDoc, error) {
	// igual que el detalle: si la media no está local, se sincroniza
	m, err := s.mediaSvc.Resolve(ctx, tmdbID, mediaType)
	if err != nil {
		return false, nil, err
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return false, nil, err
	}
	if u == nil {
		return false, nil, fmt.Errorf("%w: usuario %d", ErrNotFound, userID)
	}

	var current []primitive.ObjectID
	switch field {
	case repository.FieldWatchlist:
		current = u.Watchlist
	case repository.FieldFavorites:
		current = u.Favorites
	}

	present := containsID(current, m.ID)
	if present {
		err = s.users.PullFromSet(ctx, userID, field, m.ID)
	} else {
		err = s.users.AddToSet(ctx, userID, field, m.ID)
	}
	if err != nil {
		return false, nil, err
	}

	items, err := s.setContents(ctx, userID, field)
	if err != nil {
		return false, nil, err
	}
	return !present, items, nil
}

// ToggleWatched marca/desmarca la media como vista. Al desmarcar también
// borra la review del usuario para esa media: no puede quedar una review
// colgando de algo no visto.
func (s *LibraryService) ToggleWatched(ctx context.Context, userID, tmdbID int, mediaType string) (bool, []models.MediaDoc, error) {
	m, err := s.mediaSvc.Resolve(ctx, tmdbID, mediaType)
	if err != nil {
		return false, nil, err
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return false, nil, err
	}
	if u == nil {
		return false, nil, fmt.Errorf("%w: usuario %d", ErrNotFound, userID)
	}

	watched := containsID(u.WatchHistory, m.ID)
	if watched {
		if err := s.users.PullFromSet(ctx, userID, repository.FieldWatchHistory, m.ID); err != nil {
			return false, nil, err
		}
		deleted, err := s.reviews.DeleteByOwnerAndMedia(ctx, userID, m.ID)
		if err != nil {
			return false, nil, err
		}
		if deleted > 0 {
			if err := s.users.DecrementWatchNumber(ctx, userID); err != nil {
				return false, nil, err
			}
		}
	} else {
		if err := s.users.AddToSet(ctx, userID, repository.FieldWatchHistory, m.ID); err != nil {
			return false, nil, err
		}
	}

	items, err := s.setContents(ctx, userID, repository.FieldWatchHistory)
	if err != nil {
		return false, nil, err
	}
	return !watched, items, nil
}

// ================== GETTERS ==================

func (s *LibraryService) Watchlist(ctx context.Context, userID int) ([]models.MediaDoc, error) {
	return s.setContents(ctx, userID, repository.FieldWatchlist)
}

func (s *LibraryService) Favorites(ctx context.Context, userID int) ([]models.MediaDoc, error) {
	return s.setContents(ctx, userID, repository.FieldFavorites)
}

func (s *LibraryService) WatchHistory(ctx context.Context, userID int) ([]models.MediaDoc, error) {
	return s.setContents(ctx, userID, repository.FieldWatchHistory)
}

// setContents devuelve el set hidratado, respetando el orden del array.
func (s *LibraryService) setContents(ctx context.Context, userID int, field string) ([]models.MediaDoc, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: usuario %d", ErrNotFound, userID)
	}

	var ids []primitive.ObjectID
	switch field {
	case repository.FieldWatchlist:
		ids = u.Watchlist
	case repository.FieldFavorites:
		ids = u.Favorites
	case repository.FieldWatchHistory:
		ids = u.WatchHistory
	}

	return s.hydrate(ctx, ids)
}

func (s *LibraryService) hydrate(ctx context.Context, ids []primitive.ObjectID) ([]models.MediaDoc, error) {
	docs, err := s.media.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.MediaDoc, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
	}

	out := make([]models.MediaDoc, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}
