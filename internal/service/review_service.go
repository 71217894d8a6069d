package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/cache"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewService registra sentiments y sirve los agregados. Los counts se
// calculan en lectura (no hay contador corriendo por sentiment).
type ReviewService struct {
	reviews *repository.ReviewRepository
	media   *repository.MediaRepository
	users   *repository.UserRepository
}

func NewReviewService(
	reviews *repository.ReviewRepository,
	media *repository.MediaRepository,
	users *repository.UserRepository,
) *ReviewService {
	return &ReviewService{reviews: reviews, media: media, users: users}
}

func statsCacheKey(tmdbID int, mediaType string) string {
	return fmt.Sprintf("stats:%s:%d", mediaType, tmdbID)
}

// fillStats completa los counts crudos del $group con los cuatro
// sentiments (ausentes en cero) y suma el total.
func fillStats(counts map[string]int) models.SentimentStats {
	stats := models.ZeroStats()
	for _, s := range models.Sentiments {
		if n, ok := counts[s]; ok {
			stats.Counts[s] = n
			stats.TotalVotes += n
		}
	}
	return stats
}

// Add crea la review. La media tiene que existir ya en el espejo (el
// detalle la sincronizó antes); acá no se dispara ningún sync. Los tres
// efectos sobre el usuario van en un solo update.
func (s *ReviewService) Add(ctx context.Context, ownerID, tmdbID int, mediaType, sentiment, comment string) (*models.ReviewDoc, error) {
	if !models.ValidSentiment(sentiment) {
		return nil, fmt.Errorf("%w: sentiment inválido (Skip|Timepass|Go for it|Perfection)", ErrValidation)
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment es requerido", ErrValidation)
	}
	if !models.ValidMediaType(mediaType) {
		return nil, fmt.Errorf("%w: mediaType debe ser movie|series", ErrValidation)
	}

	m, err := s.media.GetByKey(ctx, tmdbID, mediaType)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: media %d/%s", ErrNotFound, tmdbID, mediaType)
	}

	now := time.Now().UTC()
	rev := &models.ReviewDoc{
		Sentiment: sentiment,
		Comment:   comment,
		OwnerID:   ownerID,
		MediaID:   m.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reviews.Insert(ctx, rev); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: ya dejaste una review para esta media", ErrValidation)
		}
		return nil, err
	}

	// una review implica "ya la vi, dejá de recomendármela"
	if err := s.users.ApplyReviewEffects(ctx, ownerID, m.ID); err != nil {
		return nil, err
	}

	if err := cache.Del(ctx, statsCacheKey(tmdbID, mediaType)); err != nil {
		log.Printf("[reviews] no se pudo invalidar stats: %v", err)
	}
	return rev, nil
}

// Stats agrupa las reviews de la media por sentiment. Para media
// desconocida devuelve todo en cero, nunca error: el read-path es
// tolerante aunque el write-path no lo sea.
func (s *ReviewService) Stats(ctx context.Context, tmdbID int, mediaType string) (models.SentimentStats, error) {
	key := statsCacheKey(tmdbID, mediaType)

	var cached models.SentimentStats
	if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	m, err := s.media.GetByKey(ctx, tmdbID, mediaType)
	if err != nil {
		return models.SentimentStats{}, err
	}
	if m == nil {
		return models.ZeroStats(), nil
	}

	counts, err := s.reviews.CountsBySentiment(ctx, m.ID)
	if err != nil {
		return models.SentimentStats{}, err
	}

	stats := fillStats(counts)
	if err := cache.SetJSON(ctx, key, stats, 60); err != nil {
		log.Printf("[reviews] no se pudo cachear stats: %v", err)
	}
	return stats, nil
}

// ForMedia devuelve las reviews de una media, más nuevas primero, con el
// autor hidratado solo con sus campos públicos.
func (s *ReviewService) ForMedia(ctx context.Context, tmdbID int, mediaType string) ([]models.ReviewWithOwner, error) {
	m, err := s.media.GetByKey(ctx, tmdbID, mediaType)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return []models.ReviewWithOwner{}, nil
	}

	revs, err := s.reviews.FindByMedia(ctx, m.ID)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]int, 0, len(revs))
	for _, r := range revs {
		ownerIDs = append(ownerIDs, r.OwnerID)
	}
	owners, err := s.users.FindPublicByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]models.ReviewWithOwner, 0, len(revs))
	for _, r := range revs {
		out = append(out, models.ReviewWithOwner{
			ReviewDoc: r,
			Owner:     owners[r.OwnerID],
		})
	}
	return out, nil
}

// ByOwner devuelve las reviews de un usuario con la media completa.
func (s *ReviewService) ByOwner(ctx context.Context, ownerID int) ([]models.ReviewWithMedia, error) {
	revs, err := s.reviews.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(revs))
	for _, r := range revs {
		ids = append(ids, r.MediaID)
	}
	docs, err := s.media.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.MediaDoc, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
	}

	out := make([]models.ReviewWithMedia, 0, len(revs))
	for _, r := range revs {
		out = append(out, models.ReviewWithMedia{
			ReviewDoc: r,
			Media:     byID[r.MediaID],
		})
	}
	return out, nil
}
