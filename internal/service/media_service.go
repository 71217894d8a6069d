// internal/service/media_service.go
package service

import (
	"context"
	"fmt"
	"log"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/cache"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/repository"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/tmdb"
)

const trendingCacheKey = "tmdb:trending:day"

// MediaService es el sync gateway contra TMDB: garantiza que toda media
// referenciada por el resto del sistema tenga su documento espejo local.
type MediaService struct {
	media *repository.MediaRepository
	tmdb  *tmdb.Client
}

func NewMediaService(m *repository.MediaRepository, c *tmdb.Client) *MediaService {
	return &MediaService{media: m, tmdb: c}
}

// ================== NORMALIZACIÓN ==================
// Única parte del código que mira los nombres de campo crudos de TMDB.
// Las series traen name/first_air_date; acá se mapean a title/releaseDate
// para que nadie más tenga que branchear por tipo.

func tmdbTypeFor(mediaType string) string {
	if mediaType == models.MediaTypeSeries {
		return tmdb.TypeTV
	}
	return tmdb.TypeMovie
}

func mediaTypeFor(tmdbType string) string {
	switch tmdbType {
	case tmdb.TypeTV:
		return models.MediaTypeSeries
	case tmdb.TypeMovie:
		return models.MediaTypeMovie
	default:
		// search/multi también trae personas; no son media
		return ""
	}
}

func normalizeDetail(d *tmdb.Detail, mediaType string) *models.MediaDoc {
	title := d.Title
	releaseDate := d.ReleaseDate
	if mediaType == models.MediaTypeSeries {
		title = d.Name
		releaseDate = d.FirstAirDate
	}

	genreIDs := make([]int, 0, len(d.Genres))
	for _, g := range d.Genres {
		genreIDs = append(genreIDs, g.ID)
	}

	return &models.MediaDoc{
		TMDBID:       d.ID,
		MediaType:    mediaType,
		Title:        title,
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
		Overview:     d.Overview,
		ReleaseDate:  releaseDate,
		GenreIDs:     genreIDs,
		VoteAverage:  d.VoteAverage,
	}
}

func normalizeSummary(s *tmdb.Summary) (*models.MediaDoc, bool) {
	mediaType := mediaTypeFor(s.MediaType)
	if mediaType == "" {
		return nil, false
	}

	title := s.Title
	releaseDate := s.ReleaseDate
	if mediaType == models.MediaTypeSeries {
		title = s.Name
		releaseDate = s.FirstAirDate
	}

	genreIDs := s.GenreIDs
	if genreIDs == nil {
		genreIDs = []int{}
	}

	return &models.MediaDoc{
		TMDBID:       s.ID,
		MediaType:    mediaType,
		Title:        title,
		PosterPath:   s.PosterPath,
		BackdropPath: s.BackdropPath,
		Overview:     s.Overview,
		ReleaseDate:  releaseDate,
		GenreIDs:     genreIDs,
		VoteAverage:  s.VoteAverage,
	}, true
}

// ================== OPERACIONES ==================

// Resolve busca la media en el espejo local y, si no está, la trae de TMDB,
// la normaliza y la upsertea. Con el índice único en (tmdbId, mediaType),
// dos Resolve concurrentes del mismo par terminan en un solo documento.
func (s *MediaService) Resolve(ctx context.Context, tmdbID int, mediaType string) (*models.MediaDoc, error) {
	if tmdbID <= 0 {
		return nil, fmt.Errorf("%w: tmdbId debe ser un entero positivo", ErrValidation)
	}
	if !models.ValidMediaType(mediaType) {
		return nil, fmt.Errorf("%w: mediaType debe ser movie|series", ErrValidation)
	}

	m, err := s.media.GetByKey(ctx, tmdbID, mediaType)
	if err != nil {
		return nil, err
	}
	if m != nil {
		return m, nil
	}

	d, err := s.tmdb.Detail(ctx, tmdbTypeFor(mediaType), tmdbID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return s.media.Upsert(ctx, normalizeDetail(d, mediaType))
}

// BulkSync upsertea un batch de resultados crudos de search/trending para
// calentar el espejo. Best-effort: los errores se loguean y se tragan,
// nunca le fallan al caller.
func (s *MediaService) BulkSync(ctx context.Context, items []tmdb.Summary) {
	if len(items) == 0 {
		return
	}

	docs := make([]models.MediaDoc, 0, len(items))
	for i := range items {
		if doc, ok := normalizeSummary(&items[i]); ok {
			docs = append(docs, *doc)
		}
	}

	if err := s.media.BulkUpsert(ctx, docs); err != nil {
		log.Printf("[sync] bulk sync falló: %v", err)
	}
}

// Search proxya search/multi de TMDB y sincroniza los resultados de paso.
func (s *MediaService) Search(ctx context.Context, query string) ([]tmdb.Summary, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query es requerido", ErrValidation)
	}

	results, err := s.tmdb.SearchMulti(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	s.BulkSync(ctx, results)
	return results, nil
}

// Trending devuelve lo trending del día, cacheado en Redis para no
// golpear TMDB en cada carga del home.
func (s *MediaService) Trending(ctx context.Context) ([]tmdb.Summary, error) {
	var cached []tmdb.Summary
	if ok, err := cache.GetJSON(ctx, trendingCacheKey, &cached); err == nil && ok {
		return cached, nil
	}

	results, err := s.tmdb.TrendingAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	s.BulkSync(ctx, results)

	if err := cache.SetJSON(ctx, trendingCacheKey, results, 600); err != nil {
		log.Printf("[sync] no se pudo cachear trending: %v", err)
	}
	return results, nil
}
