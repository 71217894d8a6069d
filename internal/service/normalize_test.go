package service

import (
	"testing"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/tmdb"
)

func TestNormalizeSummarySeries(t *testing.T) {
	s := tmdb.Summary{
		ID:           7,
		MediaType:    "tv",
		Name:         "X",
		FirstAirDate: "2020-01-01",
		GenreIDs:     []int{1, 2},
	}

	m, ok := normalizeSummary(&s)
	if !ok {
		t.Fatalf("esperaba que una serie normalice")
	}

	if m.MediaType != models.MediaTypeSeries {
		t.Fatalf("mediaType esperado series, got %q", m.MediaType)
	}
	if m.Title != "X" {
		t.Fatalf("name tendría que mapear a title, got %q", m.Title)
	}
	if m.ReleaseDate != "2020-01-01" {
		t.Fatalf("first_air_date tendría que mapear a releaseDate, got %q", m.ReleaseDate)
	}
	if len(m.GenreIDs) != 2 || m.GenreIDs[0] != 1 || m.GenreIDs[1] != 2 {
		t.Fatalf("genreIds mal normalizados: %+v", m.GenreIDs)
	}
}

func TestNormalizeSummaryMovie(t *testing.T) {
	s := tmdb.Summary{
		ID:          603,
		MediaType:   "movie",
		Title:       "The Matrix",
		ReleaseDate: "1999-03-31",
		GenreIDs:    []int{28},
		VoteAverage: 8.2,
	}

	m, ok := normalizeSummary(&s)
	if !ok {
		t.Fatalf("esperaba que una película normalice")
	}

	if m.MediaType != models.MediaTypeMovie || m.Title != "The Matrix" {
		t.Fatalf("película mal normalizada: %+v", m)
	}
	if m.VoteAverage != 8.2 {
		t.Fatalf("voteAverage mal normalizado: %v", m.VoteAverage)
	}
}

func TestNormalizeSummarySkipsPersons(t *testing.T) {
	s := tmdb.Summary{ID: 500, MediaType: "person", Name: "Someone"}
	if _, ok := normalizeSummary(&s); ok {
		t.Fatalf("una persona no es media, no tendría que normalizar")
	}
}

func TestNormalizeSummaryNilGenres(t *testing.T) {
	s := tmdb.Summary{ID: 1, MediaType: "movie", Title: "A"}
	m, ok := normalizeSummary(&s)
	if !ok {
		t.Fatalf("esperaba normalización")
	}
	if m.GenreIDs == nil {
		t.Fatalf("genreIds nunca tendría que quedar nil")
	}
}

func TestNormalizeDetailSeries(t *testing.T) {
	d := tmdb.Detail{
		ID:           7,
		Name:         "X",
		FirstAirDate: "2020-01-01",
		Genres:       []tmdb.Genre{{ID: 1, Name: "Drama"}, {ID: 2, Name: "Crime"}},
	}

	m := normalizeDetail(&d, models.MediaTypeSeries)

	if m.Title != "X" || m.ReleaseDate != "2020-01-01" {
		t.Fatalf("serie mal normalizada: %+v", m)
	}
	// en el detail los genres vienen como objetos anidados
	if len(m.GenreIDs) != 2 || m.GenreIDs[0] != 1 || m.GenreIDs[1] != 2 {
		t.Fatalf("genreIds mal extraídos del detail: %+v", m.GenreIDs)
	}
	if m.TMDBID != 7 || m.MediaType != models.MediaTypeSeries {
		t.Fatalf("clave compuesta mal armada: %+v", m)
	}
}

func TestNormalizeDetailMovieIgnoresSeriesFields(t *testing.T) {
	d := tmdb.Detail{
		ID:          603,
		Title:       "The Matrix",
		ReleaseDate: "1999-03-31",
		// campos de serie presentes por accidente: no tienen que pisar nada
		Name:         "garbage",
		FirstAirDate: "2000-01-01",
	}

	m := normalizeDetail(&d, models.MediaTypeMovie)
	if m.Title != "The Matrix" || m.ReleaseDate != "1999-03-31" {
		t.Fatalf("una película no tiene que usar name/first_air_date: %+v", m)
	}
}

func TestTmdbTypeMapping(t *testing.T) {
	if tmdbTypeFor(models.MediaTypeSeries) != tmdb.TypeTV {
		t.Fatalf("series tendría que mapear al path /tv")
	}
	if tmdbTypeFor(models.MediaTypeMovie) != tmdb.TypeMovie {
		t.Fatalf("movie tendría que mapear al path /movie")
	}
	if mediaTypeFor("tv") != models.MediaTypeSeries {
		t.Fatalf("tv tendría que mapear a series")
	}
	if mediaTypeFor("person") != "" {
		t.Fatalf("person no es un mediaType local")
	}
}
