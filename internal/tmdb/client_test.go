package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/tmdb"
)

func TestDetailMovie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Fatalf("path inesperado: %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Fatalf("falta api_key en la query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 603,
			"title": "The Matrix",
			"poster_path": "/p.jpg",
			"backdrop_path": "/b.jpg",
			"overview": "wake up neo",
			"release_date": "1999-03-31",
			"genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Sci-Fi"}],
			"vote_average": 8.2
		}`))
	}))
	defer srv.Close()

	c := tmdb.NewClient(srv.URL, "test-key")
	d, err := c.Detail(context.Background(), tmdb.TypeMovie, 603)
	if err != nil {
		t.Fatalf("Detail devolvió error: %v", err)
	}

	if d.ID != 603 || d.Title != "The Matrix" {
		t.Fatalf("detalle mal parseado: %+v", d)
	}
	if len(d.Genres) != 2 || d.Genres[0].ID != 28 {
		t.Fatalf("genres mal parseados: %+v", d.Genres)
	}
	if d.ReleaseDate != "1999-03-31" {
		t.Fatalf("release_date mal parseada: %q", d.ReleaseDate)
	}
}

func TestDetailTVKeepsBothFieldPairs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tv/7" {
			t.Fatalf("path inesperado: %s", r.URL.Path)
		}
		w.Write([]byte(`{"id": 7, "name": "X", "first_air_date": "2020-01-01", "genres": [{"id": 1}]}`))
	}))
	defer srv.Close()

	c := tmdb.NewClient(srv.URL, "k")
	d, err := c.Detail(context.Background(), tmdb.TypeTV, 7)
	if err != nil {
		t.Fatalf("Detail devolvió error: %v", err)
	}

	// el cliente no normaliza: name/first_air_date llegan tal cual
	if d.Name != "X" || d.Title != "" {
		t.Fatalf("esperaba name crudo sin normalizar, got %+v", d)
	}
	if d.FirstAirDate != "2020-01-01" {
		t.Fatalf("first_air_date mal parseada: %q", d.FirstAirDate)
	}
}

func TestDetailNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message": "not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := tmdb.NewClient(srv.URL, "k")
	if _, err := c.Detail(context.Background(), tmdb.TypeMovie, 999999); err == nil {
		t.Fatalf("esperaba error con status 404")
	}
}

func TestSearchMulti(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/multi" {
			t.Fatalf("path inesperado: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "matrix" {
			t.Fatalf("query inesperada: %q", got)
		}
		w.Write([]byte(`{"results": [
			{"id": 603, "media_type": "movie", "title": "The Matrix", "genre_ids": [28, 878]},
			{"id": 7, "media_type": "tv", "name": "X", "first_air_date": "2020-01-01", "genre_ids": [1, 2]},
			{"id": 500, "media_type": "person", "name": "Someone"}
		]}`))
	}))
	defer srv.Close()

	c := tmdb.NewClient(srv.URL, "k")
	results, err := c.SearchMulti(context.Background(), "matrix")
	if err != nil {
		t.Fatalf("SearchMulti devolvió error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("esperaba 3 resultados, got %d", len(results))
	}
	if results[0].GenreIDs[0] != 28 {
		t.Fatalf("genre_ids mal parseados: %+v", results[0].GenreIDs)
	}
	if results[1].MediaType != "tv" || results[1].Name != "X" {
		t.Fatalf("summary de tv mal parseado: %+v", results[1])
	}
}

func TestTrendingAllUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := tmdb.NewClient(srv.URL, "k")
	if _, err := c.TrendingAll(context.Background()); err == nil {
		t.Fatalf("esperaba error con upstream caído")
	}
}
