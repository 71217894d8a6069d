package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/service"

	"github.com/go-chi/chi/v5"
)

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: title es requerido", service.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: no sos el owner", service.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: lista x", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: tmdb caído", service.ErrUpstream), http.StatusInternalServerError},
		{fmt.Errorf("algo explotó"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeError(rec, tc.err)
		if rec.Code != tc.want {
			t.Fatalf("error %v: esperaba %d, got %d", tc.err, tc.want, rec.Code)
		}
	}
}

func TestMediaParams(t *testing.T) {
	r := chi.NewRouter()
	var tmdbID int
	var mediaType string
	r.Get("/m/{mediaType}/{tmdbId}", func(w http.ResponseWriter, req *http.Request) {
		tmdbID, mediaType = mediaParams(req)
	})

	req := httptest.NewRequest(http.MethodGet, "/m/series/7", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	if tmdbID != 7 || mediaType != "series" {
		t.Fatalf("params mal parseados: %d %q", tmdbID, mediaType)
	}

	// id no numérico queda en 0 y lo rechaza el servicio
	req = httptest.NewRequest(http.MethodGet, "/m/movie/abc", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	if tmdbID != 0 {
		t.Fatalf("id malformado tendría que quedar en 0, got %d", tmdbID)
	}
}
