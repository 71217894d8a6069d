package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/service"

	"github.com/go-chi/chi/v5"
)

// writeError traduce la taxonomía de errores de los servicios a status HTTP.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrUpstream):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// mediaParams saca el par (tmdbId, mediaType) de la URL. El tmdbId mal
// formado queda en 0 y lo rechaza la validación del servicio.
func mediaParams(r *http.Request) (int, string) {
	tmdbID, _ := strconv.Atoi(chi.URLParam(r, "tmdbId"))
	return tmdbID, chi.URLParam(r, "mediaType")
}
