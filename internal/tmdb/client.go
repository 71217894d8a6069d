// internal/tmdb/client.go
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Tipos de media tal como los nombra TMDB en sus paths y payloads.
const (
	TypeMovie = "movie"
	TypeTV    = "tv"
)

// Client habla con la API v3 de TMDB. Solo lectura.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		// TMDB a veces se cuelga; sin timeout el request quedaría
		// bloqueado indefinidamente.
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Detail es la respuesta de /movie/{id} y /tv/{id}. Las series traen
// name/first_air_date en vez de title/release_date; ambos pares van acá
// y la normalización ocurre en el sync gateway, no en este paquete.
type Detail struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	Genres       []Genre `json:"genres"`
	VoteAverage  float64 `json:"vote_average"`
}

// Summary es un resultado de search/multi o trending (genre_ids plano,
// media_type por item).
type Summary struct {
	ID           int     `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	GenreIDs     []int   `json:"genre_ids"`
	VoteAverage  float64 `json:"vote_average"`
}

type resultsPage struct {
	Results []Summary `json:"results"`
}

// Detail trae el detalle de una película o serie. tmdbType es
// TypeMovie o TypeTV (el path segment de TMDB, no el mediaType local).
func (c *Client) Detail(ctx context.Context, tmdbType string, id int) (*Detail, error) {
	var d Detail
	path := fmt.Sprintf("/%s/%d", tmdbType, id)
	if err := c.get(ctx, path, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// SearchMulti busca películas, series y personas mezcladas.
func (c *Client) SearchMulti(ctx context.Context, query string) ([]Summary, error) {
	var page resultsPage
	q := url.Values{"query": {query}}
	if err := c.get(ctx, "/search/multi", q, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// TrendingAll devuelve lo trending del día (mezcla de tipos).
func (c *Client) TrendingAll(ctx context.Context) ([]Summary, error) {
	var page resultsPage
	if err := c.get(ctx, "/trending/all/day", nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)

	reqURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("tmdb: status %d en %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
