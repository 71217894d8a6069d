package service

import (
	"testing"

	"github.com/S-Rohan-Kumar/CeniDiary-V2/internal/models"
)

func TestFillStats(t *testing.T) {
	stats := fillStats(map[string]int{
		models.SentimentSkip:       2,
		models.SentimentPerfection: 1,
	})

	if stats.TotalVotes != 3 {
		t.Fatalf("totalVotes esperado 3, got %d", stats.TotalVotes)
	}
	if stats.Counts[models.SentimentSkip] != 2 {
		t.Fatalf("Skip esperado 2, got %d", stats.Counts[models.SentimentSkip])
	}
	if stats.Counts[models.SentimentPerfection] != 1 {
		t.Fatalf("Perfection esperado 1, got %d", stats.Counts[models.SentimentPerfection])
	}
	// los ausentes tienen que estar en cero, no faltar
	if n, ok := stats.Counts[models.SentimentTimepass]; !ok || n != 0 {
		t.Fatalf("Timepass tendría que estar presente en 0, got %d (ok=%v)", n, ok)
	}
	if n, ok := stats.Counts[models.SentimentGoForIt]; !ok || n != 0 {
		t.Fatalf("Go for it tendría que estar presente en 0, got %d (ok=%v)", n, ok)
	}
}

func TestFillStatsEmpty(t *testing.T) {
	stats := fillStats(map[string]int{})

	if stats.TotalVotes != 0 {
		t.Fatalf("totalVotes esperado 0, got %d", stats.TotalVotes)
	}
	if len(stats.Counts) != 4 {
		t.Fatalf("counts tiene que traer los 4 sentiments, got %d", len(stats.Counts))
	}
	for s, n := range stats.Counts {
		if n != 0 {
			t.Fatalf("%s tendría que estar en 0, got %d", s, n)
		}
	}
}

// sentiments que no están en el enum no cuentan (no deberían existir en la
// colección, pero el agregado no tiene que inventar claves nuevas)
func TestFillStatsIgnoresUnknownSentiments(t *testing.T) {
	stats := fillStats(map[string]int{"Maybe": 5, models.SentimentSkip: 1})

	if stats.TotalVotes != 1 {
		t.Fatalf("totalVotes esperado 1, got %d", stats.TotalVotes)
	}
	if _, ok := stats.Counts["Maybe"]; ok {
		t.Fatalf("un sentiment desconocido no tiene que aparecer en counts")
	}
}

func TestStatsCacheKey(t *testing.T) {
	if statsCacheKey(603, models.MediaTypeMovie) == statsCacheKey(603, models.MediaTypeSeries) {
		t.Fatalf("la key de stats tiene que distinguir por mediaType")
	}
}
