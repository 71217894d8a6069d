package models

import "testing"

func TestValidSentiment(t *testing.T) {
	for _, s := range Sentiments {
		if !ValidSentiment(s) {
			t.Fatalf("%q tendría que ser válido", s)
		}
	}

	invalid := []string{"Maybe", "skip", "perfection", "", "Go For It"}
	for _, s := range invalid {
		if ValidSentiment(s) {
			t.Fatalf("%q no tendría que ser válido", s)
		}
	}
}

func TestZeroStats(t *testing.T) {
	stats := ZeroStats()

	if stats.TotalVotes != 0 {
		t.Fatalf("totalVotes esperado 0, got %d", stats.TotalVotes)
	}
	if len(stats.Counts) != len(Sentiments) {
		t.Fatalf("counts esperaba %d claves, got %d", len(Sentiments), len(stats.Counts))
	}
	for _, s := range Sentiments {
		if stats.Counts[s] != 0 {
			t.Fatalf("%s tendría que arrancar en 0", s)
		}
	}
}

func TestValidMediaType(t *testing.T) {
	if !ValidMediaType(MediaTypeMovie) || !ValidMediaType(MediaTypeSeries) {
		t.Fatalf("movie y series son los tipos válidos")
	}
	for _, mt := range []string{"tv", "person", "", "Movie"} {
		if ValidMediaType(mt) {
			t.Fatalf("%q no tendría que ser un mediaType válido", mt)
		}
	}
}
