package recommend

import (
	"fmt"
	"testing"
)

func TestRankOrdersBySimilarity(t *testing.T) {
	target := Document{
		ID:       "a",
		Title:    "Hurricane approaches the coast",
		Body:     "The hurricane gained strength over warm water and now approaches the coast.",
		Keywords: []string{"hurricane", "weather"},
	}
	pool := []Document{
		{
			ID:       "b",
			Title:    "Coastal towns prepare for hurricane",
			Body:     "Residents along the coast board windows as the hurricane nears landfall.",
			Keywords: []string{"hurricane", "coast"},
		},
		{
			ID:       "c",
			Title:    "Hurricane season outlook",
			Body:     "Forecasters expect an active hurricane season with above average storms.",
			Keywords: []string{"hurricane"},
		},
		{
			ID:       "d",
			Title:    "Parliament passes budget bill",
			Body:     "Lawmakers approved the annual budget after a long debate on spending.",
			Keywords: []string{"politics"},
		},
	}

	matches := Rank(target, pool, 5)
	if len(matches) == 0 {
		t.Fatal("expected matches")
	}
	if matches[0].ID != "b" {
		t.Fatalf("expected the coastal hurricane story first, got %q", matches[0].ID)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Fatal("matches not in descending score order")
		}
	}
	for _, m := range matches {
		if m.ID == "d" && m.Score > 0.5 {
			t.Fatalf("unrelated story scored too high: %f", m.Score)
		}
	}
}

func TestRankExcludesTarget(t *testing.T) {
	target := Document{ID: "a", Title: "Storm warning", Body: "Storm warning issued tonight."}
	pool := []Document{
		target,
		{ID: "b", Title: "Storm warning extended", Body: "The storm warning was extended."},
		{ID: "c", Title: "Storm damage report", Body: "The storm caused widespread damage."},
	}
	for _, m := range Rank(target, pool, 5) {
		if m.ID == "a" {
			t.Fatal("target recommended to itself")
		}
	}
}

func TestRankTargetOnlyPool(t *testing.T) {
	target := Document{ID: "a", Title: "Storm", Body: "Storm news."}
	if got := Rank(target, []Document{target}, 5); got != nil {
		t.Fatalf("pool holding only the target must yield nothing, got %v", got)
	}
	if got := Rank(target, nil, 5); got != nil {
		t.Fatalf("empty pool must yield nothing, got %v", got)
	}
}

func TestRankSingleCandidate(t *testing.T) {
	target := Document{ID: "a", Title: "Storm warning", Body: "A storm warning was issued for the coast."}
	pool := []Document{
		target,
		{ID: "b", Title: "Storm warning", Body: "A storm warning was issued for the coast."},
	}
	matches := Rank(target, pool, 5)
	if len(matches) != 1 || matches[0].ID != "b" {
		t.Fatalf("single identical candidate must be recommended, got %v", matches)
	}
}

func TestRankFiltersLowScores(t *testing.T) {
	target := Document{ID: "a", Title: "Quantum computing milestone", Body: "Researchers entangle qubits."}
	pool := []Document{
		{ID: "b", Title: "Football final tonight", Body: "Two clubs meet in the cup final."},
		{ID: "c", Title: "Recipe of the week", Body: "A simple soup for cold evenings."},
	}
	if got := Rank(target, pool, 5); len(got) != 0 {
		t.Fatalf("expected no matches above threshold, got %v", got)
	}
}

func TestRankHonorsLimit(t *testing.T) {
	target := Document{ID: "t", Title: "Storm update", Body: "Storm update for the region.", Keywords: []string{"storm"}}
	var pool []Document
	for i := 0; i < 10; i++ {
		pool = append(pool, Document{
			ID:       fmt.Sprintf("p%d", i),
			Title:    "Storm report",
			Body:     "Another storm report for the region.",
			Keywords: []string{"storm"},
		})
	}
	if got := Rank(target, pool, 3); len(got) > 3 {
		t.Fatalf("limit not honored: %d matches", len(got))
	}
}
