package services

import (
	"testing"

	"github.com/crisvieira/satisfaction-server/models"
)

func TestClassifyNPSBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  models.Category
	}{
		{0, models.CategoryDetractor},
		{5, models.CategoryDetractor},
		{6, models.CategoryDetractor},
		{7, models.CategoryNeutral},
		{8, models.CategoryNeutral},
		{9, models.CategoryPromoter},
		{10, models.CategoryPromoter},
	}
	for _, tc := range cases {
		if got := ClassifyNPS(tc.score); got != tc.want {
			t.Errorf("ClassifyNPS(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestClassifyCSATCoversDomain(t *testing.T) {
	want := map[int]models.Category{
		1: models.CategoryVeryDissatisfied,
		2: models.CategoryDissatisfied,
		3: models.CategoryNeutral,
		4: models.CategorySatisfied,
		5: models.CategoryVerySatisfied,
	}
	seen := map[models.Category]int{}
	for score := 1; score <= 5; score++ {
		got := ClassifyCSAT(score)
		if got != want[score] {
			t.Errorf("ClassifyCSAT(%d) = %s, want %s", score, got, want[score])
		}
		seen[got]++
	}
	// no overlap: every rating maps to a distinct category
	if len(seen) != 5 {
		t.Errorf("expected 5 distinct categories, got %d", len(seen))
	}
}

func TestCSATLabels(t *testing.T) {
	if got := CSATLabel(1); got != "Very Dissatisfied" {
		t.Errorf("CSATLabel(1) = %q", got)
	}
	if got := CSATLabel(5); got != "Very Satisfied" {
		t.Errorf("CSATLabel(5) = %q", got)
	}
}

func TestClassifyDispatch(t *testing.T) {
	if got := Classify(models.InstrumentNPS, 9); got != models.CategoryPromoter {
		t.Errorf("Classify(nps, 9) = %s", got)
	}
	if got := Classify(models.InstrumentCSAT, 2); got != models.CategoryDissatisfied {
		t.Errorf("Classify(csat, 2) = %s", got)
	}
}
