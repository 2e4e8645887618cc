// Package ratings turns per-user review scores into community ratings.
package ratings

import (
	"math"

	"github.com/zatekoja/benchmap/internal/domain/entities"
	apperrors "github.com/zatekoja/benchmap/pkg/errors"
)

const (
	MinRating = 1
	MaxRating = 5
)

type tally struct {
	sum   int
	count int
}

// Aggregate returns the mean rating per bench, rounded to one decimal.
// Benches without reviews are absent from the map, never zero.
func Aggregate(reviews []entities.ReviewRating) map[string]float64 {
	tallies := make(map[string]*tally)
	for _, r := range reviews {
		t, ok := tallies[r.BenchID]
		if !ok {
			t = &tally{}
			tallies[r.BenchID] = t
		}
		t.sum += r.Rating
		t.count++
	}

	averages := make(map[string]float64, len(tallies))
	for benchID, t := range tallies {
		averages[benchID] = RoundOneDecimal(float64(t.sum) / float64(t.count))
	}
	return averages
}

// RoundOneDecimal rounds half away from zero to one decimal place.
func RoundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

// NormalizeReview clamps a submitted score into [1,5] and rounds it.
func NormalizeReview(raw float64) (int, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, apperrors.NewValidationError("rating must be a number between 1 and 5")
	}
	clamped := math.Max(MinRating, math.Min(MaxRating, raw))
	return int(math.Round(clamped)), nil
}

// NormalizeBenchRatings applies NormalizeReview to the creator's four scores.
func NormalizeBenchRatings(accessibility, crowd, view, vibe float64) (entities.BenchRatings, error) {
	values := [4]float64{accessibility, crowd, view, vibe}
	var normalized [4]int
	for i, v := range values {
		n, err := NormalizeReview(v)
		if err != nil {
			return entities.BenchRatings{}, apperrors.NewValidationError("ratings must be numbers between 1 and 5")
		}
		normalized[i] = n
	}
	return entities.BenchRatings{
		Accessibility: normalized[0],
		Crowd:         normalized[1],
		View:          normalized[2],
		Vibe:          normalized[3],
	}, nil
}
