package services

import (
	"math"

	"github.com/zatekoja/benchmap/internal/domain/entities"
	"github.com/zatekoja/benchmap/internal/domain/ratings"
	"github.com/zatekoja/benchmap/pkg/geo"
)

// ListFilter holds the optional listing filters. Nil means not supplied.
type ListFilter struct {
	MinCommunityRating *float64
	MaxDistanceKm      *float64
	Lat                *float64
	Lng                *float64
}

// Normalized clamps the minimum rating into [0,5] and the distance to >= 0.
// Non-finite values are dropped.
func (f ListFilter) Normalized() ListFilter {
	out := ListFilter{
		Lat: finiteOrNil(f.Lat),
		Lng: finiteOrNil(f.Lng),
	}
	if v := finiteOrNil(f.MinCommunityRating); v != nil {
		clamped := math.Max(0, math.Min(ratings.MaxRating, *v))
		out.MinCommunityRating = &clamped
	}
	if v := finiteOrNil(f.MaxDistanceKm); v != nil {
		clamped := math.Max(0, *v)
		out.MaxDistanceKm = &clamped
	}
	return out
}

// HasRadius reports whether the radius filter applies: distance, lat and lng all present
func (f ListFilter) HasRadius() bool {
	return f.MaxDistanceKm != nil && f.Lat != nil && f.Lng != nil
}

// Matches applies both filters to a bench with its community rating attached.
// Call on a normalized filter.
func (f ListFilter) Matches(b *entities.Bench) bool {
	if f.MinCommunityRating != nil {
		rating := 0.0
		if b.CommunityRating != nil {
			rating = *b.CommunityRating
		}
		if rating < *f.MinCommunityRating {
			return false
		}
	}

	if f.HasRadius() && !geo.Within(*f.Lat, *f.Lng, b.Lat, b.Lng, *f.MaxDistanceKm) {
		return false
	}

	return true
}

// Apply returns the benches matching the filter, keeping their order
func (f ListFilter) Apply(benches []*entities.Bench) []*entities.Bench {
	f = f.Normalized()
	out := make([]*entities.Bench, 0, len(benches))
	for _, b := range benches {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	return out
}

func finiteOrNil(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	value := *v
	return &value
}
