// Package geo holds great-circle helpers used by the bench listing filters.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine distance in kilometres between two points
// given in degrees. NaN inputs yield NaN.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// Within reports whether (lat, lng) lies at most maxKm from the reference point.
func Within(refLat, refLng, lat, lng, maxKm float64) bool {
	return DistanceKm(refLat, refLng, lat, lng) <= maxKm
}

// ValidCoordinates reports whether lat/lng are finite and inside the WGS84 range.
func ValidCoordinates(lat, lng float64) bool {
	if !isFinite(lat) || !isFinite(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
