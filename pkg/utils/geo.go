package utils

import "math"

const (
	earthRadiusKm = 6371.0

	// Walking speed with a detour factor applied on top, since
	// street networks are never straight lines.
	walkingSpeedKmh = 5.0
	detourFactor    = 1.2
)

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// WalkingMinutes estimates walking time between two points, rounded to the
// nearest minute and clamped to [1, 120]. The second return value is false
// when the estimate rounds to zero and should be omitted entirely.
func WalkingMinutes(lat1, lon1, lat2, lon2 float64) (int, bool) {
	distKm := HaversineKm(lat1, lon1, lat2, lon2)
	minutes := int(math.Round(distKm / walkingSpeedKmh * 60 * detourFactor))
	if minutes <= 0 {
		return 0, false
	}
	if minutes > 120 {
		minutes = 120
	}
	return minutes, true
}
