package dto

import (
	"math"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

type GeoLocation struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Name      string  `json:"name" validate:"min=1,max=50"`
}

func NewGeoLocation(name string, latitude, longitude float64) (GeoLocation, error) {
	return New(GeoLocation{Latitude: latitude, Longitude: longitude, Name: name})
}

func (g GeoLocation) Validate() error {
	return validator.Struct(g)
}

// DistanceTo is shorthand for Distance(g, other).
func (g GeoLocation) DistanceTo(other GeoLocation) float64 {
	return Distance(g, other)
}

// Distance returns the great-circle (haversine) distance between a and b in
// kilometres, rounded to two decimals.
func Distance(a, b GeoLocation) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return round2(EarthRadiusKm * c)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (GeoLocation) requiredKeys() []string {
	return []string{"latitude", "longitude", "name"}
}
