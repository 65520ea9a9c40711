package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// LoadGeohashPrecision is the geohash cell size used to index load origins.
// Precision 5 cells are roughly 5km x 5km, a sensible pickup search area.
const LoadGeohashPrecision = 5

// EncodePoint converts a point to a geohash string at the load index precision
func EncodePoint(point GeoPoint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, LoadGeohashPrecision)
}

// SearchCells returns the geohash cell of the point plus its eight neighbors,
// covering the full search area around a cell boundary.
func SearchCells(point GeoPoint) []string {
	center := EncodePoint(point)
	return append([]string{center}, geohash.Neighbors(center)...)
}

// CalculateDistance calculates the distance between two points in kilometers
// using the Haversine formula.
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
