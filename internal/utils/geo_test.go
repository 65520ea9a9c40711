package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodePoint(t *testing.T) {
	riyadh := GeoPoint{Latitude: 24.7136, Longitude: 46.6753}

	cell := EncodePoint(riyadh)

	assert.Len(t, cell, LoadGeohashPrecision)
	assert.Equal(t, cell, EncodePoint(riyadh), "encoding is deterministic")
}

func TestSearchCells(t *testing.T) {
	point := GeoPoint{Latitude: 24.7136, Longitude: 46.6753}

	cells := SearchCells(point)

	assert.Len(t, cells, 9)
	assert.Equal(t, EncodePoint(point), cells[0])

	seen := make(map[string]bool)
	for _, cell := range cells {
		assert.Len(t, cell, LoadGeohashPrecision)
		assert.False(t, seen[cell], "cells should be distinct")
		seen[cell] = true
	}
}

func TestCalculateDistance(t *testing.T) {
	riyadh := GeoPoint{Latitude: 24.7136, Longitude: 46.6753}
	jeddah := GeoPoint{Latitude: 21.4858, Longitude: 39.1925}

	distance := CalculateDistance(riyadh, jeddah)

	// road distance is ~950km, great-circle ~846km
	assert.InDelta(t, 846, distance, 15)

	assert.Zero(t, CalculateDistance(riyadh, riyadh))
}
