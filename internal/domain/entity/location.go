package entity

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Location is a WGS84 coordinate.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Point converts the location to an orb point (x = longitude, y = latitude).
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// DistanceTo returns the great-circle distance in meters.
func (l Location) DistanceTo(other Location) float64 {
	return geo.Distance(l.Point(), other.Point())
}
