// Package location models a query location as either geographic
// coordinates or a free-text address. Exactly one form is active;
// callers switch on Kind at the provider boundary instead of guessing
// from which fields happen to be filled.
package location

import (
	"fmt"
	"math"
)

// Kind discriminates the two location forms.
type Kind int

const (
	KindCoordinates Kind = iota
	KindAddress
)

// Location is a tagged union of coordinates and address.
// Construct with Coordinates or Address.
type Location struct {
	Kind      Kind
	Latitude  float64
	Longitude float64
	Text      string
}

// Coordinates builds a coordinate location (decimal degrees, WGS84).
func Coordinates(lat, lng float64) Location {
	return Location{Kind: KindCoordinates, Latitude: lat, Longitude: lng}
}

// Address builds an address location from free text.
func Address(text string) Location {
	return Location{Kind: KindAddress, Text: text}
}

// Validate checks the active representation.
// Coordinates must be finite and within [-90,90] / [-180,180];
// an address must be non-empty.
func (l Location) Validate() error {
	switch l.Kind {
	case KindCoordinates:
		if math.IsNaN(l.Latitude) || math.IsInf(l.Latitude, 0) ||
			math.IsNaN(l.Longitude) || math.IsInf(l.Longitude, 0) {
			return fmt.Errorf("coordinates must be finite")
		}
		if l.Latitude < -90 || l.Latitude > 90 {
			return fmt.Errorf("latitude %.4f out of range [-90, 90]", l.Latitude)
		}
		if l.Longitude < -180 || l.Longitude > 180 {
			return fmt.Errorf("longitude %.4f out of range [-180, 180]", l.Longitude)
		}
		return nil
	case KindAddress:
		if l.Text == "" {
			return fmt.Errorf("address must not be empty")
		}
		return nil
	default:
		return fmt.Errorf("unknown location kind %d", l.Kind)
	}
}

// String renders the location for logs and display.
func (l Location) String() string {
	if l.Kind == KindAddress {
		return l.Text
	}
	return fmt.Sprintf("%.4f, %.4f", l.Latitude, l.Longitude)
}

// CacheKey renders the location part of a cache key: coordinates are
// truncated to 4 decimal places so that logically identical queries
// collide, while an address is carried verbatim.
func (l Location) CacheKey() string {
	if l.Kind == KindAddress {
		return l.Text
	}
	return fmt.Sprintf("%.4f_%.4f", l.Latitude, l.Longitude)
}
