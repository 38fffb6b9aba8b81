// Package geo detects the user's location from their public IP.
// Detection is best-effort: every failure maps to the documented
// default location (Mecca) plus an informational notice, never an
// error the caller has to handle.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Location holds geographic coordinates detected from the user's IP.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

// Default is the location substituted when detection fails: Mecca.
var Default = Location{
	Latitude:  21.4225,
	Longitude: 39.8262,
	City:      "Makkah",
	Country:   "Saudi Arabia",
	Timezone:  "Asia/Riyadh",
}

// ipAPIResponse maps the response from ip-api.com.
type ipAPIResponse struct {
	Status   string  `json:"status"`
	Message  string  `json:"message"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	Timezone string  `json:"timezone"`
}

// apiURL is the geolocation API endpoint. It is a variable (not a
// constant) so that tests can override it with an httptest server URL.
var apiURL = "http://ip-api.com/json/?fields=status,message,lat,lon,city,country,timezone"

// Detect uses ip-api.com to determine the user's location from their
// public IP address. This is a free service that requires no API key.
func Detect(ctx context.Context) (*Location, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geolocation request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned status %d", resp.StatusCode)
	}

	var result ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if result.Status != "success" {
		return nil, fmt.Errorf("geolocation failed: %s", result.Message)
	}

	return &Location{
		Latitude:  result.Lat,
		Longitude: result.Lon,
		City:      result.City,
		Country:   result.Country,
		Timezone:  result.Timezone,
	}, nil
}

// DetectOrDefault resolves a location, substituting the Mecca default
// on any detection failure. The returned notice is non-empty when the
// default was used; it is informational, not an error.
func DetectOrDefault(ctx context.Context) (Location, string) {
	loc, err := Detect(ctx)
	if err != nil {
		return Default, fmt.Sprintf("location detection failed (%v); using %s", err, Default.City)
	}
	return *loc, ""
}
