// Package api communicates with the Al Adhan prayer times API.
//
// Every failure mode -- transport error, non-2xx status, malformed
// JSON, or an error envelope -- surfaces as a plain error; the caller
// only needs to know the remote tier failed, not why.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/asksunna/salat/internal/location"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// Client communicates with the Al Adhan prayer times API.
type Client struct {
	httpClient *http.Client
	// BaseURL is the API base URL. Defaults to the Al Adhan API.
	// Exported for testing with httptest.
	BaseURL string
}

// NewClient creates a new API client with sensible defaults.
// The transport timeout bounds every request so a hung remote call
// cannot delay fallback indefinitely.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseURL: defaultBaseURL,
	}
}

// FetchTimings fetches prayer times for the given date and location.
// Coordinate locations use the timings endpoint; address locations use
// the address-resolving variant.
func (c *Client) FetchTimings(ctx context.Context, date time.Time, loc location.Location, methodID int) (*Response, error) {
	dateStr := date.Format("02-01-2006")

	var endpoint string
	params := url.Values{}
	switch loc.Kind {
	case location.KindAddress:
		endpoint = fmt.Sprintf("%s/timingsByAddress/%s", c.BaseURL, dateStr)
		params.Set("address", loc.Text)
	default:
		endpoint = fmt.Sprintf("%s/timings/%s", c.BaseURL, dateStr)
		params.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
		params.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
	}
	params.Set("method", fmt.Sprintf("%d", methodID))

	var resp Response
	if err := c.doRequest(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}

	return &resp, nil
}

// FetchCalendar fetches one Gregorian month of daily records for the
// given location.
func (c *Client) FetchCalendar(ctx context.Context, year, month int, loc location.Location, methodID int) (*CalendarResponse, error) {
	var endpoint string
	params := url.Values{}
	switch loc.Kind {
	case location.KindAddress:
		endpoint = fmt.Sprintf("%s/calendarByAddress/%d/%d", c.BaseURL, year, month)
		params.Set("address", loc.Text)
	default:
		endpoint = fmt.Sprintf("%s/calendar/%d/%d", c.BaseURL, year, month)
		params.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
		params.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
	}
	params.Set("method", fmt.Sprintf("%d", methodID))

	var resp CalendarResponse
	if err := c.doRequest(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}

	return &resp, nil
}

func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build API request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}

	return nil
}
