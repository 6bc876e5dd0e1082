// Package geo contains the HTTP geocoding client used to resolve free-text
// customer addresses into coordinates.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

const defaultRequestTimeout = 10 * time.Second

// geocodeResultDTO mirrors one entry of the geocoding service response.
// Coordinates arrive as strings.
type geocodeResultDTO struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// HTTPGeocoder resolves addresses through a Nominatim-style search endpoint.
// The service is public and unauthenticated; failures are returned as-is and
// the caller decides on fallback behavior.
type HTTPGeocoder struct {
	baseURL string
	http    *http.Client
}

// NewHTTPGeocoder creates a geocoding client for the given service base URL.
func NewHTTPGeocoder(baseURL string) *HTTPGeocoder {
	return &HTTPGeocoder{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}
}

// Geocode resolves a free-text address into coordinates. The first result is
// taken; an empty result set surfaces as errs.ErrObjectNotFound.
func (g *HTTPGeocoder) Geocode(ctx context.Context, address string) (kernel.GeoPoint, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, fmt.Errorf("geocode %q: service returned %d", address, resp.StatusCode)
	}

	var results []geocodeResultDTO
	if err = json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return kernel.GeoPoint{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return kernel.GeoPoint{}, errs.NewObjectNotFoundError("address", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("lat", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("lon", err)
	}

	return kernel.NewGeoPoint(lat, lng)
}
