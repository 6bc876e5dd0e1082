package services

import (
	"context"
	"log/slog"
	"sync"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
)

// GeoResolver resolves an order's delivery coordinates. Resolve never fails:
// it walks an ordered fallback chain and ends at the fixed default center.
//
// Resolution order:
//  1. structured customer lat/lng, when both are usable coordinates
//  2. the generic lat/lng pair some records carry instead
//  3. geocoding the free-text customer address, cached per address for the
//     lifetime of the resolver
//  4. kernel.DefaultGeoPoint()
//
// Resolution is idempotent for a given order snapshot (modulo the geocoder
// cache), so callers may skip re-resolution once a non-default point is
// known.
type GeoResolver struct {
	geocoder ports.Geocoder
	logger   *slog.Logger

	mu    sync.Mutex
	cache map[string]kernel.GeoPoint
}

// NewGeoResolver creates a GeoResolver with an empty address cache.
func NewGeoResolver(geocoder ports.Geocoder, logger *slog.Logger) *GeoResolver {
	return &GeoResolver{
		geocoder: geocoder,
		logger:   logger.With("component", "geo_resolver"),
		cache:    make(map[string]kernel.GeoPoint),
	}
}

// Resolve returns a usable delivery point for the order.
func (r *GeoResolver) Resolve(ctx context.Context, o *order.Order) kernel.GeoPoint {
	customer := o.Customer()

	if p, ok := pointFrom(customer.Lat, customer.Lng); ok {
		return p
	}
	if p, ok := pointFrom(customer.RawLat, customer.RawLng); ok {
		return p
	}
	if customer.Address != "" {
		if p, ok := r.geocode(ctx, customer.Address); ok {
			return p
		}
	}

	return kernel.DefaultGeoPoint()
}

func (r *GeoResolver) geocode(ctx context.Context, address string) (kernel.GeoPoint, bool) {
	r.mu.Lock()
	cached, ok := r.cache[address]
	r.mu.Unlock()
	if ok {
		return cached, true
	}

	point, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		r.logger.DebugContext(ctx, "geocoding failed, falling back to default center",
			"address", address, "error", err)
		return kernel.GeoPoint{}, false
	}

	r.mu.Lock()
	r.cache[address] = point
	r.mu.Unlock()
	return point, true
}

func pointFrom(lat, lng *float64) (kernel.GeoPoint, bool) {
	if lat == nil || lng == nil || !kernel.IsUsableCoordinate(*lat, *lng) {
		return kernel.GeoPoint{}, false
	}

	p, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return kernel.GeoPoint{}, false
	}
	return p, true
}
