package kernel

import (
	"errors"
	"fmt"
	"math"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

const (
	// GeoPointMinLat and GeoPointMaxLat bound valid WGS84 latitudes.
	GeoPointMinLat = -90.0
	GeoPointMaxLat = 90.0
	// GeoPointMinLng and GeoPointMaxLng bound valid WGS84 longitudes.
	GeoPointMinLng = -180.0
	GeoPointMaxLng = 180.0

	// defaultLat and defaultLng locate the fallback map center (the main
	// branch) used when an order carries no resolvable location.
	defaultLat = 30.0444
	defaultLng = 31.2357
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an
// improperly initialized GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint or DefaultGeoPoint")

// GeoPoint is an immutable value object representing a validated coordinate
// pair. The zero value is invalid; use the constructors.
type GeoPoint struct {
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude. Both components
// must be finite numbers within WGS84 bounds.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setLat(lat), p.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// DefaultGeoPoint returns the fixed fallback center. Callers can detect it
// with IsDefault to decide whether a resolution actually succeeded.
func DefaultGeoPoint() GeoPoint {
	p, _ := NewGeoPoint(defaultLat, defaultLng)
	return p
}

// Validate checks that the GeoPoint was created through a constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude component.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude component.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsDefault reports whether the point equals the fallback center.
func (p GeoPoint) IsDefault() bool {
	return p.lat == defaultLat && p.lng == defaultLng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lat, p.lng)
}

// IsEqual compares two points. Both must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// IsUsableCoordinate reports whether a raw coordinate pair may serve as a
// delivery location: both components finite, in bounds, and not the
// degenerate (0,0) point that upstream records use as "unset".
func IsUsableCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	if lat == 0 && lng == 0 {
		return false
	}
	return lat >= GeoPointMinLat && lat <= GeoPointMaxLat &&
		lng >= GeoPointMinLng && lng <= GeoPointMaxLng
}

func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return errs.NewValueIsInvalidError("lat")
	}
	if lat < GeoPointMinLat || lat > GeoPointMaxLat {
		return errs.NewValueIsOutOfRangeError("lat", lat, GeoPointMinLat, GeoPointMaxLat)
	}

	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if math.IsNaN(lng) || math.IsInf(lng, 0) {
		return errs.NewValueIsInvalidError("lng")
	}
	if lng < GeoPointMinLng || lng > GeoPointMaxLng {
		return errs.NewValueIsOutOfRangeError("lng", lng, GeoPointMinLng, GeoPointMaxLng)
	}

	p.lng = lng
	return nil
}
