package kernel

import (
	"errors"
	"fmt"

	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"
)

const (
	// GeoMinLatitude is the minimum valid latitude in decimal degrees.
	GeoMinLatitude float64 = -90
	// GeoMaxLatitude is the maximum valid latitude in decimal degrees.
	GeoMaxLatitude float64 = 90
	// GeoMinLongitude is the minimum valid longitude in decimal degrees.
	GeoMinLongitude float64 = -180
	// GeoMaxLongitude is the maximum valid longitude in decimal degrees.
	GeoMaxLongitude float64 = 180
)

// ErrGeoPositionIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPosition. Positions must be created using the NewGeoPosition
// constructor to ensure validity.
var ErrGeoPositionIsNotConstructed = errs.NewValueIsRequiredError(
	"geo position must be created via NewGeoPosition constructor")

// GeoPosition represents a point on the globe in decimal degrees.
// It is an immutable value object used for port coordinates. The zero value is
// invalid and will fail validation - use the constructor to create instances.
//
// Example:
//
//	pos, err := kernel.NewGeoPosition(25.2769, 55.2962)
//	if err != nil {
//	    // Handle validation error
//	}
type GeoPosition struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPosition creates a GeoPosition from latitude and longitude in decimal
// degrees. Latitude must be within [-90, 90] and longitude within [-180, 180].
// Returns an error if either value is outside its valid range.
func NewGeoPosition(latitude, longitude float64) (GeoPosition, error) {
	pos := GeoPosition{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(pos.setLatitude(latitude), pos.setLongitude(longitude)); err != nil {
		return GeoPosition{}, err
	}

	return pos, nil
}

// Validate checks if the GeoPosition was properly constructed using the constructor.
// The zero value of GeoPosition is invalid and will fail this validation.
func (p GeoPosition) Validate() error {
	return p.guard.Validate(ErrGeoPositionIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPosition) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPosition) Longitude() float64 {
	return p.longitude
}

// IsEqual compares two positions for exact coordinate equality.
func (p GeoPosition) IsEqual(other GeoPosition) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// String returns a human-readable representation of the position.
func (p GeoPosition) String() string {
	return fmt.Sprintf("GeoPosition(%g,%g)", p.latitude, p.longitude)
}

func (p *GeoPosition) setLatitude(latitude float64) error {
	if latitude < GeoMinLatitude || latitude > GeoMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, GeoMinLatitude, GeoMaxLatitude)
	}
	p.latitude = latitude
	return nil
}

func (p *GeoPosition) setLongitude(longitude float64) error {
	if longitude < GeoMinLongitude || longitude > GeoMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, GeoMinLongitude, GeoMaxLongitude)
	}
	p.longitude = longitude
	return nil
}
