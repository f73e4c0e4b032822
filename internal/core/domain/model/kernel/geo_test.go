package kernel_test

import (
	"testing"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPosition(t *testing.T) {
	t.Run("should create position with valid coordinates", func(t *testing.T) {
		pos, err := kernel.NewGeoPosition(25.2769, 55.2962)

		require.NoError(t, err)
		assert.InDelta(t, 25.2769, pos.Latitude(), 0.0001)
		assert.InDelta(t, 55.2962, pos.Longitude(), 0.0001)
		require.NoError(t, pos.Validate())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lon float64
		}{
			{"south pole", -90, 0},
			{"north pole", 90, 0},
			{"antimeridian west", 0, -180},
			{"antimeridian east", 0, 180},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPosition(tc.lat, tc.lon)
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject out-of-range latitude", func(t *testing.T) {
		_, err := kernel.NewGeoPosition(90.5, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject out-of-range longitude", func(t *testing.T) {
		_, err := kernel.NewGeoPosition(0, -180.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join both range errors", func(t *testing.T) {
		_, err := kernel.NewGeoPosition(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestGeoPosition_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var pos kernel.GeoPosition

		err := pos.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPositionIsNotConstructed, err)
	})
}

func TestGeoPosition_IsEqual(t *testing.T) {
	t.Run("equal coordinates compare equal", func(t *testing.T) {
		a, _ := kernel.NewGeoPosition(1.5, 2.5)
		b, _ := kernel.NewGeoPosition(1.5, 2.5)
		c, _ := kernel.NewGeoPosition(1.5, 3.5)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestGeoPosition_String(t *testing.T) {
	pos, _ := kernel.NewGeoPosition(25.25, -55.5)
	assert.Equal(t, "GeoPosition(25.25,-55.5)", pos.String())
}
