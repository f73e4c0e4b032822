package guard_test

import (
	"errors"
	"testing"

	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_provided_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		wantErr := errors.New("Vessel must be created via NewVessel")

		err := g.Validate(wantErr)

		require.Error(t, err)
		assert.Equal(t, wantErr, err)
	})

	t.Run("zero_value_guard_with_nil_error_uses_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

func TestConstructorGuardEmbedded(t *testing.T) {
	errVesselNotConstructed := errors.New("Vessel must be created via NewVessel")

	type vessel struct {
		imo   string
		guard guard.ConstructorGuard
	}

	newVessel := func(imo string) (vessel, error) {
		if imo == "" {
			return vessel{}, errors.New("imo is required")
		}
		return vessel{imo: imo, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_instance_validates", func(t *testing.T) {
		v, err := newVessel("9074729")

		require.NoError(t, err)
		require.NoError(t, v.guard.Validate(errVesselNotConstructed))
		assert.Equal(t, "9074729", v.imo)
	})

	t.Run("zero_value_instance_fails_validation", func(t *testing.T) {
		var v vessel

		err := v.guard.Validate(errVesselNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errVesselNotConstructed, err)
	})
}
