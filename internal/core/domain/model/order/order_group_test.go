package order_test

import (
	"testing"
	"time"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, priceCents int64) *order.OrderGroupService {
	t.Helper()
	line, err := order.NewOrderGroupService(kernel.NewUUID(), kernel.NewUUID(), priceCents)
	require.NoError(t, err)
	return line
}

func mustGroup(t *testing.T, lines ...*order.OrderGroupService) *order.OrderGroup {
	t.Helper()
	g, err := order.NewOrderGroup(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), lines)
	require.NoError(t, err)
	return g
}

func TestNewOrderGroup(t *testing.T) {
	t.Run("should create group in pending status", func(t *testing.T) {
		g := mustGroup(t, mustLine(t, 1500), mustLine(t, 2500))

		assert.Equal(t, order.StatusPending, g.Status())
		assert.Nil(t, g.AcceptedAt())
		assert.Nil(t, g.AcceptedBy())
		assert.Nil(t, g.RejectedAt())
		assert.Len(t, g.Services(), 2)
		assert.Equal(t, int64(4000), g.Subtotal())
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		_, err := order.NewOrderGroup(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), nil)
		require.Error(t, err)
	})

	t.Run("should reject unconstructed line items", func(t *testing.T) {
		_, err := order.NewOrderGroup(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]*order.OrderGroupService{{}})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var g order.OrderGroup
		require.ErrorIs(t, g.Validate(), order.ErrOrderGroupIsNotConstructed)
	})
}

func TestOrderGroup_Accept(t *testing.T) {
	t.Run("should record acceptance bookkeeping", func(t *testing.T) {
		g := mustGroup(t, mustLine(t, 1000))
		actorID := kernel.NewUUID()
		now := time.Now()

		err := g.Accept(actorID, now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusAccepted, g.Status())
		require.NotNil(t, g.AcceptedAt())
		assert.Equal(t, now, *g.AcceptedAt())
		require.NotNil(t, g.AcceptedBy())
		assert.True(t, g.AcceptedBy().IsEqual(actorID))
		assert.Nil(t, g.RejectedAt())
	})

	t.Run("should fail from non-pending status without mutation", func(t *testing.T) {
		g := mustGroup(t, mustLine(t, 1000))
		require.NoError(t, g.Accept(kernel.NewUUID(), time.Now()))
		acceptedBy := *g.AcceptedBy()

		err := g.Accept(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusAccepted, g.Status())
		assert.True(t, g.AcceptedBy().IsEqual(acceptedBy))
	})

	t.Run("should reject invalid actor id", func(t *testing.T) {
		g := mustGroup(t, mustLine(t, 1000))

		err := g.Accept(kernel.UUID{}, time.Now())

		require.Error(t, err)
		assert.Equal(t, order.StatusPending, g.Status())
	})
}

func TestOrderGroup_Reject(t *testing.T) {
	t.Run("should record rejection bookkeeping", func(t *testing.T) {
		g := mustGroup(t, mustLine(t, 1000))
		now := time.Now()

		err := g.Reject(now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusRejected, g.Status())
		require.NotNil(t, g.RejectedAt())
		assert.Equal(t, now, *g.RejectedAt())
		assert.Nil(t, g.AcceptedAt())
		assert.Nil(t, g.AcceptedBy())
	})

	t.Run("reject after accept fails with diagnostics", func(t *testing.T) {
		g := mustGroup(t, mustLine(t, 1000))
		require.NoError(t, g.Accept(kernel.NewUUID(), time.Now()))

		err := g.Reject(time.Now())

		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.StatusAccepted, transitionErr.Current)
		assert.Equal(t, order.StatusRejected, transitionErr.Requested)
		assert.Equal(t, order.StatusAccepted, g.Status())
	})

	t.Run("rejected group is terminal", func(t *testing.T) {
		g := mustGroup(t, mustLine(t, 1000))
		require.NoError(t, g.Reject(time.Now()))

		require.Error(t, g.Accept(kernel.NewUUID(), time.Now()))
		require.Error(t, g.Start())
		require.Error(t, g.Complete())
		assert.Equal(t, order.StatusRejected, g.Status())
	})
}

func TestOrderGroup_StartComplete(t *testing.T) {
	t.Run("full lifecycle", func(t *testing.T) {
		g := mustGroup(t, mustLine(t, 1000))

		require.NoError(t, g.Accept(kernel.NewUUID(), time.Now()))
		require.NoError(t, g.Start())
		assert.Equal(t, order.StatusInProgress, g.Status())
		require.NoError(t, g.Complete())
		assert.Equal(t, order.StatusCompleted, g.Status())
	})

	t.Run("start requires accepted", func(t *testing.T) {
		g := mustGroup(t, mustLine(t, 1000))
		require.ErrorIs(t, g.Start(), order.ErrInvalidTransition)
	})

	t.Run("complete requires in_progress", func(t *testing.T) {
		g := mustGroup(t, mustLine(t, 1000))
		require.NoError(t, g.Accept(kernel.NewUUID(), time.Now()))
		require.ErrorIs(t, g.Complete(), order.ErrInvalidTransition)
	})
}

func TestOrderGroup_Subtotal(t *testing.T) {
	t.Run("subtotal reflects added and removed line items", func(t *testing.T) {
		first := mustLine(t, 1000)
		g := mustGroup(t, first)
		assert.Equal(t, int64(1000), g.Subtotal())

		second := mustLine(t, 2500)
		require.NoError(t, g.AddService(second))
		assert.Equal(t, int64(3500), g.Subtotal())

		require.NoError(t, g.RemoveService(first.ID()))
		assert.Equal(t, int64(2500), g.Subtotal())
	})

	t.Run("duplicate catalog service is rejected", func(t *testing.T) {
		line := mustLine(t, 1000)
		g := mustGroup(t, line)

		duplicate, err := order.NewOrderGroupService(kernel.NewUUID(), line.ServiceID(), 900)
		require.NoError(t, err)

		require.ErrorIs(t, g.AddService(duplicate), order.ErrServiceAlreadyInGroup)
		assert.Equal(t, int64(1000), g.Subtotal())
	})

	t.Run("removing unknown line item fails", func(t *testing.T) {
		g := mustGroup(t, mustLine(t, 1000))
		require.ErrorIs(t, g.RemoveService(kernel.NewUUID()), order.ErrServiceLineNotFound)
	})
}

func TestOrderGroup_TransitionServiceStatus(t *testing.T) {
	t.Run("line item statuses are independent of the group", func(t *testing.T) {
		line := mustLine(t, 1000)
		g := mustGroup(t, line)

		require.NoError(t, g.TransitionServiceStatus(line.ID(), order.StatusAccepted))

		assert.Equal(t, order.StatusAccepted, line.Status())
		assert.Equal(t, order.StatusPending, g.Status())
	})

	t.Run("illegal line item transition fails", func(t *testing.T) {
		line := mustLine(t, 1000)
		g := mustGroup(t, line)

		err := g.TransitionServiceStatus(line.ID(), order.StatusCompleted)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, line.Status())
	})

	t.Run("unknown line item fails", func(t *testing.T) {
		g := mustGroup(t, mustLine(t, 1000))
		err := g.TransitionServiceStatus(kernel.NewUUID(), order.StatusAccepted)
		require.ErrorIs(t, err, order.ErrServiceLineNotFound)
	})
}

func TestOrderGroupService_PriceSnapshot(t *testing.T) {
	t.Run("snapshot is immutable after construction", func(t *testing.T) {
		line, err := order.NewOrderGroupService(kernel.NewUUID(), kernel.NewUUID(), 9900)

		require.NoError(t, err)
		assert.Equal(t, int64(9900), line.PriceSnapshot())

		// No mutator exists; restoring from persistence preserves the value.
		restored, err := order.RestoreOrderGroupService(
			line.ID(), line.ServiceID(), order.StatusAccepted, line.PriceSnapshot(), "berth 4")
		require.NoError(t, err)
		assert.Equal(t, int64(9900), restored.PriceSnapshot())
		assert.Equal(t, order.StatusAccepted, restored.Status())
		assert.Equal(t, "berth 4", restored.Notes())
	})

	t.Run("negative snapshot is rejected", func(t *testing.T) {
		_, err := order.NewOrderGroupService(kernel.NewUUID(), kernel.NewUUID(), -1)
		require.Error(t, err)
	})
}

func TestRestoreOrderGroup(t *testing.T) {
	t.Run("restores acceptance bookkeeping", func(t *testing.T) {
		id, orderID, orgID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		actorID := kernel.NewUUID()
		acceptedAt := time.Now()

		g, err := order.RestoreOrderGroup(id, orderID, orgID, order.StatusAccepted,
			[]*order.OrderGroupService{mustLine(t, 500)}, &acceptedAt, &actorID, nil, "pilot booked")

		require.NoError(t, err)
		assert.Equal(t, order.StatusAccepted, g.Status())
		assert.True(t, g.AcceptedBy().IsEqual(actorID))
		assert.Equal(t, "pilot booked", g.Notes())
		assert.Equal(t, int64(500), g.Subtotal())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrderGroup(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.StatusUnknown, nil, nil, nil, nil, "")
		require.Error(t, err)
	})
}
