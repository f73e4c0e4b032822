package order_test

import (
	"testing"
	"time"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in pending status with zero total", func(t *testing.T) {
		o := mustOrder(t)

		assert.Equal(t, order.OrderStatusPending, o.Status())
		assert.Zero(t, o.TotalPrice())
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRollupStatus(t *testing.T) {
	testCases := []struct {
		name     string
		groups   []order.Status
		expected order.OrderStatus
	}{
		{"no groups", nil, order.OrderStatusPending},
		{"all pending", []order.Status{order.StatusPending, order.StatusPending}, order.OrderStatusPending},
		{"all rejected", []order.Status{order.StatusRejected, order.StatusRejected}, order.OrderStatusCancelled},
		{"rejected plus pending stays pending", []order.Status{order.StatusRejected, order.StatusPending}, order.OrderStatusPending},
		{"all accepted", []order.Status{order.StatusAccepted, order.StatusAccepted}, order.OrderStatusAccepted},
		{"accepted plus rejected", []order.Status{order.StatusAccepted, order.StatusRejected}, order.OrderStatusAccepted},
		{"accepted plus pending stays pending", []order.Status{order.StatusAccepted, order.StatusPending}, order.OrderStatusPending},
		{"any in_progress wins", []order.Status{order.StatusInProgress, order.StatusPending}, order.OrderStatusInProgress},
		{"completed among open groups is in_progress", []order.Status{order.StatusCompleted, order.StatusPending}, order.OrderStatusInProgress},
		{"all completed", []order.Status{order.StatusCompleted, order.StatusCompleted}, order.OrderStatusCompleted},
		{"completed plus rejected", []order.Status{order.StatusCompleted, order.StatusRejected}, order.OrderStatusCompleted},
		{"single completed", []order.Status{order.StatusCompleted}, order.OrderStatusCompleted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, order.RollupStatus(tc.groups))
		})
	}
}

func TestRollupStatus_Monotonic(t *testing.T) {
	// Moving any single group forward through its own machine must never move
	// the order backward in the pending < accepted < in_progress < completed
	// ordering (cancelled is reachable only while every group is rejected).
	rank := map[order.OrderStatus]int{
		order.OrderStatusPending:    0,
		order.OrderStatusAccepted:   1,
		order.OrderStatusInProgress: 2,
		order.OrderStatusCompleted:  3,
		order.OrderStatusCancelled:  3,
	}

	base := []order.Status{order.StatusPending, order.StatusAccepted, order.StatusInProgress}
	before := order.RollupStatus(base)

	for i, s := range base {
		for _, next := range s.AllowedTransitions() {
			advanced := append([]order.Status(nil), base...)
			advanced[i] = next
			after := order.RollupStatus(advanced)
			assert.GreaterOrEqual(t, rank[after], rank[before],
				"advancing group %d from %s to %s moved order backward (%s -> %s)",
				i, s, next, before, after)
		}
	}
}

func TestOrder_Reconcile(t *testing.T) {
	t.Run("recomputes status and total from groups", func(t *testing.T) {
		o := mustOrder(t)

		g1 := mustGroup(t, mustLine(t, 1000), mustLine(t, 500))
		g2 := mustGroup(t, mustLine(t, 2000))
		require.NoError(t, g1.Accept(kernel.NewUUID(), time.Now()))
		require.NoError(t, g1.Start())

		require.NoError(t, o.Reconcile([]*order.OrderGroup{g1, g2}))

		assert.Equal(t, order.OrderStatusInProgress, o.Status())
		assert.Equal(t, int64(3500), o.TotalPrice())
	})

	t.Run("all groups rejected cancels the order", func(t *testing.T) {
		o := mustOrder(t)
		g := mustGroup(t, mustLine(t, 1000))
		require.NoError(t, g.Reject(time.Now()))

		require.NoError(t, o.Reconcile([]*order.OrderGroup{g}))

		assert.Equal(t, order.OrderStatusCancelled, o.Status())
	})

	t.Run("rejects unconstructed groups", func(t *testing.T) {
		o := mustOrder(t)
		require.Error(t, o.Reconcile([]*order.OrderGroup{{}}))
	})
}

func TestOrderStatus_Strings(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range []order.OrderStatus{
			order.OrderStatusPending,
			order.OrderStatusAccepted,
			order.OrderStatusInProgress,
			order.OrderStatusCompleted,
			order.OrderStatusCancelled,
		} {
			parsed, err := order.OrderStatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		require.Error(t, order.OrderStatusUnknown.Validate())
		_, err := order.OrderStatusFromString("archived")
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("preserves status and total", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.RestoreOrder(id, kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), order.OrderStatusInProgress, 12500)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.OrderStatusInProgress, o.Status())
		assert.Equal(t, int64(12500), o.TotalPrice())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), order.OrderStatusUnknown, 0)
		require.Error(t, err)
	})
}
