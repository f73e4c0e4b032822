package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/application/usecases/queries"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

func TestNewGetOrdersForActorQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersForActorQuery(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrdersForActorQuery_InvalidIDs(t *testing.T) {
	_, err := queries.NewGetOrdersForActorQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetOrdersForActorQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrdersForActorQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersForActorQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersForActorQueryIsNotConstructed)
}
