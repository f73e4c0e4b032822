package http

import (
	"github.com/PortzApp/portzapp-web-sub002/internal/core/application/usecases/commands"
	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
)

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	VesselID        string                  `json:"vesselId"`
	PortID          string                  `json:"portId"`
	Groups          []OrderGroupSpecRequest `json:"groups"`
	WizardSessionID string                  `json:"wizardSessionId,omitempty"`
}

// OrderGroupSpecRequest names one fulfilling agency and the catalog services
// requested from it.
type OrderGroupSpecRequest struct {
	FulfillingOrgID string   `json:"fulfillingOrgId"`
	ServiceIDs      []string `json:"serviceIds"`
}

func (r OrderGroupSpecRequest) toSpec() (commands.OrderGroupSpec, error) {
	orgID, err := kernel.UUIDFromString(r.FulfillingOrgID)
	if err != nil {
		return commands.OrderGroupSpec{}, err
	}

	serviceIDs := make([]kernel.UUID, len(r.ServiceIDs))
	for i, raw := range r.ServiceIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return commands.OrderGroupSpec{}, idErr
		}
		serviceIDs[i] = id
	}

	return commands.OrderGroupSpec{
		GroupID:         kernel.NewUUID(),
		FulfillingOrgID: orgID,
		ServiceIDs:      serviceIDs,
	}, nil
}

// UpdateServiceStatusRequest is the body of the service line PATCH endpoint.
type UpdateServiceStatusRequest struct {
	Status string `json:"status"`
}

// CreateServiceRequest is the body of POST /api/v1/services.
type CreateServiceRequest struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

// CreateVesselRequest is the body of POST /api/v1/vessels.
type CreateVesselRequest struct {
	Name       string `json:"name"`
	IMONumber  string `json:"imoNumber"`
	VesselType string `json:"vesselType,omitempty"`
}

// OrderResponse is one row of GET /api/v1/orders.
type OrderResponse struct {
	ID              string `json:"id"`
	PlacedByOrgID   string `json:"placedByOrgId"`
	VesselID        string `json:"vesselId"`
	PortID          string `json:"portId"`
	Status          string `json:"status"`
	TotalPriceCents int64  `json:"totalPriceCents"`
}

// OrderGroupResponse is one row of GET /api/v1/order-groups.
type OrderGroupResponse struct {
	ID            string `json:"id"`
	OrderID       string `json:"orderId"`
	Status        string `json:"status"`
	SubtotalCents int64  `json:"subtotalCents"`
	ServiceCount  int    `json:"serviceCount"`
}

// CreatedResponse carries the server-assigned identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
