package queries

import (
	"context"

	"backoffice/internal/core/ports"
)

// GetDriversQueryHandler retrieves driver information from the upstream
// registry client.
type GetDriversQueryHandler struct {
	drivers ports.DriverClient
}

// NewGetDriversQueryHandler creates a handler for driver roster queries.
func NewGetDriversQueryHandler(drivers ports.DriverClient) GetDriversQueryHandler {
	return GetDriversQueryHandler{drivers: drivers}
}

// Handle executes the query to retrieve all drivers.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) ([]GetDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers, err := h.drivers.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetDriversQueryResponse, 0, len(drivers))
	for _, d := range drivers {
		if d.Validate() != nil {
			continue
		}
		responses = append(responses, GetDriversQueryResponse{
			ID:           d.ID(),
			Name:         d.Name(),
			Phone:        d.Phone(),
			Salary:       d.Salary(),
			State:        string(d.State()),
			IsActive:     d.IsActive(),
			IsAssignable: d.IsAssignable(),
		})
	}

	return responses, nil
}
