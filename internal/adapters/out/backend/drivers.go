package backend

import (
	"context"
	"net/http"
	"net/url"

	"backoffice/internal/core/domain/model/driver"
	"backoffice/internal/pkg/session"

	"github.com/shopspring/decimal"
)

// driverDTO mirrors the upstream driver registry payload.
type driverDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Salary   float64 `json:"salary"`
	Status   string  `json:"status"`
	IsActive bool    `json:"isActive"`
}

func (dto driverDTO) toDomain() (*driver.Driver, error) {
	return driver.NewDriver(
		dto.ID,
		dto.Name,
		dto.Phone,
		decimal.NewFromFloat(dto.Salary),
		driver.ParseState(dto.Status),
		dto.IsActive,
	)
}

// DriverHTTPClient talks to the upstream delivery driver registry.
type DriverHTTPClient struct {
	rest restClient
}

// NewDriverHTTPClient creates a client for the driver registry.
func NewDriverHTTPClient(baseURL string, sess *session.Store) *DriverHTTPClient {
	return &DriverHTTPClient{rest: newRESTClient(baseURL, sess)}
}

// List fetches all delivery drivers. Registry entries without an id are
// skipped rather than failing the listing.
func (c *DriverHTTPClient) List(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []driverDTO
	if err := c.rest.do(ctx, http.MethodGet, "/api/deliveries", nil, &dtos); err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := dto.toDomain()
		if err != nil {
			continue
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

// Get fetches a single driver by id.
func (c *DriverHTTPClient) Get(ctx context.Context, id string) (*driver.Driver, error) {
	var dto driverDTO
	err := c.rest.do(ctx, http.MethodGet, "/api/deliveries/"+url.PathEscape(id), nil, &dto)
	if err != nil {
		return nil, err
	}
	return dto.toDomain()
}

// Delete removes a driver from the registry.
func (c *DriverHTTPClient) Delete(ctx context.Context, id string) error {
	return c.rest.do(ctx, http.MethodDelete, "/api/deliveries/"+url.PathEscape(id), nil, nil)
}
