package backend

import (
	"context"
	"net/http"
	"net/url"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/session"
)

// mobileOrderDTO mirrors the mobile channel's order payload: camelCase
// fields and a string status label.
type mobileOrderDTO struct {
	ID            string               `json:"id"`
	CreatedAt     string               `json:"createdAt"`
	CustomerID    string               `json:"customerId"`
	CustomerName  string               `json:"customerName"`
	Address       string               `json:"address"`
	CustomerLat   *float64             `json:"customerLat"`
	CustomerLng   *float64             `json:"customerLng"`
	Latitude      *float64             `json:"latitude"`
	Longitude     *float64             `json:"longitude"`
	Status        string               `json:"status"`
	Total         *float64             `json:"total"`
	Quantity      *int                 `json:"quantity"`
	PaymentMethod string               `json:"paymentMethod"`
	DriverID      *string              `json:"driverId"`
	Products      []mobileOrderItemDTO `json:"products"`
}

type mobileOrderItemDTO struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	Qty         *int     `json:"qty"`
	UnitPrice   *float64 `json:"unitPrice"`
	TotalPrice  *float64 `json:"totalPrice"`
}

func (dto mobileOrderDTO) toRaw() ports.RawOrder {
	items := make([]ports.RawOrderItem, 0, len(dto.Products))
	for _, item := range dto.Products {
		items = append(items, ports.RawOrderItem{
			ProductID:  item.ProductID,
			Name:       item.ProductName,
			Quantity:   item.Qty,
			Price:      item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return ports.RawOrder{
		ID:              dto.ID,
		CreatedAt:       parseUpstreamTime(dto.CreatedAt),
		CustomerID:      dto.CustomerID,
		CustomerName:    dto.CustomerName,
		CustomerAddress: dto.Address,
		CustomerLat:     dto.CustomerLat,
		CustomerLng:     dto.CustomerLng,
		Lat:             dto.Latitude,
		Lng:             dto.Longitude,
		StatusLabel:     dto.Status,
		TotalPrice:      dto.Total,
		Quantity:        dto.Quantity,
		PaymentMethod:   dto.PaymentMethod,
		DriverID:        dto.DriverID,
		Items:           items,
	}
}

// MobileOrderClient talks to the mobile order endpoints. Status updates
// carry the string wire encoding; the OnTheWay transition uses the separate
// driver-payload shape.
type MobileOrderClient struct {
	rest restClient
}

// NewMobileOrderClient creates a client for the mobile channel.
func NewMobileOrderClient(baseURL string, sess *session.Store) *MobileOrderClient {
	return &MobileOrderClient{rest: newRESTClient(baseURL, sess)}
}

// Source identifies the channel this client talks to.
func (c *MobileOrderClient) Source() kernel.Source {
	return kernel.SourceMobile
}

// ListOrders fetches all mobile orders.
func (c *MobileOrderClient) ListOrders(ctx context.Context) ([]ports.RawOrder, error) {
	var dtos []mobileOrderDTO
	if err := c.rest.do(ctx, http.MethodGet, "/api/mobile/orders", nil, &dtos); err != nil {
		return nil, err
	}

	raws := make([]ports.RawOrder, 0, len(dtos))
	for _, dto := range dtos {
		raws = append(raws, dto.toRaw())
	}
	return raws, nil
}

// GetOrder fetches a single mobile order by id.
func (c *MobileOrderClient) GetOrder(ctx context.Context, id string) (ports.RawOrder, error) {
	var dto mobileOrderDTO
	err := c.rest.do(ctx, http.MethodGet, "/api/mobile/orders/"+url.PathEscape(id), nil, &dto)
	if err != nil {
		return ports.RawOrder{}, err
	}
	return dto.toRaw(), nil
}

// UpdateStatus submits the bare string status change.
func (c *MobileOrderClient) UpdateStatus(ctx context.Context, id string, target order.Status) error {
	body := struct {
		Status string `json:"status"`
	}{Status: target.MobileLabel()}

	return c.rest.do(ctx, http.MethodPatch,
		"/api/mobile/orders/"+url.PathEscape(id)+"/status", body, nil)
}

// AssignDriver submits the driver-payload shape that moves the order to
// OnTheWay.
func (c *MobileOrderClient) AssignDriver(ctx context.Context, id string, driverID string) error {
	body := struct {
		Status   string `json:"status"`
		DriverID string `json:"driverId"`
	}{Status: order.OnTheWay.MobileLabel(), DriverID: driverID}

	return c.rest.do(ctx, http.MethodPatch,
		"/api/mobile/orders/"+url.PathEscape(id)+"/delivery", body, nil)
}
