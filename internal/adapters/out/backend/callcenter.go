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

// callcenterOrderDTO mirrors the call-center channel's order payload:
// snake_case fields and an integer status code.
type callcenterOrderDTO struct {
	ID            string                   `json:"id"`
	CreatedAt     string                   `json:"created_at"`
	ClientID      string                   `json:"client_id"`
	ClientName    string                   `json:"client_name"`
	ClientAddress string                   `json:"client_address"`
	ClientLat     *float64                 `json:"client_lat"`
	ClientLng     *float64                 `json:"client_lng"`
	Lat           *float64                 `json:"lat"`
	Lng           *float64                 `json:"lng"`
	Status        *int                     `json:"status"`
	TotalPrice    *float64                 `json:"total_price"`
	Quantity      *int                     `json:"quantity"`
	PaymentMethod string                   `json:"payment_method"`
	DeliveryID    *string                  `json:"delivery_id"`
	Items         []callcenterOrderItemDTO `json:"items"`
}

type callcenterOrderItemDTO struct {
	ProductID  string   `json:"product_id"`
	Name       string   `json:"name"`
	Quantity   *int     `json:"quantity"`
	Price      *float64 `json:"price"`
	TotalPrice *float64 `json:"total_price"`
}

func (dto callcenterOrderDTO) toRaw() ports.RawOrder {
	items := make([]ports.RawOrderItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, ports.RawOrderItem{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Price:      item.Price,
			TotalPrice: item.TotalPrice,
		})
	}

	return ports.RawOrder{
		ID:              dto.ID,
		CreatedAt:       parseUpstreamTime(dto.CreatedAt),
		CustomerID:      dto.ClientID,
		CustomerName:    dto.ClientName,
		CustomerAddress: dto.ClientAddress,
		CustomerLat:     dto.ClientLat,
		CustomerLng:     dto.ClientLng,
		Lat:             dto.Lat,
		Lng:             dto.Lng,
		StatusCode:      dto.Status,
		TotalPrice:      dto.TotalPrice,
		Quantity:        dto.Quantity,
		PaymentMethod:   dto.PaymentMethod,
		DriverID:        dto.DeliveryID,
		Items:           items,
	}
}

// CallCenterOrderClient talks to the call-center order endpoints. Status
// updates carry the integer wire encoding; the OnTheWay transition uses the
// separate delivery-payload shape.
type CallCenterOrderClient struct {
	rest restClient
}

// NewCallCenterOrderClient creates a client for the call-center channel.
func NewCallCenterOrderClient(baseURL string, sess *session.Store) *CallCenterOrderClient {
	return &CallCenterOrderClient{rest: newRESTClient(baseURL, sess)}
}

// Source identifies the channel this client talks to.
func (c *CallCenterOrderClient) Source() kernel.Source {
	return kernel.SourceCallCenter
}

// ListOrders fetches all call-center orders.
func (c *CallCenterOrderClient) ListOrders(ctx context.Context) ([]ports.RawOrder, error) {
	var dtos []callcenterOrderDTO
	if err := c.rest.do(ctx, http.MethodGet, "/api/callcenter/orders", nil, &dtos); err != nil {
		return nil, err
	}

	raws := make([]ports.RawOrder, 0, len(dtos))
	for _, dto := range dtos {
		raws = append(raws, dto.toRaw())
	}
	return raws, nil
}

// GetOrder fetches a single call-center order by id.
func (c *CallCenterOrderClient) GetOrder(ctx context.Context, id string) (ports.RawOrder, error) {
	var dto callcenterOrderDTO
	err := c.rest.do(ctx, http.MethodGet, "/api/callcenter/orders/"+url.PathEscape(id), nil, &dto)
	if err != nil {
		return ports.RawOrder{}, err
	}
	return dto.toRaw(), nil
}

// UpdateStatus submits the bare integer status change.
func (c *CallCenterOrderClient) UpdateStatus(ctx context.Context, id string, target order.Status) error {
	body := struct {
		Status int `json:"status"`
	}{Status: target.Code()}

	return c.rest.do(ctx, http.MethodPatch,
		"/api/callcenter/orders/"+url.PathEscape(id)+"/status", body, nil)
}

// AssignDriver submits the delivery-payload shape that moves the order to
// OnTheWay.
func (c *CallCenterOrderClient) AssignDriver(ctx context.Context, id string, driverID string) error {
	body := struct {
		Status     int    `json:"status"`
		DeliveryID string `json:"delivery_id"`
	}{Status: order.OnTheWay.Code(), DeliveryID: driverID}

	return c.rest.do(ctx, http.MethodPatch,
		"/api/callcenter/orders/"+url.PathEscape(id)+"/delivery", body, nil)
}
