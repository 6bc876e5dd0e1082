// Package orderrepo provides data transfer objects and mapping functions
// for order snapshot persistence. It implements the repository pattern for
// the order aggregate, converting between domain entities and their
// database representation.
package orderrepo

import (
	"encoding/json"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// snapshots. The (id, source) pair forms the composite primary key: the two
// intake channels use independent id spaces, so the id alone is not unique.
// Line items are denormalized into a jsonb column; they are only ever read
// back as part of the whole order.
type OrderDTO struct {
	ID              string `gorm:"primaryKey;size:64"`
	Source          string `gorm:"primaryKey;size:16"`
	CreatedAt       time.Time
	CustomerID      string
	CustomerName    string
	CustomerAddress string
	CustomerLat     *float64
	CustomerLng     *float64
	RawLat          *float64
	RawLng          *float64
	TotalPrice      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity        int
	PaymentMethod   string `gorm:"size:16"`
	Status          int
	DriverID        *string `gorm:"size:64;index"`
	Items           []byte  `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order snapshots.
func (OrderDTO) TableName() string {
	return "order_snapshots"
}

type itemDTO struct {
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{
			ProductID:  item.ProductID(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	customer := aggregate.Customer()
	return OrderDTO{
		ID:              aggregate.Ref().ID(),
		Source:          string(aggregate.Ref().Source()),
		CreatedAt:       aggregate.CreatedAt(),
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerAddress: customer.Address,
		CustomerLat:     customer.Lat,
		CustomerLng:     customer.Lng,
		RawLat:          customer.RawLat,
		RawLng:          customer.RawLng,
		TotalPrice:      aggregate.TotalPrice(),
		Quantity:        aggregate.Quantity(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
		Status:          int(aggregate.Status()),
		DriverID:        aggregate.DriverID(),
		Items:           rawItems,
	}, nil
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	source, err := kernel.ParseSource(dto.Source)
	if err != nil {
		return nil, err
	}

	ref, err := kernel.NewOrderRef(dto.ID, source)
	if err != nil {
		return nil, err
	}

	var rawItems []itemDTO
	if len(dto.Items) > 0 {
		if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
			return nil, err
		}
	}

	items := make([]order.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, itemErr := order.NewItemWithTotal(
			raw.ProductID, raw.Name, raw.Quantity, raw.UnitPrice, raw.TotalPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		ref,
		dto.CreatedAt,
		order.Customer{
			ID:      dto.CustomerID,
			Name:    dto.CustomerName,
			Address: dto.CustomerAddress,
			Lat:     dto.CustomerLat,
			Lng:     dto.CustomerLng,
			RawLat:  dto.RawLat,
			RawLng:  dto.RawLng,
		},
		items,
		dto.TotalPrice,
		dto.Quantity,
		order.PaymentMethod(dto.PaymentMethod),
		order.Status(dto.Status),
		dto.DriverID,
	)
}
