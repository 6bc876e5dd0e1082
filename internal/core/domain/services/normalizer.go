package services

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"

	"github.com/shopspring/decimal"
)

// ErrMalformedOrder is returned when a raw record lacks the identity fields
// needed to build a canonical order. Malformed records are dropped and
// logged; they never abort a batch.
var ErrMalformedOrder = errors.New("malformed order record")

// Normalizer converts raw upstream order records into the canonical order
// aggregate. It owns the two status decodings and the total-price and
// quantity fallback chains.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() Normalizer {
	return Normalizer{}
}

// Normalize builds a canonical order from one raw record.
//
// Identity: id and createdAt are required; everything else degrades
// gracefully. Status decoding depends on the source (the call-center
// channel ships an integer code, the mobile channel a string label), and
// unmapped values resolve to order.Unknown rather than failing, so reporting
// survives upstream vocabulary drift. Total price falls back from the
// upstream total to the sum of line totals to zero; quantity from the
// explicit field to the sum of line quantities to one. A driver reference on
// a record whose status cannot carry one is discarded rather than failing
// the record.
func (n Normalizer) Normalize(raw ports.RawOrder, source kernel.Source) (*order.Order, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrMalformedOrder)
	}
	if raw.CreatedAt == nil || raw.CreatedAt.IsZero() {
		return nil, fmt.Errorf("%w: missing createdAt for id %s", ErrMalformedOrder, raw.ID)
	}

	ref, err := kernel.NewOrderRef(raw.ID, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedOrder, err)
	}

	status := n.decodeStatus(raw, source)
	items := n.normalizeItems(raw.Items)

	driverID := raw.DriverID
	if status.ValidateDriverAssignment(driverID != nil) != nil {
		driverID = nil
	}

	return order.RestoreOrder(
		ref,
		*raw.CreatedAt,
		order.Customer{
			ID:      raw.CustomerID,
			Name:    raw.CustomerName,
			Address: raw.CustomerAddress,
			Lat:     raw.CustomerLat,
			Lng:     raw.CustomerLng,
			RawLat:  raw.Lat,
			RawLng:  raw.Lng,
		},
		items,
		n.totalPrice(raw, items),
		n.quantity(raw, items),
		order.ParsePaymentMethod(raw.PaymentMethod),
		status,
		driverID,
	)
}

// NormalizeBatch normalizes a slice of raw records, dropping malformed ones.
// It returns the normalized orders and the refs-less raw ids that were
// dropped, so callers can log them. Merge across sources is concatenation:
// ids are only unique per source, so no cross-source de-duplication happens.
func (n Normalizer) NormalizeBatch(
	raws []ports.RawOrder, source kernel.Source,
) (orders []*order.Order, dropped []string) {
	orders = make([]*order.Order, 0, len(raws))
	for _, raw := range raws {
		o, err := n.Normalize(raw, source)
		if err != nil {
			dropped = append(dropped, raw.ID)
			continue
		}
		orders = append(orders, o)
	}
	return orders, dropped
}

func (n Normalizer) decodeStatus(raw ports.RawOrder, source kernel.Source) order.Status {
	if source == kernel.SourceCallCenter {
		if raw.StatusCode == nil {
			return order.Unknown
		}
		return order.StatusFromCode(*raw.StatusCode)
	}
	return order.StatusFromLabel(raw.StatusLabel)
}

func (n Normalizer) normalizeItems(raws []ports.RawOrderItem) []order.Item {
	items := make([]order.Item, 0, len(raws))
	for _, raw := range raws {
		productID := raw.ProductID
		if productID == "" {
			// Some historical mobile records identify lines by name only.
			productID = raw.Name
		}
		if productID == "" {
			continue
		}

		quantity := 1
		if raw.Quantity != nil && *raw.Quantity >= 0 {
			quantity = *raw.Quantity
		}

		unitPrice := decimal.Zero
		if raw.Price != nil {
			unitPrice = decimal.NewFromFloat(*raw.Price)
		}

		var item order.Item
		var err error
		if raw.TotalPrice != nil {
			item, err = order.NewItemWithTotal(productID, raw.Name, quantity, unitPrice,
				decimal.NewFromFloat(*raw.TotalPrice))
		} else {
			item, err = order.NewItem(productID, raw.Name, quantity, unitPrice)
		}
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

func (n Normalizer) totalPrice(raw ports.RawOrder, items []order.Item) decimal.Decimal {
	if raw.TotalPrice != nil {
		return decimal.NewFromFloat(*raw.TotalPrice)
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

func (n Normalizer) quantity(raw ports.RawOrder, items []order.Item) int {
	if raw.Quantity != nil {
		return *raw.Quantity
	}

	if len(items) > 0 {
		sum := 0
		for _, item := range items {
			sum += item.Quantity()
		}
		return sum
	}

	return 1
}
