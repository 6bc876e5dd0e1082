package order

import "strings"

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	// PaymentCreditCard means the order was paid online by card.
	PaymentCreditCard PaymentMethod = "credit_card"
	// PaymentOnDelivery means the order is settled in cash on hand-over.
	PaymentOnDelivery PaymentMethod = "on_delivery"
)

// ParsePaymentMethod maps the upstream payment vocabulary onto the canonical
// enum. Unrecognized values default to PaymentOnDelivery, the dominant method
// for phoned-in orders.
func ParsePaymentMethod(raw string) PaymentMethod {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "credit_card", "creditcard", "card", "online":
		return PaymentCreditCard
	default:
		return PaymentOnDelivery
	}
}

// String implements fmt.Stringer.
func (m PaymentMethod) String() string {
	return string(m)
}
