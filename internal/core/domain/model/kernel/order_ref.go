package kernel

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

// Source identifies the intake channel an order was placed through. The two
// channels use incompatible upstream encodings, so the source tag must travel
// with every order id used operationally.
type Source string

const (
	// SourceCallCenter is the call-center intake channel. It encodes order
	// status as a small integer.
	SourceCallCenter Source = "callcenter"
	// SourceMobile is the mobile/app intake channel. It encodes order status
	// as a lower-case label.
	SourceMobile Source = "mobile"
)

// ParseSource converts a raw channel name into a Source.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceCallCenter:
		return SourceCallCenter, nil
	case SourceMobile:
		return SourceMobile, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("source",
			fmt.Errorf("%q is not a known order source", s))
	}
}

// Validate checks that the Source is one of the known channels.
func (s Source) Validate() error {
	_, err := ParseSource(string(s))
	return err
}

// String implements fmt.Stringer.
func (s Source) String() string {
	return string(s)
}

// ErrOrderRefIsNotConstructed is returned when attempting to use an
// improperly initialized OrderRef.
var ErrOrderRefIsNotConstructed = errs.NewValueIsRequiredError(
	"order ref must be created via NewOrderRef")

// OrderRef is the composite operational identity of an order. Upstream ids
// are only unique within their source, so the pair (id, source) is the real
// key everywhere an order is referenced.
type OrderRef struct {
	id     string
	source Source
	guard  guard.ConstructorGuard
}

// NewOrderRef creates an OrderRef from a source-scoped id and its channel.
func NewOrderRef(id string, source Source) (OrderRef, error) {
	ref := OrderRef{guard: guard.NewConstructorGuard()}

	if err := errors.Join(ref.setID(id), ref.setSource(source)); err != nil {
		return OrderRef{}, err
	}

	return ref, nil
}

// Validate checks that the OrderRef was created through the constructor.
func (r OrderRef) Validate() error {
	return r.guard.Validate(ErrOrderRefIsNotConstructed)
}

// ID returns the source-scoped order id.
func (r OrderRef) ID() string {
	return r.id
}

// Source returns the intake channel the id belongs to.
func (r OrderRef) Source() Source {
	return r.source
}

// String implements fmt.Stringer, rendering "source/id".
func (r OrderRef) String() string {
	return fmt.Sprintf("%s/%s", r.source, r.id)
}

// IsEqual compares two refs by id and source.
func (r OrderRef) IsEqual(other OrderRef) bool {
	return r.id == other.id && r.source == other.source
}

func (r *OrderRef) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	r.id = id
	return nil
}

func (r *OrderRef) setSource(source Source) error {
	if err := source.Validate(); err != nil {
		return err
	}
	r.source = source
	return nil
}
