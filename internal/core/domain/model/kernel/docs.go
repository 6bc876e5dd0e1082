// Package kernel provides the core domain primitives shared by the rest of
// the model.
//
// The package includes:
//   - GeoPoint: a value object for validated WGS84 coordinates with the fixed
//     fallback center used when an order's location cannot be resolved
//   - Source: the intake channel an order was placed through
//   - OrderRef: the composite operational identity of an order (id + source),
//     required because upstream ids are only unique within their channel
//
// All primitives are immutable, validated at construction, and safe for
// concurrent use.
package kernel
