// Package services provides the domain services that operate across
// aggregates:
//
//   - Normalizer: converts source-specific raw order records into the
//     canonical order aggregate
//   - GeoResolver: resolves an order's delivery coordinates through an
//     ordered fallback chain with a per-address cache
//   - DeliveryFeeResolver: computes the delivery fee and grand total bound to
//     a driver assignment
//   - Aggregator: buckets financial records by calendar period and computes
//     revenue/expense/profit rollups
//   - Ranker: computes the top-selling products from merged order line items
//
// All services are pure with respect to shared state except GeoResolver,
// which keeps a session-scoped geocoding cache.
package services
