// Package ports defines the contracts between the application core and the
// outside world: the upstream back-office REST API (order sources, drivers,
// financial records), the geocoding service, the local order snapshot store,
// and the transition audit sink. Adapters implement these interfaces;
// use cases depend only on them.
package ports
