package store

// HealthStore reports on database connectivity.
type HealthStore interface {
	// CheckConnectivity verifies the database is reachable.
	CheckConnectivity() error
}
