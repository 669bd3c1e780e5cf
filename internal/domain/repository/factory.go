package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Clients() ClientRepository
	Orders() OrderRepository
}

// Store is a storage backend owning its connection handle.
type Store interface {
	Factory
	// Initialize drops all persisted data and recreates the schema.
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close()
}
