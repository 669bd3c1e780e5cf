package repository

import (
	"context"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create stores order for the client resolved by ClientID, or by
	// ClientName when ClientID is zero. It reports false without error when
	// no such client exists.
	Create(ctx context.Context, order model.Order) (*model.Order, bool, error)
	ListRecords(ctx context.Context) ([]model.OrderRecord, error)
	ListByClient(ctx context.Context, clientID int64) ([]model.Order, error)
}
