package repository

import (
	"context"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// ClientRepository describes persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, client model.Client) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	GetByID(ctx context.Context, id int64) (*model.Client, error)
	// FindByName returns the earliest stored client with the exact name.
	FindByName(ctx context.Context, name string) (*model.Client, error)
}
