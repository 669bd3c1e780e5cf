package usecase

import (
	"context"
	"strings"

	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

// ClientUseCase registers clients and summarizes their spending.
type ClientUseCase struct {
	clients repository.ClientRepository
	orders  repository.OrderRepository
}

// NewClientUseCase constructs ClientUseCase.
func NewClientUseCase(clients repository.ClientRepository, orders repository.OrderRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, orders: orders}
}

// Register validates contact details and persists a new client.
func (u *ClientUseCase) Register(ctx context.Context, name, email, phone, address string) (*model.Client, error) {
	client, err := model.NewClient(strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(phone), strings.TrimSpace(address))
	if err != nil {
		return nil, err
	}
	return u.clients.Create(ctx, *client)
}

// List returns all clients in registration order.
func (u *ClientUseCase) List(ctx context.Context) ([]model.Client, error) {
	return u.clients.List(ctx)
}

// Summary returns the client with its order count and total spent.
func (u *ClientUseCase) Summary(ctx context.Context, id int64) (*model.ClientSummary, error) {
	client, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	return &model.ClientSummary{
		Client:     *client,
		OrderCount: len(model.OrdersOf(*client, orders)),
		TotalSpent: model.TotalSpent(*client, orders),
	}, nil
}
