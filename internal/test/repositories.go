package test

import (
	"context"
	"errors"

	"github.com/polkiloo/ordertrack/internal/codec"
	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// ClientRepositoryStub stores clients in-memory for tests.
type ClientRepositoryStub struct {
	Clients []model.Client
	Err     error
}

// NewClientRepositoryStub constructs stub repository seeded with clients.
// Seeded clients without an id get one assigned in order.
func NewClientRepositoryStub(seed ...model.Client) *ClientRepositoryStub {
	s := &ClientRepositoryStub{}
	for _, c := range seed {
		if c.ID == 0 {
			c.ID = int64(len(s.Clients) + 1)
		}
		s.Clients = append(s.Clients, c)
	}
	return s
}

// Create assigns the next id unless stub has explicit error.
func (s *ClientRepositoryStub) Create(ctx context.Context, client model.Client) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	client.ID = int64(len(s.Clients) + 1)
	s.Clients = append(s.Clients, client)
	return &client, nil
}

// List returns clients in insertion order.
func (s *ClientRepositoryStub) List(ctx context.Context) ([]model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Client(nil), s.Clients...), nil
}

// GetByID fetches client by identifier or returns not found.
func (s *ClientRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Clients {
		if c.ID == id {
			client := c
			return &client, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// FindByName returns the earliest client with the name.
func (s *ClientRepositoryStub) FindByName(ctx context.Context, name string) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Clients {
		if c.Name == name {
			client := c
			return &client, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub keeps orders in-memory and resolves their clients
// through Clients. Fn overrides take precedence.
type OrderRepositoryStub struct {
	Clients *ClientRepositoryStub

	CreateFn       func(context.Context, model.Order) (*model.Order, bool, error)
	ListRecordsFn  func(context.Context) ([]model.OrderRecord, error)
	ListByClientFn func(context.Context, int64) ([]model.Order, error)

	Orders []model.Order
	Err    error
}

// NewOrderRepositoryStub constructs stub bound to clients.
func NewOrderRepositoryStub(clients *ClientRepositoryStub) *OrderRepositoryStub {
	return &OrderRepositoryStub{Clients: clients}
}

// Create stores the order when its client resolves, mirroring the store contract.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, bool, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, false, s.Err
	}
	if s.Clients == nil {
		s.Clients = NewClientRepositoryStub()
	}

	var (
		client *model.Client
		err    error
	)
	if order.ClientID != 0 {
		client, err = s.Clients.GetByID(ctx, order.ClientID)
	} else {
		client, err = s.Clients.FindByName(ctx, order.ClientName)
	}
	if errors.Is(err, domainErrors.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	order.ID = int64(len(s.Orders) + 1)
	order.ClientID = client.ID
	order.ClientName = client.Name
	s.Orders = append(s.Orders, order)
	return &order, true, nil
}

// ListRecords flattens stored orders with the store product encoding.
func (s *OrderRepositoryStub) ListRecords(ctx context.Context) ([]model.OrderRecord, error) {
	if s.ListRecordsFn != nil {
		return s.ListRecordsFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	records := make([]model.OrderRecord, 0, len(s.Orders))
	for _, o := range s.Orders {
		records = append(records, model.OrderRecord{
			ID:         o.ID,
			ClientName: o.ClientName,
			OrderDate:  o.OrderedAt.Format(model.DateLayout),
			Products:   codec.EncodeStore(o.Products),
		})
	}
	return records, nil
}

// ListByClient filters stored orders.
func (s *OrderRepositoryStub) ListByClient(ctx context.Context, clientID int64) ([]model.Order, error) {
	if s.ListByClientFn != nil {
		return s.ListByClientFn(ctx, clientID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.ClientID == clientID {
			result = append(result, o)
		}
	}
	return result, nil
}
