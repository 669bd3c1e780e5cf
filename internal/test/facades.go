package test

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// ClientFacadeStub provides controllable behaviour for client endpoints.
type ClientFacadeStub struct {
	RegisterFn func(context.Context, string, string, string, string) (*model.Client, error)
	ClientsFn  func(context.Context) ([]model.Client, error)
	SummaryFn  func(context.Context, int64) (*model.ClientSummary, error)
}

// RegisterClient delegates to provided function or echoes the client with id 1.
func (s ClientFacadeStub) RegisterClient(ctx context.Context, name, email, phone, address string) (*model.Client, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, phone, address)
	}
	return &model.Client{ID: 1, Name: name, Email: email, Phone: phone, Address: address}, nil
}

// Clients returns predefined clients.
func (s ClientFacadeStub) Clients(ctx context.Context) ([]model.Client, error) {
	if s.ClientsFn != nil {
		return s.ClientsFn(ctx)
	}
	return []model.Client{{ID: 1, Name: "Ivan", Email: "ivan@mail.com", Phone: "+79001234567"}}, nil
}

// ClientSummary returns a fixed summary for any id.
func (s ClientFacadeStub) ClientSummary(ctx context.Context, id int64) (*model.ClientSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, id)
	}
	return &model.ClientSummary{
		Client:     model.Client{ID: id, Name: "Ivan"},
		OrderCount: 2,
		TotalSpent: decimal.NewFromInt(77000),
	}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn  func(context.Context, model.PlaceOrder) (*model.Order, bool, error)
	OrdersFn func(context.Context, model.RecordSort) ([]model.OrderRecord, error)
}

// PlaceOrder delegates to provided function or accepts the order as id 1.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, req model.PlaceOrder) (*model.Order, bool, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, req)
	}
	order := &model.Order{ID: 1, ClientID: req.ClientID, ClientName: req.ClientName, OrderedAt: req.OrderedAt}
	for _, p := range req.Products {
		order.Products = append(order.Products, model.Product{Name: p.Name, Price: p.Price, Category: p.Category})
	}
	return order, true, nil
}

// Orders returns predefined records.
func (s OrderFacadeStub) Orders(ctx context.Context, sortBy model.RecordSort) ([]model.OrderRecord, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, sortBy)
	}
	return []model.OrderRecord{{ID: 1, ClientName: "Ivan", OrderDate: "2024-05-01 10:00:00", Products: "Book:500"}}, nil
}

// ReportFacadeStub returns configured reports.
type ReportFacadeStub struct {
	Ranked []model.NameCount
	Series []model.DateCount
	Graph  model.Graph
	Err    error
	Limits *[]int
}

func (s ReportFacadeStub) record(limit int) {
	if s.Limits != nil {
		*s.Limits = append(*s.Limits, limit)
	}
}

func (s ReportFacadeStub) TopClients(ctx context.Context, limit int) ([]model.NameCount, error) {
	s.record(limit)
	return s.Ranked, s.Err
}

func (s ReportFacadeStub) TopProducts(ctx context.Context, limit int) ([]model.NameCount, error) {
	s.record(limit)
	return s.Ranked, s.Err
}

func (s ReportFacadeStub) OrdersOverTime(ctx context.Context) ([]model.DateCount, error) {
	return s.Series, s.Err
}

func (s ReportFacadeStub) ClientGraph(ctx context.Context) (model.Graph, error) {
	return s.Graph, s.Err
}

func (s ReportFacadeStub) ReportSummary(ctx context.Context, limit int) (model.ReportSummary, error) {
	s.record(limit)
	return model.ReportSummary{
		TopClients:     s.Ranked,
		TopProducts:    s.Ranked,
		OrdersOverTime: s.Series,
		ClientGraph:    s.Graph,
	}, s.Err
}

// TransferFacadeStub simulates CSV import and export.
type TransferFacadeStub struct {
	ExportFn func(context.Context, io.Writer) error
	ImportFn func(context.Context, io.Reader) (model.ImportResult, error)
}

// ExportClients writes a header-only file unless overridden.
func (s TransferFacadeStub) ExportClients(ctx context.Context, w io.Writer) error {
	if s.ExportFn != nil {
		return s.ExportFn(ctx, w)
	}
	_, err := io.WriteString(w, "name,email,phone,address\n")
	return err
}

// ExportOrders writes a header-only file unless overridden.
func (s TransferFacadeStub) ExportOrders(ctx context.Context, w io.Writer) error {
	if s.ExportFn != nil {
		return s.ExportFn(ctx, w)
	}
	_, err := io.WriteString(w, "client_name,order_date,products\n")
	return err
}

// ImportClients consumes the body and reports nothing imported unless overridden.
func (s TransferFacadeStub) ImportClients(ctx context.Context, r io.Reader) (model.ImportResult, error) {
	if s.ImportFn != nil {
		return s.ImportFn(ctx, r)
	}
	_, err := io.Copy(io.Discard, r)
	return model.ImportResult{}, err
}

// ImportOrders consumes the body and reports nothing imported unless overridden.
func (s TransferFacadeStub) ImportOrders(ctx context.Context, r io.Reader) (model.ImportResult, error) {
	if s.ImportFn != nil {
		return s.ImportFn(ctx, r)
	}
	_, err := io.Copy(io.Discard, r)
	return model.ImportResult{}, err
}

// HealthCheckerStub reports the configured error.
type HealthCheckerStub struct {
	Err error
}

func (s HealthCheckerStub) HealthCheck(context.Context) error {
	return s.Err
}

// TrackerFacadeStub aggregates facade dependencies for HTTP layer tests.
type TrackerFacadeStub struct {
	ClientFacadeStub
	OrderFacadeStub
	ReportFacadeStub
	TransferFacadeStub
	HealthCheckerStub
}
