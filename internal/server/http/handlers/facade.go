package handlers

import (
	"context"
	"io"

	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// ClientFacade describes client operations required by handlers.
type ClientFacade interface {
	RegisterClient(ctx context.Context, name, email, phone, address string) (*model.Client, error)
	Clients(ctx context.Context) ([]model.Client, error)
	ClientSummary(ctx context.Context, id int64) (*model.ClientSummary, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, req model.PlaceOrder) (*model.Order, bool, error)
	Orders(ctx context.Context, sortBy model.RecordSort) ([]model.OrderRecord, error)
}

// ReportFacade provides the aggregate reports.
type ReportFacade interface {
	TopClients(ctx context.Context, limit int) ([]model.NameCount, error)
	TopProducts(ctx context.Context, limit int) ([]model.NameCount, error)
	OrdersOverTime(ctx context.Context) ([]model.DateCount, error)
	ClientGraph(ctx context.Context) (model.Graph, error)
	ReportSummary(ctx context.Context, limit int) (model.ReportSummary, error)
}

// TransferFacade moves data in and out as CSV.
type TransferFacade interface {
	ExportClients(ctx context.Context, w io.Writer) error
	ExportOrders(ctx context.Context, w io.Writer) error
	ImportClients(ctx context.Context, r io.Reader) (model.ImportResult, error)
	ImportOrders(ctx context.Context, r io.Reader) (model.ImportResult, error)
}

type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// TrackerFacade aggregates the full set of operations used across handlers.
type TrackerFacade interface {
	ClientFacade
	OrderFacade
	ReportFacade
	TransferFacade
	HealthFacade
}
