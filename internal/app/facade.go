package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/usecase"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// OrderTracker is the single entry point of the HTTP and CLI surfaces.
type OrderTracker struct {
	clients  *usecase.ClientUseCase
	orders   *usecase.OrderUseCase
	reports  *usecase.ReportUseCase
	transfer *usecase.TransferUseCase
	health   HealthChecker
	logger   *slog.Logger
}

func NewOrderTracker(
	clients *usecase.ClientUseCase,
	orders *usecase.OrderUseCase,
	reports *usecase.ReportUseCase,
	transfer *usecase.TransferUseCase,
	health HealthChecker,
	logger *slog.Logger,
) *OrderTracker {
	return &OrderTracker{
		clients:  clients,
		orders:   orders,
		reports:  reports,
		transfer: transfer,
		health:   health,
		logger:   logger,
	}
}

func (f *OrderTracker) RegisterClient(ctx context.Context, name, email, phone, address string) (*model.Client, error) {
	return f.clients.Register(ctx, name, email, phone, address)
}

func (f *OrderTracker) Clients(ctx context.Context) ([]model.Client, error) {
	return f.clients.List(ctx)
}

func (f *OrderTracker) ClientSummary(ctx context.Context, id int64) (*model.ClientSummary, error) {
	return f.clients.Summary(ctx, id)
}

func (f *OrderTracker) PlaceOrder(ctx context.Context, req model.PlaceOrder) (*model.Order, bool, error) {
	return f.orders.Place(ctx, req)
}

func (f *OrderTracker) Orders(ctx context.Context, sortBy model.RecordSort) ([]model.OrderRecord, error) {
	return f.orders.Records(ctx, sortBy)
}

func (f *OrderTracker) TopClients(ctx context.Context, limit int) ([]model.NameCount, error) {
	return f.reports.TopClients(ctx, limit)
}

func (f *OrderTracker) TopProducts(ctx context.Context, limit int) ([]model.NameCount, error) {
	return f.reports.TopProducts(ctx, limit)
}

func (f *OrderTracker) OrdersOverTime(ctx context.Context) ([]model.DateCount, error) {
	return f.reports.OrdersOverTime(ctx)
}

func (f *OrderTracker) ClientGraph(ctx context.Context) (model.Graph, error) {
	return f.reports.ClientGraph(ctx)
}

func (f *OrderTracker) ReportSummary(ctx context.Context, limit int) (model.ReportSummary, error) {
	return f.reports.Summary(ctx, limit)
}

func (f *OrderTracker) ExportClients(ctx context.Context, w io.Writer) error {
	return f.transfer.ExportClients(ctx, w)
}

func (f *OrderTracker) ExportOrders(ctx context.Context, w io.Writer) error {
	return f.transfer.ExportOrders(ctx, w)
}

func (f *OrderTracker) ImportClients(ctx context.Context, r io.Reader) (model.ImportResult, error) {
	return f.transfer.ImportClients(ctx, r)
}

func (f *OrderTracker) ImportOrders(ctx context.Context, r io.Reader) (model.ImportResult, error) {
	return f.transfer.ImportOrders(ctx, r)
}

// LoadFiles imports clients then orders from the given paths.
// A missing file is logged and skipped.
func (f *OrderTracker) LoadFiles(ctx context.Context, clientsPath, ordersPath string) error {
	if _, err := f.transfer.ImportClientsFile(ctx, clientsPath); err != nil {
		if !errors.Is(err, domainErrors.ErrSourceNotFound) {
			return err
		}
		f.logger.Warn("clients file not found", slog.String("path", clientsPath))
	}
	if _, err := f.transfer.ImportOrdersFile(ctx, ordersPath); err != nil {
		if !errors.Is(err, domainErrors.ErrSourceNotFound) {
			return err
		}
		f.logger.Warn("orders file not found", slog.String("path", ordersPath))
	}
	return nil
}

func (f *OrderTracker) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
