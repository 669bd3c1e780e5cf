package usecase

import (
	"context"

	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
	"github.com/polkiloo/ordertrack/internal/report"
)

// ReportUseCase loads order records and feeds them to the report engine.
type ReportUseCase struct {
	orders repository.OrderRepository
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(orders repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{orders: orders}
}

func (u *ReportUseCase) TopClients(ctx context.Context, limit int) ([]model.NameCount, error) {
	records, err := u.orders.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	return report.TopClients(records, limit), nil
}

func (u *ReportUseCase) TopProducts(ctx context.Context, limit int) ([]model.NameCount, error) {
	records, err := u.orders.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	return report.TopProducts(records, limit), nil
}

func (u *ReportUseCase) OrdersOverTime(ctx context.Context) ([]model.DateCount, error) {
	records, err := u.orders.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	return report.OrdersOverTime(records), nil
}

func (u *ReportUseCase) ClientGraph(ctx context.Context) (model.Graph, error) {
	records, err := u.orders.ListRecords(ctx)
	if err != nil {
		return model.Graph{}, err
	}
	return report.ClientGraph(records), nil
}

// Summary computes all four reports from a single snapshot of the orders.
func (u *ReportUseCase) Summary(ctx context.Context, limit int) (model.ReportSummary, error) {
	records, err := u.orders.ListRecords(ctx)
	if err != nil {
		return model.ReportSummary{}, err
	}
	return report.Build(records, limit), nil
}
