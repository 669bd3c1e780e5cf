package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/ordertrack/internal/codec"
	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

// OrderUseCase encapsulates order placement and listing.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place validates the request and stores the order. The returned flag is
// false when no client matched and nothing was stored.
func (u *OrderUseCase) Place(ctx context.Context, req model.PlaceOrder) (*model.Order, bool, error) {
	products := make([]model.Product, 0, len(req.Products))
	for i, in := range req.Products {
		p, err := model.NewProduct(in.Name, in.Price, in.Category)
		if err != nil {
			return nil, false, fmt.Errorf("product %d: %w", i+1, err)
		}
		products = append(products, p)
	}

	name := strings.TrimSpace(req.ClientName)
	if req.ClientID == 0 && name == "" {
		return nil, false, domainErrors.ErrClientRequired
	}

	order, err := model.NewOrder(model.Client{ID: req.ClientID, Name: name}, products, req.OrderedAt)
	if err != nil {
		return nil, false, err
	}
	return u.orders.Create(ctx, *order)
}

// Records lists every order joined with its client name. SortByDate is
// oldest first, SortByTotal is most expensive first, and ties keep id order.
func (u *OrderUseCase) Records(ctx context.Context, sortBy model.RecordSort) ([]model.OrderRecord, error) {
	if _, err := model.ParseRecordSort(string(sortBy)); err != nil {
		return nil, err
	}
	records, err := u.orders.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	switch sortBy {
	case model.SortByDate:
		// DateLayout is fixed width, so text order is chronological
		sort.SliceStable(records, func(i, j int) bool { return records[i].OrderDate < records[j].OrderDate })
	case model.SortByTotal:
		totals := make(map[int64]decimal.Decimal, len(records))
		for _, r := range records {
			totals[r.ID] = codec.Total(r.Products)
		}
		sort.SliceStable(records, func(i, j int) bool {
			return totals[records[i].ID].GreaterThan(totals[records[j].ID])
		})
	}
	return records, nil
}
