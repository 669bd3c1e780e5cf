package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
)

// DateLayout is the timestamp format used by the store and CSV files.
const DateLayout = "2006-01-02 15:04:05"

// Order describes a dated purchase of one or more products by a client.
type Order struct {
	ID         int64
	ClientID   int64
	ClientName string
	Products   []Product
	OrderedAt  time.Time
}

// NewOrder builds an order for client. A zero orderedAt means now.
func NewOrder(client Client, products []Product, orderedAt time.Time) (*Order, error) {
	if len(products) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	if orderedAt.IsZero() {
		orderedAt = time.Now()
	}
	return &Order{
		ClientID:   client.ID,
		ClientName: client.Name,
		Products:   append([]Product(nil), products...),
		OrderedAt:  orderedAt.Truncate(time.Second),
	}, nil
}

// TotalPrice sums product prices.
func (o Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.Price)
	}
	return total
}

// ProductInput is one requested product before validation.
type ProductInput struct {
	Name     string
	Price    decimal.Decimal
	Category string
}

// PlaceOrder asks for a new order. The client is referenced by ClientID
// when set, otherwise by ClientName. A zero OrderedAt means now.
type PlaceOrder struct {
	ClientID   int64
	ClientName string
	Products   []ProductInput
	OrderedAt  time.Time
}

// OrderRecord is the flat join of an order with its client name.
// Products keeps the store encoding.
type OrderRecord struct {
	ID         int64
	ClientName string
	OrderDate  string
	Products   string
}

// RecordSort selects the order of the order list.
type RecordSort string

const (
	SortByID    RecordSort = ""
	SortByDate  RecordSort = "date"
	SortByTotal RecordSort = "total"
)

// ParseRecordSort accepts "", "date" and "total".
func ParseRecordSort(raw string) (RecordSort, error) {
	switch s := RecordSort(raw); s {
	case SortByID, SortByDate, SortByTotal:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", domainErrors.ErrInvalidSort, raw)
}

// ImportResult counts rows accepted and skipped by a bulk import.
type ImportResult struct {
	Imported int
	Skipped  int
}
