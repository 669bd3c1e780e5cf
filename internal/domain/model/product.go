package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
)

const (
	// DefaultCategory is assigned to products created by bulk import.
	DefaultCategory = "misc"
	uncategorized   = "uncategorized"
)

// Product is a priced item embedded into orders by value.
type Product struct {
	Name     string
	Price    decimal.Decimal
	Category string
}

// NewProduct validates name and price.
func NewProduct(name string, price decimal.Decimal, category string) (Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Product{}, fmt.Errorf("%w: empty name", domainErrors.ErrInvalidProduct)
	}
	// commas separate encoded product segments
	if strings.Contains(name, ",") {
		return Product{}, fmt.Errorf("%w: name %q contains a comma", domainErrors.ErrInvalidProduct, name)
	}
	if price.IsNegative() {
		return Product{}, fmt.Errorf("%w: %s", domainErrors.ErrInvalidPrice, price.String())
	}
	return Product{Name: name, Price: price, Category: category}, nil
}

// CategoryOrDefault returns the category or "uncategorized" when empty.
func (p Product) CategoryOrDefault() string {
	if p.Category == "" {
		return uncategorized
	}
	return p.Category
}

func (p Product) String() string {
	return fmt.Sprintf("Product: %s (%s) - %s", p.Name, p.CategoryOrDefault(), p.Price.StringFixed(2))
}
