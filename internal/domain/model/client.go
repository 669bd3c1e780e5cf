package model

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
)

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)
)

// Client represents a person placing orders.
type Client struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Address string
}

// NewClient validates contact details and builds an unpersisted client.
func NewClient(name, email, phone, address string) (*Client, error) {
	if !ValidEmail(email) {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidEmail, email)
	}
	if !ValidPhone(phone) {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidPhone, phone)
	}
	return &Client{Name: name, Email: email, Phone: phone, Address: address}, nil
}

// ValidEmail reports whether email looks like local@domain.tld.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone accepts an optional leading plus followed by 7 to 15 digits.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func (c Client) String() string {
	return "Client: " + c.Name
}

// Owns reports whether order was placed by the client.
// Persisted clients are matched by id, unpersisted ones by name.
func (c Client) Owns(order Order) bool {
	if c.ID != 0 && order.ClientID != 0 {
		return c.ID == order.ClientID
	}
	return c.Name == order.ClientName
}

// OrdersOf filters orders placed by client.
func OrdersOf(client Client, orders []Order) []Order {
	var owned []Order
	for _, o := range orders {
		if client.Owns(o) {
			owned = append(owned, o)
		}
	}
	return owned
}

// TotalSpent sums order totals of the orders placed by client.
func TotalSpent(client Client, orders []Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range OrdersOf(client, orders) {
		total = total.Add(o.TotalPrice())
	}
	return total
}

// ClientSummary aggregates a client with its order statistics.
type ClientSummary struct {
	Client     Client
	OrderCount int
	TotalSpent decimal.Decimal
}
