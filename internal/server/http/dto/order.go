package dto

import "github.com/shopspring/decimal"

// ProductRequest describes one ordered product.
type ProductRequest struct {
	Name     string           `json:"name" binding:"required"`
	Price    *decimal.Decimal `json:"price" binding:"required"`
	Category string           `json:"category"`
}

// OrderRequest references the client by id or by name.
// OrderDate is optional and uses the "2006-01-02 15:04:05" layout.
type OrderRequest struct {
	ClientID   int64            `json:"client_id"`
	ClientName string           `json:"client_name" binding:"required_without=ClientID"`
	Products   []ProductRequest `json:"products" binding:"required,min=1,dive"`
	OrderDate  string           `json:"order_date"`
}

type ProductResponse struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

type OrderResponse struct {
	ID         int64             `json:"id"`
	ClientID   int64             `json:"client_id"`
	ClientName string            `json:"client_name"`
	OrderDate  string            `json:"order_date"`
	Products   []ProductResponse `json:"products"`
	Total      decimal.Decimal   `json:"total"`
}

// OrderRecordResponse is one row of the order list. Products keeps the
// stored "name:price, name:price" form.
type OrderRecordResponse struct {
	ID         int64           `json:"id"`
	ClientName string          `json:"client_name"`
	OrderDate  string          `json:"order_date"`
	Products   string          `json:"products"`
	Total      decimal.Decimal `json:"total"`
}
