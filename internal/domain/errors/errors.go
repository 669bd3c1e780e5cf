package errors

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrInvalidPhone   = errors.New("invalid phone")
	ErrInvalidProduct = errors.New("invalid product")
	ErrInvalidPrice   = errors.New("invalid price")
	ErrEmptyOrder     = errors.New("order has no products")
	ErrClientRequired = errors.New("client reference required")
	ErrInvalidDate    = errors.New("invalid order date")
	ErrSourceNotFound = errors.New("import source not found")
	ErrMalformedCSV   = errors.New("malformed csv")
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidSort    = errors.New("invalid sort order")
)
