// Package csvio reads and writes the client and order CSV files.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
)

var (
	ClientHeader = []string{"name", "email", "phone", "address"}
	OrderHeader  = []string{"client_name", "order_date", "products"}
)

// ClientRow is one line of the client file.
type ClientRow struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// OrderRow is one line of the order file. Products uses the CSV encoding.
type OrderRow struct {
	ClientName string
	OrderDate  string
	Products   string
}

// WriteClients writes the header followed by rows.
func WriteClients(w io.Writer, rows []ClientRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ClientHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Name, r.Email, r.Phone, r.Address}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteOrders writes the header followed by rows.
func WriteOrders(w io.Writer, rows []OrderRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(OrderHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.ClientName, r.OrderDate, r.Products}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadClients parses a client file. Columns are matched by header name.
func ReadClients(r io.Reader) ([]ClientRow, error) {
	var rows []ClientRow
	err := readRecords(r, ClientHeader, func(get func(string) string) {
		rows = append(rows, ClientRow{
			Name:    get("name"),
			Email:   get("email"),
			Phone:   get("phone"),
			Address: get("address"),
		})
	})
	return rows, err
}

// ReadOrders parses an order file. Columns are matched by header name.
func ReadOrders(r io.Reader) ([]OrderRow, error) {
	var rows []OrderRow
	err := readRecords(r, OrderHeader, func(get func(string) string) {
		rows = append(rows, OrderRow{
			ClientName: get("client_name"),
			OrderDate:  get("order_date"),
			Products:   get("products"),
		})
	})
	return rows, err
}

func readRecords(r io.Reader, required []string, emit func(get func(string) string)) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: read header: %v", domainErrors.ErrMalformedCSV, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return fmt.Errorf("%w: missing column %q", domainErrors.ErrMalformedCSV, col)
		}
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", domainErrors.ErrMalformedCSV, err)
		}
		emit(func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		})
	}
}
