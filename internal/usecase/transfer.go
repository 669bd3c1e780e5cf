package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/polkiloo/ordertrack/internal/codec"
	"github.com/polkiloo/ordertrack/internal/csvio"
	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

// TransferUseCase moves clients and orders between the store and CSV files.
type TransferUseCase struct {
	clients repository.ClientRepository
	orders  repository.OrderRepository
	logger  *slog.Logger
}

// NewTransferUseCase constructs TransferUseCase.
func NewTransferUseCase(clients repository.ClientRepository, orders repository.OrderRepository, logger *slog.Logger) *TransferUseCase {
	return &TransferUseCase{clients: clients, orders: orders, logger: logger}
}

// ExportClients writes every client to w.
func (u *TransferUseCase) ExportClients(ctx context.Context, w io.Writer) error {
	clients, err := u.clients.List(ctx)
	if err != nil {
		return err
	}
	rows := make([]csvio.ClientRow, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, csvio.ClientRow{Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address})
	}
	return csvio.WriteClients(w, rows)
}

// ExportOrders writes every order to w with products in the CSV encoding.
func (u *TransferUseCase) ExportOrders(ctx context.Context, w io.Writer) error {
	records, err := u.orders.ListRecords(ctx)
	if err != nil {
		return err
	}
	rows := make([]csvio.OrderRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, csvio.OrderRow{
			ClientName: r.ClientName,
			OrderDate:  r.OrderDate,
			Products:   codec.StoreToCSV(r.Products),
		})
	}
	return csvio.WriteOrders(w, rows)
}

// ImportClients registers every valid row. Invalid rows are skipped and counted.
func (u *TransferUseCase) ImportClients(ctx context.Context, r io.Reader) (model.ImportResult, error) {
	var result model.ImportResult

	rows, err := csvio.ReadClients(r)
	if err != nil {
		return result, err
	}

	for i, row := range rows {
		client, err := model.NewClient(row.Name, row.Email, row.Phone, row.Address)
		if err != nil {
			u.logger.Warn("client row skipped",
				slog.Int("row", i+1),
				slog.String("name", row.Name),
				slog.String("error", err.Error()),
			)
			result.Skipped++
			continue
		}
		if _, err := u.clients.Create(ctx, *client); err != nil {
			return result, fmt.Errorf("import client row %d: %w", i+1, err)
		}
		result.Imported++
	}

	u.logger.Info("clients imported", slog.Int("imported", result.Imported), slog.Int("skipped", result.Skipped))
	return result, nil
}

// ImportOrders stores every row whose client exists. Bad product segments
// are dropped from their row; rows left without products, with a bad date
// or naming an unknown client are skipped.
func (u *TransferUseCase) ImportOrders(ctx context.Context, r io.Reader) (model.ImportResult, error) {
	var result model.ImportResult

	rows, err := csvio.ReadOrders(r)
	if err != nil {
		return result, err
	}

	for i, row := range rows {
		line := i + 1
		orderedAt, err := time.ParseInLocation(model.DateLayout, row.OrderDate, time.Local)
		if err != nil {
			u.skipOrder(&result, line, row, domainErrors.ErrInvalidDate.Error())
			continue
		}

		products, dropped := codec.Decode(row.Products, model.DefaultCategory)
		if dropped > 0 {
			u.logger.Warn("product segments skipped",
				slog.Int("row", line),
				slog.Int("segments", dropped),
			)
		}

		order, err := model.NewOrder(model.Client{Name: row.ClientName}, products, orderedAt)
		if err != nil {
			u.skipOrder(&result, line, row, err.Error())
			continue
		}

		_, created, err := u.orders.Create(ctx, *order)
		if err != nil {
			return result, fmt.Errorf("import order row %d: %w", line, err)
		}
		if !created {
			u.skipOrder(&result, line, row, "unknown client")
			continue
		}
		result.Imported++
	}

	u.logger.Info("orders imported", slog.Int("imported", result.Imported), slog.Int("skipped", result.Skipped))
	return result, nil
}

func (u *TransferUseCase) skipOrder(result *model.ImportResult, line int, row csvio.OrderRow, reason string) {
	u.logger.Warn("order row skipped",
		slog.Int("row", line),
		slog.String("client_name", row.ClientName),
		slog.String("reason", reason),
	)
	result.Skipped++
}

// ImportClientsFile imports clients from path. A missing file yields ErrSourceNotFound.
func (u *TransferUseCase) ImportClientsFile(ctx context.Context, path string) (model.ImportResult, error) {
	return importFile(path, func(r io.Reader) (model.ImportResult, error) {
		return u.ImportClients(ctx, r)
	})
}

// ImportOrdersFile imports orders from path. A missing file yields ErrSourceNotFound.
func (u *TransferUseCase) ImportOrdersFile(ctx context.Context, path string) (model.ImportResult, error) {
	return importFile(path, func(r io.Reader) (model.ImportResult, error) {
		return u.ImportOrders(ctx, r)
	})
}

// ExportClientsFile writes clients to path, replacing any existing file.
func (u *TransferUseCase) ExportClientsFile(ctx context.Context, path string) error {
	return exportFile(path, func(w io.Writer) error {
		return u.ExportClients(ctx, w)
	})
}

// ExportOrdersFile writes orders to path, replacing any existing file.
func (u *TransferUseCase) ExportOrdersFile(ctx context.Context, path string) error {
	return exportFile(path, func(w io.Writer) error {
		return u.ExportOrders(ctx, w)
	})
}

func importFile(path string, read func(io.Reader) (model.ImportResult, error)) (model.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.ImportResult{}, fmt.Errorf("%w: %s", domainErrors.ErrSourceNotFound, path)
		}
		return model.ImportResult{}, err
	}
	defer f.Close()
	return read(f)
}

func exportFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
