package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/ordertrack/internal/codec"
	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type clientRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

var _ repository.Store = (*Storage)(nil)

// New connects to PostgreSQL and makes sure the schema exists.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) Clients() repository.ClientRepository {
	return &clientRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT NOT NULL,
            address TEXT NOT NULL DEFAULT ''
        )`,
	`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            client_id BIGINT NOT NULL REFERENCES clients(id),
            order_date TEXT NOT NULL,
            products TEXT NOT NULL
        )`,
	`CREATE INDEX IF NOT EXISTS idx_clients_name ON clients(name, id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_client ON orders(client_id, id)`,
}

func (s *Storage) initSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// Initialize drops both tables and recreates them empty.
func (s *Storage) Initialize(ctx context.Context) error {
	err := s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, stmt := range []string{`DROP TABLE IF EXISTS orders`, `DROP TABLE IF EXISTS clients`} {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	s.logger.Info("store initialized", slog.String("driver", "postgres"))
	return nil
}

// --- ClientRepository implementation ---

func (r *clientRepository) Create(ctx context.Context, client model.Client) (*model.Client, error) {
	const query = `INSERT INTO clients (name, email, phone, address) VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, client.Name, client.Email, client.Phone, client.Address).Scan(&client.ID)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]model.Client, error) {
	const query = `SELECT id, name, email, phone, address FROM clients ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	const query = `SELECT id, name, email, phone, address FROM clients WHERE id=$1`
	return scanClient(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *clientRepository) FindByName(ctx context.Context, name string) (*model.Client, error) {
	return findClientByName(ctx, r.storage.pool, name)
}

const selectClientByName = `SELECT id, name, email, phone, address FROM clients WHERE name=$1 ORDER BY id LIMIT 1`

func findClientByName(ctx context.Context, q querier, name string) (*model.Client, error) {
	return scanClient(q.QueryRow(ctx, selectClientByName, name))
}

func scanClient(row pgx.Row) (*model.Client, error) {
	var c model.Client
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, bool, error) {
	var created bool
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var (
			client *model.Client
			err    error
		)
		if order.ClientID != 0 {
			const query = `SELECT id, name, email, phone, address FROM clients WHERE id=$1`
			client, err = scanClient(tx.QueryRow(ctx, query, order.ClientID))
		} else {
			client, err = findClientByName(ctx, tx, order.ClientName)
		}
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil
			}
			return err
		}

		const insert = `INSERT INTO orders (client_id, order_date, products) VALUES ($1, $2, $3) RETURNING id`
		date := order.OrderedAt.Format(model.DateLayout)
		if err := tx.QueryRow(ctx, insert, client.ID, date, codec.EncodeStore(order.Products)).Scan(&order.ID); err != nil {
			return err
		}
		order.ClientID = client.ID
		order.ClientName = client.Name
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if !created {
		r.storage.logger.Debug("order skipped: unknown client",
			slog.Int64("client_id", order.ClientID),
			slog.String("client_name", order.ClientName),
		)
		return nil, false, nil
	}
	return &order, true, nil
}

func (r *orderRepository) ListRecords(ctx context.Context) ([]model.OrderRecord, error) {
	const query = `SELECT o.id, c.name, o.order_date, o.products
                   FROM orders o JOIN clients c ON o.client_id = c.id
                   ORDER BY o.id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderRecord
	for rows.Next() {
		var rec model.OrderRecord
		if err := rows.Scan(&rec.ID, &rec.ClientName, &rec.OrderDate, &rec.Products); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByClient(ctx context.Context, clientID int64) ([]model.Order, error) {
	const query = `SELECT o.id, o.client_id, c.name, o.order_date, o.products
                   FROM orders o JOIN clients c ON o.client_id = c.id
                   WHERE o.client_id=$1 ORDER BY o.id`
	rows, err := r.storage.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var (
			o        model.Order
			date     string
			products string
		)
		if err := rows.Scan(&o.ID, &o.ClientID, &o.ClientName, &date, &products); err != nil {
			return nil, err
		}
		if o.OrderedAt, err = time.Parse(model.DateLayout, date); err != nil {
			return nil, fmt.Errorf("order %d: %w", o.ID, domainErrors.ErrInvalidDate)
		}
		o.Products, _ = codec.Decode(products, "")
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
