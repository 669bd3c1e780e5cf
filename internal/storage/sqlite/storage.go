// Package sqlite implements the embedded storage backend on top of gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/polkiloo/ordertrack/internal/codec"
	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
	"github.com/polkiloo/ordertrack/internal/domain/model"
	"github.com/polkiloo/ordertrack/internal/domain/repository"
)

type clientRow struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"not null;index:idx_clients_name"`
	Email   string `gorm:"not null"`
	Phone   string `gorm:"not null"`
	Address string `gorm:"not null;default:''"`
}

func (clientRow) TableName() string { return "clients" }

func (r clientRow) toModel() model.Client {
	return model.Client{ID: r.ID, Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}

type orderRow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ClientID  int64     `gorm:"not null;index:idx_orders_client"`
	Client    clientRow `gorm:"foreignKey:ClientID"`
	OrderDate string    `gorm:"column:order_date;not null"`
	Products  string    `gorm:"not null"`
}

func (orderRow) TableName() string { return "orders" }

// Storage acts as repository facade backed by SQLite.
type Storage struct {
	db     *gorm.DB
	logger *slog.Logger
}

type clientRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

var _ repository.Store = (*Storage)(nil)

// New opens the database file and makes sure the schema exists.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// one connection keeps the foreign key pragma and in-memory databases alive
	sqlDB.SetMaxOpenConns(1)

	storage := &Storage{db: db, logger: logger}
	if err := db.WithContext(ctx).Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		storage.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := storage.migrate(ctx); err != nil {
		storage.Close()
		return nil, err
	}
	return storage, nil
}

func (s *Storage) migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&clientRow{}, &orderRow{}); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.db == nil {
		return
	}
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (s *Storage) Clients() repository.ClientRepository {
	return &clientRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// Initialize drops both tables and recreates them empty.
func (s *Storage) Initialize(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Migrator().DropTable(&orderRow{}, &clientRow{}); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	if err := s.migrate(ctx); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	s.logger.Info("store initialized", slog.String("driver", "sqlite"))
	return nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// --- ClientRepository implementation ---

func (r *clientRepository) Create(ctx context.Context, client model.Client) (*model.Client, error) {
	row := clientRow{Name: client.Name, Email: client.Email, Phone: client.Phone, Address: client.Address}
	if err := r.storage.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	created := row.toModel()
	return &created, nil
}

func (r *clientRepository) List(ctx context.Context) ([]model.Client, error) {
	var rows []clientRow
	if err := r.storage.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	result := make([]model.Client, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toModel())
	}
	return result, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	return getClientByID(r.storage.db.WithContext(ctx), id)
}

func (r *clientRepository) FindByName(ctx context.Context, name string) (*model.Client, error) {
	return findClientByName(r.storage.db.WithContext(ctx), name)
}

func getClientByID(db *gorm.DB, id int64) (*model.Client, error) {
	var row clientRow
	if err := db.First(&row, id).Error; err != nil {
		return nil, translate(err)
	}
	c := row.toModel()
	return &c, nil
}

func findClientByName(db *gorm.DB, name string) (*model.Client, error) {
	var row clientRow
	if err := db.Where("name = ?", name).Order("id").First(&row).Error; err != nil {
		return nil, translate(err)
	}
	c := row.toModel()
	return &c, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErrors.ErrNotFound
	}
	return err
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, bool, error) {
	var created bool
	err := r.storage.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var (
			client *model.Client
			err    error
		)
		if order.ClientID != 0 {
			client, err = getClientByID(tx, order.ClientID)
		} else {
			client, err = findClientByName(tx, order.ClientName)
		}
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil
			}
			return err
		}

		row := orderRow{
			ClientID:  client.ID,
			OrderDate: order.OrderedAt.Format(model.DateLayout),
			Products:  codec.EncodeStore(order.Products),
		}
		if err := tx.Omit(clause.Associations).Create(&row).Error; err != nil {
			return err
		}
		order.ID = row.ID
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

func (r *orderRepository) joined(ctx context.Context) *gorm.DB {
	return r.storage.db.WithContext(ctx).
		Table("orders AS o").
		Joins("JOIN clients AS c ON o.client_id = c.id").
		Order("o.id")
}

func (r *orderRepository) ListRecords(ctx context.Context) ([]model.OrderRecord, error) {
	var records []model.OrderRecord
	err := r.joined(ctx).
		Select("o.id AS id, c.name AS client_name, o.order_date AS order_date, o.products AS products").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

type clientOrderRow struct {
	ID         int64
	ClientID   int64
	ClientName string
	OrderDate  string
	Products   string
}

func (r *orderRepository) ListByClient(ctx context.Context, clientID int64) ([]model.Order, error) {
	var rows []clientOrderRow
	err := r.joined(ctx).
		Select("o.id AS id, o.client_id AS client_id, c.name AS client_name, o.order_date AS order_date, o.products AS products").
		Where("o.client_id = ?", clientID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		at, err := time.Parse(model.DateLayout, row.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", row.ID, domainErrors.ErrInvalidDate)
		}
		products, _ := codec.Decode(row.Products, "")
		result = append(result, model.Order{
			ID:         row.ID,
			ClientID:   row.ClientID,
			ClientName: row.ClientName,
			Products:   products,
			OrderedAt:  at,
		})
	}
	return result, nil
}
