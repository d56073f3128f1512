package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Default warehouse object names.
const (
	DefaultStockTable  = "STOCK_HEALTH_DT"
	DefaultActionTable = "ACTION_LOG"
)

// stockHealthRow mirrors one row of the warehouse stock-health view.
type stockHealthRow struct {
	Location       string   `gorm:"column:LOCATION"`
	Item           string   `gorm:"column:ITEM"`
	ClosingStock   float64  `gorm:"column:CLOSING_STOCK"`
	AvgDailyDemand float64  `gorm:"column:AVG_DAILY_DEMAND"`
	DaysToStockout *float64 `gorm:"column:DAYS_TO_STOCKOUT"`
	StockStatus    string   `gorm:"column:STOCK_STATUS"`
	LeadTimeDays   float64  `gorm:"column:LEAD_TIME_DAYS"`
}

// actionLogRow mirrors the warehouse action log. The warehouse table has no
// key column, so IDs are not round-tripped.
type actionLogRow struct {
	ActionTimestamp time.Time `gorm:"column:ACTION_TIMESTAMP"`
	Location        string    `gorm:"column:LOCATION"`
	Item            string    `gorm:"column:ITEM"`
	ActionType      string    `gorm:"column:ACTION_TYPE"`
	Notes           string    `gorm:"column:NOTES"`
	UserName        string    `gorm:"column:USER_NAME"`
}

// WarehouseTables names the warehouse objects to read and write.
type WarehouseTables struct {
	Stock  string
	Action string
}

func (t WarehouseTables) withDefaults() WarehouseTables {
	if t.Stock == "" {
		t.Stock = DefaultStockTable
	}
	if t.Action == "" {
		t.Action = DefaultActionTable
	}
	return t
}

// GormWarehouse reads the stock-health view and the action log from a MySQL
// warehouse. It implements StockHealthReader and ActionLogRepo.
type GormWarehouse struct {
	db     *gorm.DB
	tables WarehouseTables
}

// OpenGormWarehouse connects to the MySQL warehouse at dsn.
func OpenGormWarehouse(dsn string, tables WarehouseTables) (*GormWarehouse, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to warehouse: %w", err)
	}
	return NewGormWarehouse(db, tables), nil
}

func NewGormWarehouse(db *gorm.DB, tables WarehouseTables) *GormWarehouse {
	return &GormWarehouse{db: db, tables: tables.withDefaults()}
}

// Close releases the underlying connection pool.
func (w *GormWarehouse) Close() error {
	sqlDB, err := w.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (w *GormWarehouse) stockQuery(ctx context.Context) *gorm.DB {
	return w.db.WithContext(ctx).Table(w.tables.Stock).Order("LOCATION, ITEM")
}

func (w *GormWarehouse) ListStockHealth(ctx context.Context) ([]domain.InventoryRecord, error) {
	var rows []stockHealthRow
	if err := w.stockQuery(ctx).Find(&rows).Error; err != nil {
		return nil, wrapTableErr("querying", w.tables.Stock, err)
	}

	out := make([]domain.InventoryRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (w *GormWarehouse) Append(ctx context.Context, e *domain.ActionLogEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = nowFunc()
	}
	row := actionLogRow{
		ActionTimestamp: e.Timestamp,
		Location:        e.Location,
		Item:            e.Item,
		ActionType:      string(e.ActionType),
		Notes:           e.Notes,
		UserName:        e.UserName,
	}
	if err := w.db.WithContext(ctx).Table(w.tables.Action).Create(&row).Error; err != nil {
		return wrapTableErr("inserting into", w.tables.Action, err)
	}
	return nil
}

func (w *GormWarehouse) recentQuery(ctx context.Context, limit int) *gorm.DB {
	q := w.db.WithContext(ctx).Table(w.tables.Action).Order("ACTION_TIMESTAMP DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q
}

func (w *GormWarehouse) ListRecent(ctx context.Context, limit int) ([]*domain.ActionLogEntry, error) {
	var rows []actionLogRow
	if err := w.recentQuery(ctx, limit).Find(&rows).Error; err != nil {
		return nil, wrapTableErr("querying", w.tables.Action, err)
	}

	out := make([]*domain.ActionLogEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, &domain.ActionLogEntry{
			Timestamp:  row.ActionTimestamp,
			Location:   row.Location,
			Item:       row.Item,
			ActionType: domain.ActionType(row.ActionType),
			Notes:      row.Notes,
			UserName:   row.UserName,
		})
	}
	return out, nil
}

func (r stockHealthRow) toDomain() domain.InventoryRecord {
	rec := domain.InventoryRecord{
		Location:       r.Location,
		Item:           r.Item,
		ClosingStock:   r.ClosingStock,
		AvgDailyDemand: r.AvgDailyDemand,
		StockStatus:    domain.StockStatus(r.StockStatus),
		LeadTimeDays:   r.LeadTimeDays,
	}
	if r.DaysToStockout != nil {
		rec.DaysToStockout = *r.DaysToStockout
	} else {
		rec.DaysToStockout = math.Inf(1)
	}
	return rec
}
