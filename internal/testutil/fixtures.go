package testutil

import (
	"time"

	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/google/uuid"
)

// Record options
type RecordOption func(*domain.InventoryRecord)

func WithStatus(s domain.StockStatus) RecordOption {
	return func(r *domain.InventoryRecord) {
		r.StockStatus = s
	}
}

func WithStock(units float64) RecordOption {
	return func(r *domain.InventoryRecord) {
		r.ClosingStock = units
		r.DaysToStockout = domain.EstimateDaysToStockout(r.ClosingStock, r.AvgDailyDemand)
	}
}

func WithDemand(perDay float64) RecordOption {
	return func(r *domain.InventoryRecord) {
		r.AvgDailyDemand = perDay
		r.DaysToStockout = domain.EstimateDaysToStockout(r.ClosingStock, r.AvgDailyDemand)
	}
}

func WithLeadTime(days float64) RecordOption {
	return func(r *domain.InventoryRecord) {
		r.LeadTimeDays = days
	}
}

func WithDaysToStockout(days float64) RecordOption {
	return func(r *domain.InventoryRecord) {
		r.DaysToStockout = days
	}
}

// NewTestRecord returns a healthy record with 50 units, 5/day demand and a
// 3-day lead time unless overridden.
func NewTestRecord(location, item string, opts ...RecordOption) domain.InventoryRecord {
	r := domain.InventoryRecord{
		Location:       location,
		Item:           item,
		ClosingStock:   50,
		AvgDailyDemand: 5,
		DaysToStockout: 10,
		StockStatus:    domain.StatusHealthy,
		LeadTimeDays:   3,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Action options
type ActionOption func(*domain.ActionLogEntry)

func WithActionType(t domain.ActionType) ActionOption {
	return func(e *domain.ActionLogEntry) {
		e.ActionType = t
	}
}

func WithNotes(n string) ActionOption {
	return func(e *domain.ActionLogEntry) {
		e.Notes = n
	}
}

func WithTimestamp(ts time.Time) ActionOption {
	return func(e *domain.ActionLogEntry) {
		e.Timestamp = ts
	}
}

func NewTestAction(location, item, user string, opts ...ActionOption) *domain.ActionLogEntry {
	e := &domain.ActionLogEntry{
		ID:         uuid.New().String(),
		Timestamp:  time.Now().UTC(),
		Location:   location,
		Item:       item,
		ActionType: domain.ActionPurchaseOrder,
		UserName:   user,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SampleSnapshot is a small mixed batch: one critical life-saving item, one
// warning, one healthy and one overstocked row.
func SampleSnapshot() []domain.InventoryRecord {
	return []domain.InventoryRecord{
		NewTestRecord("City Hospital", "Insulin", WithStock(6), WithDemand(3), WithStatus(domain.StatusCritical)),
		NewTestRecord("City Hospital", "Gauze", WithStock(30), WithDemand(4), WithStatus(domain.StatusWarning), WithLeadTime(2)),
		NewTestRecord("Rural Clinic", "Oxygen", WithStock(60), WithDemand(2), WithStatus(domain.StatusHealthy), WithLeadTime(4)),
		NewTestRecord("Rural Clinic", "Saline", WithStock(500), WithDemand(1), WithStatus(domain.StatusHealthy), WithLeadTime(2)),
	}
}
