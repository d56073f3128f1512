package domain

// StockStatus is the categorical health label assigned upstream by the
// warehouse view. Values outside the known set are carried through untouched.
type StockStatus string

const (
	StatusCritical StockStatus = "Critical"
	StatusWarning  StockStatus = "Warning"
	StatusHealthy  StockStatus = "Healthy"
)

// KnownStockStatuses lists the statuses in display order.
var KnownStockStatuses = []StockStatus{StatusCritical, StatusWarning, StatusHealthy}

// IsKnown reports whether s is one of Critical, Warning or Healthy.
func (s StockStatus) IsKnown() bool {
	switch s {
	case StatusCritical, StatusWarning, StatusHealthy:
		return true
	}
	return false
}

// IsAtRisk reports whether s is Critical or Warning.
func (s StockStatus) IsAtRisk() bool {
	return s == StatusCritical || s == StatusWarning
}

type ItemPriority string

const (
	PriorityLifeSaving ItemPriority = "life-saving"
	PriorityEssential  ItemPriority = "essential"
)

// Label returns the display label used in tables and exports.
func (p ItemPriority) Label() string {
	switch p {
	case PriorityLifeSaving:
		return "🔴 Life-saving"
	case PriorityEssential:
		return "🟢 Essential"
	}
	return ""
}

// ActionType is the fixed set of actions a user can record against an item.
type ActionType string

const (
	ActionPurchaseOrder  ActionType = "Purchase order raised"
	ActionTransferred    ActionType = "Transferred from another location"
	ActionDelivered      ActionType = "Delivered to location"
	ActionPartnerSupport ActionType = "NGO / partner support requested"
	ActionOther          ActionType = "Other"
)

// ActionTypes lists the action types in form order.
var ActionTypes = []ActionType{
	ActionPurchaseOrder,
	ActionTransferred,
	ActionDelivered,
	ActionPartnerSupport,
	ActionOther,
}

// ValidActionType reports whether s names one of ActionTypes.
func ValidActionType(s string) bool {
	for _, t := range ActionTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// AlertLevel is a severity a user can subscribe to.
type AlertLevel string

const (
	AlertCritical  AlertLevel = "Critical"
	AlertWarning   AlertLevel = "Warning"
	AlertOverstock AlertLevel = "Overstock"
)

var AlertLevels = []AlertLevel{AlertCritical, AlertWarning, AlertOverstock}

// RecipientGroup is a team that can receive alert notifications.
type RecipientGroup string

const (
	RecipientProcurement RecipientGroup = "Hospital procurement team"
	RecipientWarehouse   RecipientGroup = "Warehouse manager"
	RecipientDistrict    RecipientGroup = "District health office"
	RecipientPartner     RecipientGroup = "NGO / partner organization"
)

var RecipientGroups = []RecipientGroup{
	RecipientProcurement,
	RecipientWarehouse,
	RecipientDistrict,
	RecipientPartner,
}
