package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Deal status. "received" is the only initial state; "closed" and
// "rejected" are terminal.
const (
	DealReceived    = "received"
	DealOpen        = "open"
	DealAssigned    = "assigned"
	DealNegotiation = "negotiation"
	DealClosed      = "closed"
	DealRejected    = "rejected"
)

// dealTransitions is the forward-only state graph:
// received → open → assigned → negotiation → {closed | rejected}.
var dealTransitions = map[string][]string{
	DealReceived:    {DealOpen},
	DealOpen:        {DealAssigned},
	DealAssigned:    {DealNegotiation},
	DealNegotiation: {DealClosed, DealRejected},
}

// IsValidDealStatus reports whether s is a known deal status.
func IsValidDealStatus(s string) bool {
	switch s {
	case DealReceived, DealOpen, DealAssigned, DealNegotiation, DealClosed, DealRejected:
		return true
	}
	return false
}

// CanTransitionDeal reports whether a deal may move from one status to the
// next. Terminal statuses have no outgoing edges.
func CanTransitionDeal(from, to string) bool {
	for _, next := range dealTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Deal links exactly one Requirement to zero-or-more Inventory candidates
// over time. Deals are never physically deleted in normal operation.
type Deal struct {
	DealID            uuid.UUID      `gorm:"column:deal_id;type:uuid;primaryKey" json:"deal_id"`
	RequirementID     uuid.UUID      `gorm:"column:requirement_id;type:uuid;not null;index" json:"requirement_id"`
	Status            string         `gorm:"column:status;type:varchar(20);default:'received';index" json:"status"`
	PaymentPlan       *string        `gorm:"column:payment_plan" json:"payment_plan"`
	OutstandingAmount *float64       `gorm:"column:outstanding_amount;type:decimal(18,2)" json:"outstanding_amount"`
	Milestones        datatypes.JSON `gorm:"column:milestones;type:json" json:"milestones"`
	Remarks           *string        `gorm:"column:remarks" json:"remarks"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (Deal) TableName() string {
	return "deals"
}

// BeforeCreate sets deal_id if not already set.
func (d *Deal) BeforeCreate(tx *gorm.DB) error {
	if d.DealID == uuid.Nil {
		d.DealID = uuid.New()
	}
	return nil
}
