package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assignment is the join row marking an inventory item as a candidate
// under consideration for a deal. Uniqueness of the (deal_id, inventory_id)
// pair is not enforced at the schema level; repeated Assign calls create
// duplicate rows unless the registry is configured to reject them.
type Assignment struct {
	AssignmentID uuid.UUID `gorm:"column:assignment_id;type:uuid;primaryKey" json:"assignment_id"`
	DealID       uuid.UUID `gorm:"column:deal_id;type:uuid;not null;index" json:"deal_id"`
	InventoryID  uuid.UUID `gorm:"column:inventory_id;type:uuid;not null;index" json:"inventory_id"`
	Remarks      *string   `gorm:"column:remarks" json:"remarks"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Assignment) TableName() string {
	return "assignments"
}

// BeforeCreate sets assignment_id if not already set.
func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	if a.AssignmentID == uuid.Nil {
		a.AssignmentID = uuid.New()
	}
	return nil
}
