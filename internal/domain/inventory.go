package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inventory unit status. Only "available" units can become candidates.
const (
	UnitAvailable = "available"
	UnitSold      = "sold"
	UnitReserved  = "reserved"
	UnitRented    = "rented"
)

// ROIUntracked is the sentinel for "ROI not tracked" on an inventory item.
// Untracked units are never disqualified by the ROI filter stage.
const ROIUntracked = "0"

// Inventory is a supply record. SellingPrice is in millions, Area in
// square feet. ROIGross is a percent kept as text ("0" = untracked).
type Inventory struct {
	InventoryID  uuid.UUID `gorm:"column:inventory_id;type:uuid;primaryKey" json:"inventory_id"`
	PropertyType string    `gorm:"column:property_type;not null;index" json:"property_type"`
	Location     string    `gorm:"column:location;not null;index" json:"location"`
	UnitStatus   string    `gorm:"column:unit_status;type:varchar(20);default:'available';index" json:"unit_status"`
	Area         float64   `gorm:"column:area;not null" json:"area"`
	SellingPrice float64   `gorm:"column:selling_price;type:decimal(18,2);not null" json:"selling_price"`
	ROIGross     string    `gorm:"column:roi_gross;default:'0'" json:"roi_gross"`
	PHPPEligible bool      `gorm:"column:phpp_eligible;default:false" json:"phpp_eligible"`
	CreatedAt    time.Time `json:"date_added"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Inventory) TableName() string {
	return "inventory_items"
}

// BeforeCreate sets inventory_id if not already set.
func (i *Inventory) BeforeCreate(tx *gorm.DB) error {
	if i.InventoryID == uuid.Nil {
		i.InventoryID = uuid.New()
	}
	return nil
}

// IsValidUnitStatus reports whether s is a known unit status.
func IsValidUnitStatus(s string) bool {
	switch s {
	case UnitAvailable, UnitSold, UnitReserved, UnitRented:
		return true
	}
	return false
}
