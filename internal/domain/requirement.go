package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Requirement record status.
const (
	RequirementActive    = "active"
	RequirementInactive  = "inactive"
	RequirementCompleted = "completed"
)

// Matching status values tracked on a Requirement once a deal exists.
// Empty until CreateDeal forces "open".
const (
	MatchingOpen        = "open"
	MatchingAssigned    = "assigned"
	MatchingNegotiation = "negotiation"
	MatchingClosed      = "closed"
	MatchingRejected    = "rejected"
)

// Requirement is a buyer demand record. Budget is stored as a free-text
// range string in millions (e.g. "1.5-2.0"); see ParseBudgetRange.
type Requirement struct {
	RequirementID  uuid.UUID `gorm:"column:requirement_id;type:uuid;primaryKey" json:"requirement_id"`
	Demand         string    `gorm:"column:demand;not null" json:"demand"`
	PropertyType   string    `gorm:"column:property_type;not null" json:"property_type"`
	Location       string    `gorm:"column:location;not null" json:"location"`
	Budget         string    `gorm:"column:budget;not null" json:"budget"`
	SquareFootage  *float64  `gorm:"column:square_footage" json:"square_footage"`
	PreferredROI   *float64  `gorm:"column:preferred_roi" json:"preferred_roi"`
	PHPPEligible   bool      `gorm:"column:phpp_eligible;default:false" json:"phpp_eligible"`
	Classification string    `gorm:"column:classification" json:"classification"` // "rtm" or "offplan"
	Status         string    `gorm:"column:status;type:varchar(20);default:'active';index" json:"status"`
	MatchingStatus string    `gorm:"column:matching_status;type:varchar(20);default:''" json:"matching_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Requirement) TableName() string {
	return "requirements"
}

// BeforeCreate sets requirement_id if not already set (DBs without default uuid).
func (r *Requirement) BeforeCreate(tx *gorm.DB) error {
	if r.RequirementID == uuid.Nil {
		r.RequirementID = uuid.New()
	}
	return nil
}
