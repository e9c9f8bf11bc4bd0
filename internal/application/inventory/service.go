package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"propdesk-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingFields     = errors.New("property_type, location, area and selling_price are required")
	ErrInvalidUnitStatus = errors.New("Invalid unit status")
	ErrInvalidROI        = errors.New("roi_gross must be numeric")
	ErrInventoryNotFound = errors.New("Inventory item not found")
)

type Service struct {
	DB *gorm.DB
}

type CreateItemInput struct {
	PropertyType string
	Location     string
	UnitStatus   string
	Area         float64
	SellingPrice float64
	ROIGross     string
	PHPPEligible bool
}

func (s *Service) CreateItem(ctx context.Context, in CreateItemInput) (*domain.Inventory, error) {
	if in.PropertyType == "" || in.Location == "" || in.Area <= 0 || in.SellingPrice <= 0 {
		return nil, ErrMissingFields
	}
	status := in.UnitStatus
	if status == "" {
		status = domain.UnitAvailable
	}
	if !domain.IsValidUnitStatus(status) {
		return nil, ErrInvalidUnitStatus
	}
	roi := in.ROIGross
	if roi == "" {
		roi = domain.ROIUntracked
	}
	// The matching query casts roi_gross to numeric in SQL; one bad row
	// would poison every candidate lookup, so reject it at the door.
	if _, err := strconv.ParseFloat(roi, 64); err != nil {
		return nil, ErrInvalidROI
	}

	item := &domain.Inventory{
		PropertyType: in.PropertyType,
		Location:     in.Location,
		UnitStatus:   status,
		Area:         in.Area,
		SellingPrice: in.SellingPrice,
		ROIGross:     roi,
		PHPPEligible: in.PHPPEligible,
	}
	if err := s.DB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("Failed to create inventory item: %v", err)
	}
	return item, nil
}

func (s *Service) GetAllItems(ctx context.Context) ([]domain.Inventory, error) {
	var out []domain.Inventory
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) GetItemByID(ctx context.Context, id uuid.UUID) (*domain.Inventory, error) {
	var item domain.Inventory
	if err := s.DB.WithContext(ctx).Where("inventory_id = ?", id).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}
	return &item, nil
}

// UpdateUnitStatus flips a unit's availability (e.g. available → reserved
// when a deal closes). Non-available units stop appearing as candidates.
func (s *Service) UpdateUnitStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Inventory, error) {
	if !domain.IsValidUnitStatus(status) {
		return nil, ErrInvalidUnitStatus
	}
	var item domain.Inventory
	if err := s.DB.WithContext(ctx).Where("inventory_id = ?", id).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(&item).Update("unit_status", status).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
