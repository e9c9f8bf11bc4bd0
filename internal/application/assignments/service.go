package assignments

import (
	"context"
	"errors"

	"propdesk-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrDealNotFound      = errors.New("Deal not found")
	ErrInventoryNotFound = errors.New("Inventory item not found")
	ErrAlreadyAssigned   = errors.New("Inventory item already assigned to this deal")
)

// Service manages the many-to-many candidate links between deals and
// inventory. EnforceUnique rejects duplicate pairs; the default (false)
// matches the reference behavior, where repeated Assign calls create
// duplicate rows and concurrent Assign/Unassign on the same pair is racy.
type Service struct {
	DB            *gorm.DB
	EnforceUnique bool
}

// Assign inserts a candidate link, optionally annotated with remarks.
func (s *Service) Assign(ctx context.Context, dealID, inventoryID uuid.UUID, remarks *string) (*domain.Assignment, error) {
	var deal domain.Deal
	if err := s.DB.WithContext(ctx).Where("deal_id = ?", dealID).First(&deal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	var unit domain.Inventory
	if err := s.DB.WithContext(ctx).Where("inventory_id = ?", inventoryID).First(&unit).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}

	if s.EnforceUnique {
		var count int64
		if err := s.DB.WithContext(ctx).Model(&domain.Assignment{}).
			Where("deal_id = ? AND inventory_id = ?", dealID, inventoryID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrAlreadyAssigned
		}
	}

	a := &domain.Assignment{
		DealID:      dealID,
		InventoryID: inventoryID,
		Remarks:     remarks,
	}
	if err := s.DB.WithContext(ctx).Create(a).Error; err != nil {
		log.Error().Err(err).Str("deal_id", dealID.String()).Str("inventory_id", inventoryID.String()).Msg("Assign failed")
		return nil, err
	}
	return a, nil
}

// Unassign deletes all rows matching the exact pair. Removing a pair that
// was never assigned is not an error (idempotent).
func (s *Service) Unassign(ctx context.Context, dealID, inventoryID uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Where("deal_id = ? AND inventory_id = ?", dealID, inventoryID).
		Delete(&domain.Assignment{}).Error
}

// UpdateRemarks rewrites the annotation on an existing pair.
func (s *Service) UpdateRemarks(ctx context.Context, dealID, inventoryID uuid.UUID, remarks string) error {
	res := s.DB.WithContext(ctx).Model(&domain.Assignment{}).
		Where("deal_id = ? AND inventory_id = ?", dealID, inventoryID).
		Update("remarks", remarks)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInventoryNotFound
	}
	return nil
}

// ListAssigned returns the inventory projection of the deal's candidate
// links, in arbitrary order.
func (s *Service) ListAssigned(ctx context.Context, dealID uuid.UUID) ([]domain.Inventory, error) {
	var items []domain.Inventory
	err := s.DB.WithContext(ctx).Model(&domain.Inventory{}).
		Joins("JOIN assignments ON assignments.inventory_id = inventory_items.inventory_id").
		Where("assignments.deal_id = ?", dealID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
