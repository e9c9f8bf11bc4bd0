package matching

import (
	"context"
	"errors"
	"fmt"

	"propdesk-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRequirementNotFound = errors.New("Requirement not found")
	ErrInvalidBudget       = errors.New("Requirement budget could not be parsed")
)

// Tolerance bands for the optional filter stages.
const (
	areaToleranceLow  = 0.9
	areaToleranceHigh = 1.1
	roiToleranceLow   = 0.9
	roiCeiling        = 100.0
)

type Service struct {
	DB *gorm.DB
}

// FindCandidates returns the available inventory items satisfying the
// requirement's constraints. The filter is a chain of independent
// predicates, each appended only when its triggering field is present;
// an empty result is a valid outcome. Ordering is storage order
// (newest first), not a ranking.
func (s *Service) FindCandidates(ctx context.Context, requirementID uuid.UUID) ([]domain.Inventory, error) {
	var req domain.Requirement
	if err := s.DB.WithContext(ctx).Where("requirement_id = ?", requirementID).First(&req).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRequirementNotFound
		}
		return nil, err
	}

	minBudget, maxBudget, err := domain.ParseBudgetRange(req.Budget)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBudget, req.Budget)
	}

	q := s.DB.WithContext(ctx).Model(&domain.Inventory{}).
		Where("unit_status = ?", domain.UnitAvailable).
		Where("property_type = ?", req.PropertyType).
		Where("location = ?", req.Location).
		Where("selling_price BETWEEN ? AND ?", minBudget, maxBudget)

	if req.SquareFootage != nil {
		pref := *req.SquareFootage
		q = q.Where("area BETWEEN ? AND ?", pref*areaToleranceLow, pref*areaToleranceHigh)
	}

	if req.PreferredROI != nil {
		// Untracked ROI ("0") never disqualifies a unit.
		q = q.Where(
			"(roi_gross = ? OR (CAST(roi_gross AS numeric) BETWEEN ? AND ?))",
			domain.ROIUntracked, *req.PreferredROI*roiToleranceLow, roiCeiling,
		)
	}

	var items []domain.Inventory
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
