package deals

import (
	"context"
	"errors"

	"propdesk-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrRequirementNotFound = errors.New("Requirement not found")
	ErrDealNotFound        = errors.New("Deal not found")
	ErrUnknownStatus       = errors.New("Unknown deal status")
	ErrIllegalTransition   = errors.New("Illegal deal status transition")
	ErrNoChanges           = errors.New("No valid changes provided")
)

type Service struct {
	DB *gorm.DB
}

// DealWithRequirement joins a deal to its owning requirement.
type DealWithRequirement struct {
	Deal        domain.Deal        `json:"deal"`
	Requirement domain.Requirement `json:"requirement"`
}

// CreateDeal inserts a deal in status "received" and forces the owning
// requirement's matching status to "open". The two writes are one
// transaction: a reader must never observe a received deal alongside a
// requirement that is not open.
func (s *Service) CreateDeal(ctx context.Context, requirementID uuid.UUID) (*domain.Deal, error) {
	var deal *domain.Deal

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req domain.Requirement
		if err := tx.Where("requirement_id = ?", requirementID).First(&req).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrRequirementNotFound
			}
			return err
		}

		d := &domain.Deal{
			RequirementID: req.RequirementID,
			Status:        domain.DealReceived,
		}
		if err := tx.Create(d).Error; err != nil {
			return err
		}

		if err := tx.Model(&req).Update("matching_status", domain.MatchingOpen).Error; err != nil {
			return err
		}

		deal = d
		return nil
	})
	if err != nil {
		if err != ErrRequirementNotFound {
			log.Error().Err(err).Str("requirement_id", requirementID.String()).Msg("CreateDeal failed")
		}
		return nil, err
	}
	return deal, nil
}

// UpdateStatus moves a deal along the forward-only state graph and mirrors
// the new stage onto the owning requirement's matching status, atomically.
// Terminal deals cannot be updated again.
func (s *Service) UpdateStatus(ctx context.Context, dealID uuid.UUID, newStatus string) (*domain.Deal, error) {
	if !domain.IsValidDealStatus(newStatus) {
		return nil, ErrUnknownStatus
	}

	var updated *domain.Deal
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var deal domain.Deal
		if err := tx.Where("deal_id = ?", dealID).First(&deal).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrDealNotFound
			}
			return err
		}

		if !domain.CanTransitionDeal(deal.Status, newStatus) {
			return ErrIllegalTransition
		}

		if err := tx.Model(&deal).Update("status", newStatus).Error; err != nil {
			return err
		}

		// "received" is not a matching stage; everything after it is.
		if newStatus != domain.DealReceived {
			if err := tx.Model(&domain.Requirement{}).
				Where("requirement_id = ?", deal.RequirementID).
				Update("matching_status", newStatus).Error; err != nil {
				return err
			}
		}

		updated = &deal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateDetailsInput carries the optional deal attributes a caller may set.
type UpdateDetailsInput struct {
	PaymentPlan       *string
	OutstandingAmount *float64
	Milestones        datatypes.JSON
	Remarks           *string
}

// UpdateDetails mutates the deal's commercial attributes and bumps updated_at.
func (s *Service) UpdateDetails(ctx context.Context, dealID uuid.UUID, in UpdateDetailsInput) (*domain.Deal, error) {
	var deal domain.Deal
	if err := s.DB.WithContext(ctx).Where("deal_id = ?", dealID).First(&deal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDealNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.PaymentPlan != nil {
		updates["payment_plan"] = *in.PaymentPlan
	}
	if in.OutstandingAmount != nil {
		updates["outstanding_amount"] = *in.OutstandingAmount
	}
	if in.Milestones != nil {
		updates["milestones"] = in.Milestones
	}
	if in.Remarks != nil {
		updates["remarks"] = *in.Remarks
	}
	if len(updates) == 0 {
		return nil, ErrNoChanges
	}

	if err := s.DB.WithContext(ctx).Model(&deal).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Where("deal_id = ?", dealID).First(&deal).Error; err != nil {
		return nil, err
	}
	return &deal, nil
}

// GetOpenDeals returns deals in non-terminal statuses, newest first.
func (s *Service) GetOpenDeals(ctx context.Context) ([]domain.Deal, error) {
	var out []domain.Deal
	err := s.DB.WithContext(ctx).
		Where("status NOT IN ?", []string{domain.DealClosed, domain.DealRejected}).
		Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetClosedDeals returns terminal deals, most recently updated first.
func (s *Service) GetClosedDeals(ctx context.Context) ([]domain.Deal, error) {
	var out []domain.Deal
	err := s.DB.WithContext(ctx).
		Where("status IN ?", []string{domain.DealClosed, domain.DealRejected}).
		Order("updated_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetDealWithRequirement joins a deal to its owning requirement.
func (s *Service) GetDealWithRequirement(ctx context.Context, dealID uuid.UUID) (*DealWithRequirement, error) {
	var deal domain.Deal
	if err := s.DB.WithContext(ctx).Where("deal_id = ?", dealID).First(&deal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDealNotFound
		}
		return nil, err
	}
	var req domain.Requirement
	if err := s.DB.WithContext(ctx).Where("requirement_id = ?", deal.RequirementID).First(&req).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRequirementNotFound
		}
		return nil, err
	}
	return &DealWithRequirement{Deal: deal, Requirement: req}, nil
}
