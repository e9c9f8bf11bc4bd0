package requirements

import (
	"context"
	"errors"
	"fmt"

	"propdesk-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrMissingFields       = errors.New("demand, property_type, location and budget are required")
	ErrRequirementNotFound = errors.New("Requirement not found")
)

type Service struct {
	DB *gorm.DB
}

type CreateRequirementInput struct {
	Demand         string
	PropertyType   string
	Location       string
	Budget         string
	SquareFootage  *float64
	PreferredROI   *float64
	PHPPEligible   bool
	Classification string
}

// CreateRequirement validates the budget up front so a record that can
// never be matched is rejected at the door.
func (s *Service) CreateRequirement(ctx context.Context, in CreateRequirementInput) (*domain.Requirement, error) {
	if in.Demand == "" || in.PropertyType == "" || in.Location == "" || in.Budget == "" {
		return nil, ErrMissingFields
	}
	if _, _, err := domain.ParseBudgetRange(in.Budget); err != nil {
		return nil, err
	}

	req := &domain.Requirement{
		Demand:         in.Demand,
		PropertyType:   in.PropertyType,
		Location:       in.Location,
		Budget:         in.Budget,
		SquareFootage:  in.SquareFootage,
		PreferredROI:   in.PreferredROI,
		PHPPEligible:   in.PHPPEligible,
		Classification: in.Classification,
		Status:         domain.RequirementActive,
	}
	if err := s.DB.WithContext(ctx).Create(req).Error; err != nil {
		return nil, fmt.Errorf("Failed to create requirement: %v", err)
	}
	return req, nil
}

func (s *Service) GetAllRequirements(ctx context.Context) ([]domain.Requirement, error) {
	var out []domain.Requirement
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) GetRequirementByID(ctx context.Context, id uuid.UUID) (*domain.Requirement, error) {
	var req domain.Requirement
	if err := s.DB.WithContext(ctx).Where("requirement_id = ?", id).First(&req).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRequirementNotFound
		}
		return nil, err
	}
	return &req, nil
}
