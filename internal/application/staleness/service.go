package staleness

import (
	"context"
	"time"

	"propdesk-backend/internal/domain"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// StaleAfter is the fixed inactivity threshold for operational reminders.
const StaleAfter = 7 * 24 * time.Hour

// Service identifies deals and requirements that have gone quiet.
type Service struct {
	DB *gorm.DB

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// StaleDeals returns non-terminal deals not updated within the threshold.
// Closed and rejected deals are excluded: reminding about finished deals
// is noise.
func (s *Service) StaleDeals(ctx context.Context) ([]domain.Deal, error) {
	cutoff := s.now().Add(-StaleAfter)
	var out []domain.Deal
	err := s.DB.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Where("status NOT IN ?", []string{domain.DealClosed, domain.DealRejected}).
		Order("updated_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UnassignedRequirements returns requirements older than the threshold
// that no deal references yet, regardless of the requirement's own status.
func (s *Service) UnassignedRequirements(ctx context.Context) ([]domain.Requirement, error) {
	cutoff := s.now().Add(-StaleAfter)
	var out []domain.Requirement
	err := s.DB.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Where("requirement_id NOT IN (?)", s.DB.Model(&domain.Deal{}).Select("requirement_id")).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Sweep runs both staleness queries concurrently. The two reads are
// independent; if either fails the sweep fails as a whole.
func (s *Service) Sweep(ctx context.Context) ([]domain.Deal, []domain.Requirement, error) {
	var (
		deals []domain.Deal
		reqs  []domain.Requirement
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deals, err = s.StaleDeals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		reqs, err = s.UnassignedRequirements(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return deals, reqs, nil
}
