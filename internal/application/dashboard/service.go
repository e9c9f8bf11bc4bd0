package dashboard

import (
	"context"
	"sync"
	"time"

	"propdesk-backend/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Summary holds the count-only aggregates for the overview screen.
type Summary struct {
	ActiveRequirements int64 `json:"active_requirements"`
	AvailableInventory int64 `json:"available_inventory"`
	OpenDeals          int64 `json:"open_deals"`
	StaleDeals         int64 `json:"stale_deals"`
}

// Service computes display-layer aggregates. Unlike the core operations,
// a failed count here falls back to zero: a dashboard tile must not take
// the whole screen down.
type Service struct {
	DB *gorm.DB
}

func (s *Service) GetSummary(ctx context.Context) Summary {
	staleCutoff := time.Now().Add(-7 * 24 * time.Hour)

	counts := []struct {
		name  string
		dest  *int64
		query func(context.Context) *gorm.DB
	}{
		{"active_requirements", nil, func(ctx context.Context) *gorm.DB {
			return s.DB.WithContext(ctx).Model(&domain.Requirement{}).Where("status = ?", domain.RequirementActive)
		}},
		{"available_inventory", nil, func(ctx context.Context) *gorm.DB {
			return s.DB.WithContext(ctx).Model(&domain.Inventory{}).Where("unit_status = ?", domain.UnitAvailable)
		}},
		{"open_deals", nil, func(ctx context.Context) *gorm.DB {
			return s.DB.WithContext(ctx).Model(&domain.Deal{}).Where("status NOT IN ?", []string{domain.DealClosed, domain.DealRejected})
		}},
		{"stale_deals", nil, func(ctx context.Context) *gorm.DB {
			return s.DB.WithContext(ctx).Model(&domain.Deal{}).
				Where("updated_at < ?", staleCutoff).
				Where("status NOT IN ?", []string{domain.DealClosed, domain.DealRejected})
		}},
	}

	var summary Summary
	counts[0].dest = &summary.ActiveRequirements
	counts[1].dest = &summary.AvailableInventory
	counts[2].dest = &summary.OpenDeals
	counts[3].dest = &summary.StaleDeals

	var wg sync.WaitGroup
	for _, c := range counts {
		wg.Add(1)
		go func(name string, dest *int64, query func(context.Context) *gorm.DB) {
			defer wg.Done()
			if err := query(ctx).Count(dest).Error; err != nil {
				log.Error().Err(err).Str("count", name).Msg("Dashboard count failed, defaulting to zero")
				*dest = 0
			}
		}(c.name, c.dest, c.query)
	}
	wg.Wait()

	return summary
}
