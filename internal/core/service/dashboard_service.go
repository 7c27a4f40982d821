package service

import (
	"context"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

const recentLimit = 5

// DashboardService assembles the cross-catalog summary.
type DashboardService struct {
	repo ports.DashboardRepository
	tx   ports.Transactor
}

func NewDashboardService(repo ports.DashboardRepository, tx ports.Transactor) *DashboardService {
	return &DashboardService{repo: repo, tx: tx}
}

// Stats reads every figure inside one transaction so totals and breakdowns
// describe the same snapshot.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if stats.Totals, err = s.repo.Totals(ctx); err != nil {
			return err
		}

		groups := []struct {
			kind   domain.Kind
			column string
			dst    *map[string]int64
		}{
			{domain.KindBusinessApp, "status", &stats.BusinessAppsByStatus},
			{domain.KindADR, "status", &stats.ADRsByStatus},
			{domain.KindTechDebt, "priority", &stats.TechDebtByPriority},
			{domain.KindTechDebt, "status", &stats.TechDebtByStatus},
		}
		for _, g := range groups {
			if *g.dst, err = s.repo.CountBy(ctx, g.kind, g.column); err != nil {
				return err
			}
		}

		recent := []struct {
			kind domain.Kind
			dst  *[]domain.RecentItem
		}{
			{domain.KindBusinessApp, &stats.RecentBusinessApps},
			{domain.KindADR, &stats.RecentADRs},
			{domain.KindTechDebt, &stats.RecentTechDebt},
		}
		for _, r := range recent {
			if *r.dst, err = s.repo.Recent(ctx, r.kind, recentLimit); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
