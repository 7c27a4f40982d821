package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

// groupable lists the columns CountBy accepts per kind. Column names are
// interpolated into SQL, so nothing outside this set reaches the query.
var groupable = map[domain.Kind]map[string]bool{
	domain.KindBusinessApp: {"status": true, "hosting_type": true, "resilience_category": true},
	domain.KindADR:         {"status": true},
	domain.KindTechDebt:    {"status": true, "priority": true},
}

// DashboardRepository implements ports.DashboardRepository.
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) Totals(ctx context.Context) (domain.Totals, error) {
	db := conn(ctx, r.db)

	var t domain.Totals
	counts := []struct {
		model any
		dst   *int64
	}{
		{&businessAppRecord{}, &t.BusinessApps},
		{&adrRecord{}, &t.ADRs},
		{&techDebtRecord{}, &t.TechDebt},
		{&supplierRecord{}, &t.Suppliers},
		{&productRecord{}, &t.Products},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return domain.Totals{}, fmt.Errorf("count: %w", err)
		}
	}
	return t, nil
}

func (r *DashboardRepository) CountBy(ctx context.Context, kind domain.Kind, column string) (map[string]int64, error) {
	if !groupable[kind][column] {
		return nil, fmt.Errorf("count by: %s.%s is not groupable", kind, column)
	}

	var rows []struct {
		Value string
		Total int64
	}
	err := conn(ctx, r.db).Table(kindTables[kind]).
		Select(column + " AS value, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count %s by %s: %w", kind, column, err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Value] = row.Total
	}
	return out, nil
}

func (r *DashboardRepository) Recent(ctx context.Context, kind domain.Kind, limit int) ([]domain.RecentItem, error) {
	q := conn(ctx, r.db).Order("created_at DESC").Order("id DESC").Limit(limit)

	switch kind {
	case domain.KindBusinessApp:
		var recs []businessAppRecord
		if err := q.Select("external_id", "name", "created_at").Find(&recs).Error; err != nil {
			return nil, fmt.Errorf("recent business apps: %w", err)
		}
		out := make([]domain.RecentItem, len(recs))
		for i, rec := range recs {
			out[i] = domain.RecentItem{ID: rec.ExternalID, Name: rec.Name, CreatedAt: utc(rec.CreatedAt)}
		}
		return out, nil

	case domain.KindADR:
		var recs []adrRecord
		if err := q.Select("external_id", "title", "created_at").Find(&recs).Error; err != nil {
			return nil, fmt.Errorf("recent adrs: %w", err)
		}
		out := make([]domain.RecentItem, len(recs))
		for i, rec := range recs {
			out[i] = domain.RecentItem{ID: rec.ExternalID, Title: rec.Title, CreatedAt: utc(rec.CreatedAt)}
		}
		return out, nil

	case domain.KindTechDebt:
		var recs []techDebtRecord
		if err := q.Select("external_id", "title", "priority", "created_at").Find(&recs).Error; err != nil {
			return nil, fmt.Errorf("recent tech debt: %w", err)
		}
		out := make([]domain.RecentItem, len(recs))
		for i, rec := range recs {
			out[i] = domain.RecentItem{ID: rec.ExternalID, Title: rec.Title, Priority: rec.Priority, CreatedAt: utc(rec.CreatedAt)}
		}
		return out, nil
	}

	return nil, fmt.Errorf("recent: unsupported kind %q", kind)
}
