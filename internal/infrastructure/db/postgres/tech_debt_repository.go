package postgres

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

// priorityRank sorts critical > high > medium > low.
const priorityRank = "CASE priority WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END DESC"

var techDebtColumns = []string{
	"title", "description", "owner", "priority", "status", "linked_adr_id", "impact", "effort_estimate",
	"target_resolution_date", "actual_resolution_date", "affected_systems", "tags", "updated_at",
}

// TechDebtRepository implements ports.TechDebtRepository.
type TechDebtRepository struct {
	db *gorm.DB
}

func NewTechDebtRepository(db *gorm.DB) *TechDebtRepository {
	return &TechDebtRepository{db: db}
}

func (r *TechDebtRepository) List(ctx context.Context) ([]domain.TechDebt, error) {
	return r.list(conn(ctx, r.db))
}

func (r *TechDebtRepository) ListByADR(ctx context.Context, adrKey int64) ([]domain.TechDebt, error) {
	return r.list(conn(ctx, r.db).Where("linked_adr_id = ?", adrKey))
}

func (r *TechDebtRepository) list(q *gorm.DB) ([]domain.TechDebt, error) {
	var recs []techDebtRecord
	err := q.Preload("LinkedADR").
		Order(priorityRank).
		Order("created_at DESC").
		Order("id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list tech debt: %w", err)
	}
	out := make([]domain.TechDebt, len(recs))
	for i := range recs {
		out[i] = recs[i].toDomain()
	}
	return out, nil
}

func (r *TechDebtRepository) FindByID(ctx context.Context, id string) (*domain.TechDebt, error) {
	var rec techDebtRecord
	if err := conn(ctx, r.db).Preload("LinkedADR").Where("external_id = ?", id).Take(&rec).Error; err != nil {
		return nil, translate(err, domain.KindTechDebt, id)
	}
	d := rec.toDomain()
	return &d, nil
}

func (r *TechDebtRepository) Create(ctx context.Context, d *domain.TechDebt) (*domain.TechDebt, error) {
	rec := techDebtFromDomain(d)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&rec).Error; err != nil {
		return nil, conflictOr(err, domain.KindTechDebt, "id", d.ID)
	}
	return r.FindByID(ctx, d.ID)
}

func (r *TechDebtRepository) Update(ctx context.Context, d *domain.TechDebt) (*domain.TechDebt, error) {
	rec := techDebtFromDomain(d)
	res := conn(ctx, r.db).Model(&techDebtRecord{}).
		Where("external_id = ?", d.ID).
		Select(techDebtColumns).
		Updates(&rec)
	if res.Error != nil {
		return nil, fmt.Errorf("update tech debt: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound(domain.KindTechDebt, d.ID)
	}
	return r.FindByID(ctx, d.ID)
}

func (r *TechDebtRepository) Delete(ctx context.Context, id string) error {
	res := conn(ctx, r.db).Where("external_id = ?", id).Delete(&techDebtRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete tech debt: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound(domain.KindTechDebt, id)
	}
	return nil
}

func (r techDebtRecord) toDomain() domain.TechDebt {
	d := domain.TechDebt{
		ID:                   r.ExternalID,
		Title:                r.Title,
		Description:          r.Description,
		Owner:                r.Owner,
		Priority:             domain.DebtPriority(r.Priority),
		Status:               domain.DebtStatus(r.Status),
		LinkedADRKey:         r.LinkedADRID,
		Impact:               r.Impact,
		EffortEstimate:       r.EffortEstimate,
		CreatedDate:          toDate(r.CreatedDate),
		TargetResolutionDate: toOptionalDate(r.TargetResolutionDate),
		ActualResolutionDate: toOptionalDate(r.ActualResolutionDate),
		AffectedSystems:      stringList(r.AffectedSystems),
		Tags:                 stringList(r.Tags),
		CreatedAt:            utc(r.CreatedAt),
		UpdatedAt:            utc(r.UpdatedAt),
	}
	if r.LinkedADR != nil {
		d.LinkedADRID = r.LinkedADR.ExternalID
	}
	return d
}

func techDebtFromDomain(d *domain.TechDebt) techDebtRecord {
	return techDebtRecord{
		ExternalID:           d.ID,
		Title:                d.Title,
		Description:          d.Description,
		Owner:                d.Owner,
		Priority:             string(d.Priority),
		Status:               string(d.Status),
		LinkedADRID:          d.LinkedADRKey,
		Impact:               d.Impact,
		EffortEstimate:       d.EffortEstimate,
		CreatedDate:          datatypes.Date(d.CreatedDate.Time),
		TargetResolutionDate: fromOptionalDate(d.TargetResolutionDate),
		ActualResolutionDate: fromOptionalDate(d.ActualResolutionDate),
		AffectedSystems:      datatypes.JSONSlice[string](stringList(d.AffectedSystems)),
		Tags:                 datatypes.JSONSlice[string](stringList(d.Tags)),
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}
