package postgres

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

var adrColumns = []string{
	"title", "context", "options", "recommended_option", "strategic_selection", "interim_selection",
	"decision_rationale", "consequences", "status", "author", "stakeholders", "related_adrs", "updated_at",
}

// ADRRepository implements ports.ADRRepository.
type ADRRepository struct {
	db *gorm.DB
}

func NewADRRepository(db *gorm.DB) *ADRRepository {
	return &ADRRepository{db: db}
}

func (r *ADRRepository) List(ctx context.Context) ([]domain.ADR, error) {
	var recs []adrRecord
	if err := conn(ctx, r.db).Order("created_at DESC").Order("id DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list adrs: %w", err)
	}
	out := make([]domain.ADR, len(recs))
	for i := range recs {
		out[i] = recs[i].toDomain()
	}
	return out, nil
}

func (r *ADRRepository) FindByID(ctx context.Context, id string) (*domain.ADR, error) {
	var rec adrRecord
	if err := conn(ctx, r.db).Where("external_id = ?", id).Take(&rec).Error; err != nil {
		return nil, translate(err, domain.KindADR, id)
	}
	a := rec.toDomain()
	return &a, nil
}

// Create fails with domain.ErrConflict when an ADR with the same date and
// title slug already exists.
func (r *ADRRepository) Create(ctx context.Context, a *domain.ADR) (*domain.ADR, error) {
	rec := adrFromDomain(a)
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return nil, conflictOr(err, domain.KindADR, "id", a.ID)
	}
	return r.FindByID(ctx, a.ID)
}

func (r *ADRRepository) Update(ctx context.Context, a *domain.ADR) (*domain.ADR, error) {
	rec := adrFromDomain(a)
	res := conn(ctx, r.db).Model(&adrRecord{}).
		Where("external_id = ?", a.ID).
		Select(adrColumns).
		Updates(&rec)
	if res.Error != nil {
		return nil, fmt.Errorf("update adr: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound(domain.KindADR, a.ID)
	}
	return r.FindByID(ctx, a.ID)
}

// Delete clears tech-debt links to the ADR before removing it.
func (r *ADRRepository) Delete(ctx context.Context, id string) error {
	db := conn(ctx, r.db)

	var rec adrRecord
	if err := db.Select("id").Where("external_id = ?", id).Take(&rec).Error; err != nil {
		return translate(err, domain.KindADR, id)
	}
	if err := db.Model(&techDebtRecord{}).
		Where("linked_adr_id = ?", rec.ID).
		Update("linked_adr_id", nil).Error; err != nil {
		return fmt.Errorf("unlink tech debt: %w", err)
	}
	if err := db.Delete(&adrRecord{}, rec.ID).Error; err != nil {
		return fmt.Errorf("delete adr: %w", err)
	}
	return nil
}

func (r adrRecord) toDomain() domain.ADR {
	return domain.ADR{
		ID:                 r.ExternalID,
		Title:              r.Title,
		Context:            r.Context,
		Options:            optionList(r.Options),
		RecommendedOption:  r.RecommendedOption,
		StrategicSelection: r.StrategicSelection,
		InterimSelection:   r.InterimSelection,
		DecisionRationale:  r.DecisionRationale,
		Consequences:       r.Consequences,
		Status:             domain.ADRStatus(r.Status),
		Author:             r.Author,
		Stakeholders:       stringList(r.Stakeholders),
		RelatedADRs:        stringList(r.RelatedADRs),
		CreatedAt:          utc(r.CreatedAt),
		UpdatedAt:          utc(r.UpdatedAt),
	}
}

func adrFromDomain(a *domain.ADR) adrRecord {
	return adrRecord{
		ExternalID:         a.ID,
		Title:              a.Title,
		Context:            a.Context,
		Options:            datatypes.JSONSlice[domain.DecisionOption](optionList(a.Options)),
		RecommendedOption:  a.RecommendedOption,
		StrategicSelection: a.StrategicSelection,
		InterimSelection:   a.InterimSelection,
		DecisionRationale:  a.DecisionRationale,
		Consequences:       a.Consequences,
		Status:             string(a.Status),
		Author:             a.Author,
		Stakeholders:       datatypes.JSONSlice[string](stringList(a.Stakeholders)),
		RelatedADRs:        datatypes.JSONSlice[string](stringList(a.RelatedADRs)),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
