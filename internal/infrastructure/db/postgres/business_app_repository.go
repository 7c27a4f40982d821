package postgres

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

var businessAppColumns = []string{
	"name", "description", "architectural_owner", "business_owner", "product_owner", "system_owner",
	"status", "resilience_category", "hosting_type", "cloud_provider", "development_type",
	"geographic_locations", "technologies", "dependencies", "product_id", "updated_at",
}

// BusinessAppRepository implements ports.BusinessAppRepository.
type BusinessAppRepository struct {
	db *gorm.DB
}

func NewBusinessAppRepository(db *gorm.DB) *BusinessAppRepository {
	return &BusinessAppRepository{db: db}
}

func (r *BusinessAppRepository) List(ctx context.Context) ([]domain.BusinessApp, error) {
	var recs []businessAppRecord
	if err := conn(ctx, r.db).Preload("Product").Order("name ASC").Order("id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list business apps: %w", err)
	}
	out := make([]domain.BusinessApp, len(recs))
	for i := range recs {
		out[i] = recs[i].toDomain()
	}
	return out, nil
}

func (r *BusinessAppRepository) FindByID(ctx context.Context, id string) (*domain.BusinessApp, error) {
	var rec businessAppRecord
	if err := conn(ctx, r.db).Preload("Product").Where("external_id = ?", id).Take(&rec).Error; err != nil {
		return nil, translate(err, domain.KindBusinessApp, id)
	}
	a := rec.toDomain()
	return &a, nil
}

func (r *BusinessAppRepository) Create(ctx context.Context, a *domain.BusinessApp) (*domain.BusinessApp, error) {
	rec := businessAppFromDomain(a)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&rec).Error; err != nil {
		return nil, conflictOr(err, domain.KindBusinessApp, "id", a.ID)
	}
	return r.FindByID(ctx, a.ID)
}

func (r *BusinessAppRepository) Update(ctx context.Context, a *domain.BusinessApp) (*domain.BusinessApp, error) {
	rec := businessAppFromDomain(a)
	res := conn(ctx, r.db).Model(&businessAppRecord{}).
		Where("external_id = ?", a.ID).
		Select(businessAppColumns).
		Updates(&rec)
	if res.Error != nil {
		return nil, fmt.Errorf("update business app: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound(domain.KindBusinessApp, a.ID)
	}
	return r.FindByID(ctx, a.ID)
}

func (r *BusinessAppRepository) Delete(ctx context.Context, id string) error {
	res := conn(ctx, r.db).Where("external_id = ?", id).Delete(&businessAppRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete business app: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound(domain.KindBusinessApp, id)
	}
	return nil
}

func (r businessAppRecord) toDomain() domain.BusinessApp {
	a := domain.BusinessApp{
		ID:                  r.ExternalID,
		Name:                r.Name,
		Description:         r.Description,
		ArchitecturalOwner:  r.ArchitecturalOwner,
		BusinessOwner:       r.BusinessOwner,
		ProductOwner:        r.ProductOwner,
		SystemOwner:         r.SystemOwner,
		Status:              domain.AppStatus(r.Status),
		ResilienceCategory:  domain.ResilienceCategory(r.ResilienceCategory),
		HostingType:         domain.HostingType(r.HostingType),
		CloudProvider:       r.CloudProvider,
		DevelopmentType:     domain.DevelopmentType(r.DevelopmentType),
		GeographicLocations: stringList(r.GeographicLocations),
		Technologies:        stringList(r.Technologies),
		Dependencies:        stringList(r.Dependencies),
		ProductKey:          r.ProductID,
		CreatedAt:           utc(r.CreatedAt),
		UpdatedAt:           utc(r.UpdatedAt),
	}
	if r.Product != nil {
		a.ProductID = r.Product.ExternalID
	}
	return a
}

func businessAppFromDomain(a *domain.BusinessApp) businessAppRecord {
	return businessAppRecord{
		ExternalID:          a.ID,
		Name:                a.Name,
		Description:         a.Description,
		ArchitecturalOwner:  a.ArchitecturalOwner,
		BusinessOwner:       a.BusinessOwner,
		ProductOwner:        a.ProductOwner,
		SystemOwner:         a.SystemOwner,
		Status:              string(a.Status),
		ResilienceCategory:  string(a.ResilienceCategory),
		HostingType:         string(a.HostingType),
		CloudProvider:       a.CloudProvider,
		DevelopmentType:     string(a.DevelopmentType),
		GeographicLocations: datatypes.JSONSlice[string](stringList(a.GeographicLocations)),
		Technologies:        datatypes.JSONSlice[string](stringList(a.Technologies)),
		Dependencies:        datatypes.JSONSlice[string](stringList(a.Dependencies)),
		ProductID:           a.ProductKey,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}
