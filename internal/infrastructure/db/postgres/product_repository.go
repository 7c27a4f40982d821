package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

var productColumns = []string{
	"name", "supplier_id", "description", "version", "product_url", "support_url", "license_type", "updated_at",
}

// ProductRepository implements ports.ProductRepository.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, conn(ctx, r.db))
}

func (r *ProductRepository) ListBySupplier(ctx context.Context, supplierKey int64) ([]domain.Product, error) {
	return r.list(ctx, conn(ctx, r.db).Where("supplier_id = ?", supplierKey))
}

func (r *ProductRepository) list(_ context.Context, q *gorm.DB) ([]domain.Product, error) {
	var recs []productRecord
	if err := q.Preload("Supplier").Order("name ASC").Order("id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]domain.Product, len(recs))
	for i := range recs {
		out[i] = recs[i].toDomain()
	}
	return out, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var rec productRecord
	if err := conn(ctx, r.db).Preload("Supplier").Where("external_id = ?", id).Take(&rec).Error; err != nil {
		return nil, translate(err, domain.KindProduct, id)
	}
	p := rec.toDomain()
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	rec := productFromDomain(p)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&rec).Error; err != nil {
		return nil, conflictOr(err, domain.KindProduct, "id", p.ID)
	}
	return r.FindByID(ctx, p.ID)
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	rec := productFromDomain(p)
	res := conn(ctx, r.db).Model(&productRecord{}).
		Where("external_id = ?", p.ID).
		Select(productColumns).
		Updates(&rec)
	if res.Error != nil {
		return nil, fmt.Errorf("update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound(domain.KindProduct, p.ID)
	}
	return r.FindByID(ctx, p.ID)
}

// Delete clears business-app links to the product before removing it.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	db := conn(ctx, r.db)

	var rec productRecord
	if err := db.Select("id").Where("external_id = ?", id).Take(&rec).Error; err != nil {
		return translate(err, domain.KindProduct, id)
	}
	if err := db.Model(&businessAppRecord{}).
		Where("product_id = ?", rec.ID).
		Update("product_id", nil).Error; err != nil {
		return fmt.Errorf("unlink business apps: %w", err)
	}
	if err := db.Delete(&productRecord{}, rec.ID).Error; err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r productRecord) toDomain() domain.Product {
	p := domain.Product{
		ID:          r.ExternalID,
		Name:        r.Name,
		SupplierKey: r.SupplierID,
		Description: r.Description,
		Version:     r.Version,
		ProductURL:  r.ProductURL,
		SupportURL:  r.SupportURL,
		LicenseType: r.LicenseType,
		CreatedAt:   utc(r.CreatedAt),
		UpdatedAt:   utc(r.UpdatedAt),
	}
	if r.Supplier != nil {
		p.SupplierID = r.Supplier.ExternalID
	}
	return p
}

func productFromDomain(p *domain.Product) productRecord {
	return productRecord{
		ExternalID:  p.ID,
		Name:        p.Name,
		SupplierID:  p.SupplierKey,
		Description: p.Description,
		Version:     p.Version,
		ProductURL:  p.ProductURL,
		SupportURL:  p.SupportURL,
		LicenseType: p.LicenseType,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
