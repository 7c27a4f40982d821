package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

var supplierColumns = []string{
	"name", "description", "website", "contact_email", "contact_phone", "address", "updated_at",
}

// SupplierRepository implements ports.SupplierRepository.
type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	var recs []supplierRecord
	if err := conn(ctx, r.db).Order("name ASC").Order("id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	out := make([]domain.Supplier, len(recs))
	for i := range recs {
		out[i] = recs[i].toDomain()
	}
	return out, nil
}

func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*domain.Supplier, error) {
	var rec supplierRecord
	if err := conn(ctx, r.db).Where("external_id = ?", id).Take(&rec).Error; err != nil {
		return nil, translate(err, domain.KindSupplier, id)
	}
	s := rec.toDomain()
	return &s, nil
}

func (r *SupplierRepository) FindByName(ctx context.Context, name string) (*domain.Supplier, error) {
	var rec supplierRecord
	if err := conn(ctx, r.db).Where("name = ?", name).Take(&rec).Error; err != nil {
		return nil, translate(err, domain.KindSupplier, name)
	}
	s := rec.toDomain()
	return &s, nil
}

func (r *SupplierRepository) Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	rec := supplierFromDomain(s)
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return nil, conflictOr(err, domain.KindSupplier, "name", s.Name)
	}
	return r.FindByID(ctx, s.ID)
}

func (r *SupplierRepository) Update(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	rec := supplierFromDomain(s)
	res := conn(ctx, r.db).Model(&supplierRecord{}).
		Where("external_id = ?", s.ID).
		Select(supplierColumns).
		Updates(&rec)
	if res.Error != nil {
		return nil, conflictOr(res.Error, domain.KindSupplier, "name", s.Name)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound(domain.KindSupplier, s.ID)
	}
	return r.FindByID(ctx, s.ID)
}

// Delete clears business-app links to the supplier's products, deletes the
// products and then the supplier. The foreign keys cascade the same way.
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	db := conn(ctx, r.db)

	var rec supplierRecord
	if err := db.Select("id").Where("external_id = ?", id).Take(&rec).Error; err != nil {
		return translate(err, domain.KindSupplier, id)
	}

	products := db.Model(&productRecord{}).Select("id").Where("supplier_id = ?", rec.ID)
	if err := db.Model(&businessAppRecord{}).
		Where("product_id IN (?)", products).
		Update("product_id", nil).Error; err != nil {
		return fmt.Errorf("unlink business apps: %w", err)
	}
	if err := db.Where("supplier_id = ?", rec.ID).Delete(&productRecord{}).Error; err != nil {
		return fmt.Errorf("delete products: %w", err)
	}
	if err := db.Delete(&supplierRecord{}, rec.ID).Error; err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

func (r supplierRecord) toDomain() domain.Supplier {
	return domain.Supplier{
		ID:           r.ExternalID,
		Name:         r.Name,
		Description:  r.Description,
		Website:      r.Website,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Address:      r.Address,
		CreatedAt:    utc(r.CreatedAt),
		UpdatedAt:    utc(r.UpdatedAt),
	}
}

func supplierFromDomain(s *domain.Supplier) supplierRecord {
	return supplierRecord{
		ExternalID:   s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Website:      s.Website,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Address:      s.Address,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
