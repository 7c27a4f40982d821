package ports

import (
	"context"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

// Repositories return domain.ErrNotFound for absent records and
// domain.ErrConflict for unique-key violations. Create and Update return the
// stored record as read back from the store.

type SupplierRepository interface {
	List(ctx context.Context) ([]domain.Supplier, error)
	FindByID(ctx context.Context, id string) (*domain.Supplier, error)
	FindByName(ctx context.Context, name string) (*domain.Supplier, error)
	Create(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error)
	Update(ctx context.Context, s *domain.Supplier) (*domain.Supplier, error)
	// Delete removes the supplier and its products, and clears business-app
	// links to those products.
	Delete(ctx context.Context, id string) error
}

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListBySupplier(ctx context.Context, supplierKey int64) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// Delete removes the product and clears business-app links to it.
	Delete(ctx context.Context, id string) error
}

type BusinessAppRepository interface {
	List(ctx context.Context) ([]domain.BusinessApp, error)
	FindByID(ctx context.Context, id string) (*domain.BusinessApp, error)
	Create(ctx context.Context, a *domain.BusinessApp) (*domain.BusinessApp, error)
	Update(ctx context.Context, a *domain.BusinessApp) (*domain.BusinessApp, error)
	Delete(ctx context.Context, id string) error
}

type ADRRepository interface {
	List(ctx context.Context) ([]domain.ADR, error)
	FindByID(ctx context.Context, id string) (*domain.ADR, error)
	Create(ctx context.Context, a *domain.ADR) (*domain.ADR, error)
	Update(ctx context.Context, a *domain.ADR) (*domain.ADR, error)
	// Delete removes the ADR and clears tech-debt links to it.
	Delete(ctx context.Context, id string) error
}

type TechDebtRepository interface {
	// List orders by priority (critical first) then newest first.
	List(ctx context.Context) ([]domain.TechDebt, error)
	ListByADR(ctx context.Context, adrKey int64) ([]domain.TechDebt, error)
	FindByID(ctx context.Context, id string) (*domain.TechDebt, error)
	Create(ctx context.Context, d *domain.TechDebt) (*domain.TechDebt, error)
	Update(ctx context.Context, d *domain.TechDebt) (*domain.TechDebt, error)
	Delete(ctx context.Context, id string) error
}

// DashboardRepository computes aggregate read views over the catalog.
type DashboardRepository interface {
	Totals(ctx context.Context) (domain.Totals, error)
	// CountBy groups records of kind by column and counts each group.
	CountBy(ctx context.Context, kind domain.Kind, column string) (map[string]int64, error)
	Recent(ctx context.Context, kind domain.Kind, limit int) ([]domain.RecentItem, error)
}
