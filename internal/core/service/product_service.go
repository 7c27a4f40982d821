package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

type ProductService struct {
	catalog
	repo     ports.ProductRepository
	resolver ports.IdentifierResolver
}

func NewProductService(repo ports.ProductRepository, resolver ports.IdentifierResolver, tx ports.Transactor, activity ports.ActivityLog, log zerolog.Logger, opts ...Option) *ProductService {
	return &ProductService{catalog: newCatalog(tx, activity, log, opts), repo: repo, resolver: resolver}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	return out, err
}

func (s *ProductService) ListBySupplier(ctx context.Context, supplierID string) ([]domain.Product, error) {
	out := []domain.Product{}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ref, ok, err := resolveOptional(ctx, s.resolver, domain.KindSupplier, supplierID)
		if err != nil || !ok {
			return err
		}
		out, err = s.repo.ListBySupplier(ctx, ref.Key)
		return err
	})
	return out, err
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	key, err := lookupID(domain.KindProduct, id)
	if err != nil {
		return nil, err
	}
	var out *domain.Product
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		out, err = s.repo.FindByID(ctx, key)
		return err
	})
	return out, err
}

// Create requires a resolvable supplier; an unknown supplier_id is
// domain.ErrNotFound.
func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if err := firstErr(required("name", in.Name), required("supplier_id", in.SupplierID)); err != nil {
		return nil, err
	}

	now := s.timestamp()
	product := &domain.Product{
		ID:          domain.NewUUID(),
		Name:        in.Name,
		Description: in.Description,
		Version:     in.Version,
		ProductURL:  in.ProductURL,
		SupportURL:  in.SupportURL,
		LicenseType: in.LicenseType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.Product
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		supplier, err := s.resolver.Resolve(ctx, domain.KindSupplier, in.SupplierID)
		if err != nil {
			return err
		}
		product.SupplierKey = supplier.Key
		product.SupplierID = supplier.ID

		created, err = s.repo.Create(ctx, product)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("supplier_id", created.SupplierID).Msg("product created")
	s.record(ctx, domain.KindProduct, created.ID, domain.ActionCreated, created.Name)
	return created, nil
}

// Update moves the product to another supplier only when supplier_id
// resolves; otherwise the current supplier is kept.
func (s *ProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	key, err := lookupID(domain.KindProduct, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := required("name", *in.Name); err != nil {
			return nil, err
		}
	}

	var updated *domain.Product
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, key)
		if err != nil {
			return err
		}

		if in.SupplierID != nil {
			ref, ok, err := resolveOptional(ctx, s.resolver, domain.KindSupplier, *in.SupplierID)
			if err != nil {
				return err
			}
			if ok {
				current.SupplierKey = ref.Key
				current.SupplierID = ref.ID
			} else {
				s.log.Debug().Str("product_id", key).Str("supplier_id", *in.SupplierID).Msg("unresolvable supplier ignored")
			}
		}
		setString(&current.Name, in.Name)
		setString(&current.Description, in.Description)
		setString(&current.Version, in.Version)
		setString(&current.ProductURL, in.ProductURL)
		setString(&current.SupportURL, in.SupportURL)
		setString(&current.LicenseType, in.LicenseType)
		current.UpdatedAt = s.timestamp()

		updated, err = s.repo.Update(ctx, current)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.KindProduct, updated.ID, domain.ActionUpdated, updated.Name)
	return updated, nil
}

// Delete removes the product; business apps linked to it lose the link.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	key, err := lookupID(domain.KindProduct, id)
	if err != nil {
		return err
	}
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, key)
	}); err != nil {
		return err
	}

	s.log.Info().Str("product_id", key).Msg("product deleted")
	s.record(ctx, domain.KindProduct, key, domain.ActionDeleted, "")
	return nil
}
