package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

type SupplierService struct {
	catalog
	repo ports.SupplierRepository
}

func NewSupplierService(repo ports.SupplierRepository, tx ports.Transactor, activity ports.ActivityLog, log zerolog.Logger, opts ...Option) *SupplierService {
	return &SupplierService{catalog: newCatalog(tx, activity, log, opts), repo: repo}
}

func (s *SupplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	var out []domain.Supplier
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	return out, err
}

func (s *SupplierService) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	key, err := lookupID(domain.KindSupplier, id)
	if err != nil {
		return nil, err
	}
	var out *domain.Supplier
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		out, err = s.repo.FindByID(ctx, key)
		return err
	})
	return out, err
}

func (s *SupplierService) GetByName(ctx context.Context, name string) (*domain.Supplier, error) {
	var out *domain.Supplier
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.FindByName(ctx, name)
		return err
	})
	return out, err
}

// Create rejects a name already in use with domain.ErrConflict. The unique
// index on name backs the check against concurrent creators.
func (s *SupplierService) Create(ctx context.Context, in ports.CreateSupplierInput) (*domain.Supplier, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}

	now := s.timestamp()
	supplier := &domain.Supplier{
		ID:           domain.NewUUID(),
		Name:         in.Name,
		Description:  in.Description,
		Website:      in.Website,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var created *domain.Supplier
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureNameFree(ctx, in.Name); err != nil {
			return err
		}
		var err error
		created, err = s.repo.Create(ctx, supplier)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("supplier_id", created.ID).Str("name", created.Name).Msg("supplier created")
	s.record(ctx, domain.KindSupplier, created.ID, domain.ActionCreated, created.Name)
	return created, nil
}

func (s *SupplierService) Update(ctx context.Context, id string, in ports.UpdateSupplierInput) (*domain.Supplier, error) {
	key, err := lookupID(domain.KindSupplier, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := required("name", *in.Name); err != nil {
			return nil, err
		}
	}

	var updated *domain.Supplier
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, key)
		if err != nil {
			return err
		}
		if in.Name != nil && *in.Name != current.Name {
			if err := s.ensureNameFree(ctx, *in.Name); err != nil {
				return err
			}
		}

		setString(&current.Name, in.Name)
		setString(&current.Description, in.Description)
		setString(&current.Website, in.Website)
		setString(&current.ContactEmail, in.ContactEmail)
		setString(&current.ContactPhone, in.ContactPhone)
		setString(&current.Address, in.Address)
		current.UpdatedAt = s.timestamp()

		updated, err = s.repo.Update(ctx, current)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.KindSupplier, updated.ID, domain.ActionUpdated, updated.Name)
	return updated, nil
}

// Delete removes the supplier together with its products.
func (s *SupplierService) Delete(ctx context.Context, id string) error {
	key, err := lookupID(domain.KindSupplier, id)
	if err != nil {
		return err
	}
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, key)
	}); err != nil {
		return err
	}

	s.log.Info().Str("supplier_id", key).Msg("supplier deleted")
	s.record(ctx, domain.KindSupplier, key, domain.ActionDeleted, "")
	return nil
}

func (s *SupplierService) ensureNameFree(ctx context.Context, name string) error {
	_, err := s.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		return domain.Conflict(domain.KindSupplier, "name", name)
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}
