package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

type BusinessAppService struct {
	catalog
	repo     ports.BusinessAppRepository
	resolver ports.IdentifierResolver
}

func NewBusinessAppService(repo ports.BusinessAppRepository, resolver ports.IdentifierResolver, tx ports.Transactor, activity ports.ActivityLog, log zerolog.Logger, opts ...Option) *BusinessAppService {
	return &BusinessAppService{catalog: newCatalog(tx, activity, log, opts), repo: repo, resolver: resolver}
}

func (s *BusinessAppService) List(ctx context.Context) ([]domain.BusinessApp, error) {
	var out []domain.BusinessApp
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	return out, err
}

func (s *BusinessAppService) Get(ctx context.Context, id string) (*domain.BusinessApp, error) {
	key, err := lookupID(domain.KindBusinessApp, id)
	if err != nil {
		return nil, err
	}
	var out *domain.BusinessApp
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		out, err = s.repo.FindByID(ctx, key)
		return err
	})
	return out, err
}

// Create stores a new business app. Status defaults to active. A product_id
// that does not resolve is dropped and the app is stored unlinked.
func (s *BusinessAppService) Create(ctx context.Context, in ports.CreateBusinessAppInput) (*domain.BusinessApp, error) {
	if err := firstErr(
		required("name", in.Name),
		required("architectural_owner", in.ArchitecturalOwner),
	); err != nil {
		return nil, err
	}

	status := domain.AppActive
	if in.Status != "" {
		parsed, err := domain.ParseAppStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}
	resilience, err := domain.ParseResilienceCategory(in.ResilienceCategory)
	if err != nil {
		return nil, err
	}
	hosting, err := domain.ParseHostingType(in.HostingType)
	if err != nil {
		return nil, err
	}
	development, err := domain.ParseDevelopmentType(in.DevelopmentType)
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	app := &domain.BusinessApp{
		ID:                  domain.NewUUID(),
		Name:                in.Name,
		Description:         in.Description,
		ArchitecturalOwner:  in.ArchitecturalOwner,
		BusinessOwner:       in.BusinessOwner,
		ProductOwner:        in.ProductOwner,
		SystemOwner:         in.SystemOwner,
		Status:              status,
		ResilienceCategory:  resilience,
		HostingType:         hosting,
		CloudProvider:       in.CloudProvider,
		DevelopmentType:     development,
		GeographicLocations: orEmpty(in.GeographicLocations),
		Technologies:        orEmpty(in.Technologies),
		Dependencies:        orEmpty(in.Dependencies),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	var created *domain.BusinessApp
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if in.ProductID != "" {
			ref, ok, err := resolveOptional(ctx, s.resolver, domain.KindProduct, in.ProductID)
			if err != nil {
				return err
			}
			if ok {
				app.ProductKey = keyPtr(ref.Key)
				app.ProductID = ref.ID
			} else {
				s.log.Debug().Str("product_id", in.ProductID).Msg("unresolvable product dropped")
			}
		}
		var err error
		created, err = s.repo.Create(ctx, app)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("app_id", created.ID).Str("name", created.Name).Msg("business app created")
	s.record(ctx, domain.KindBusinessApp, created.ID, domain.ActionCreated, created.Name)
	return created, nil
}

// Update applies the non-nil fields. An empty product_id unlinks the
// product; an unresolvable one leaves the link as it was.
func (s *BusinessAppService) Update(ctx context.Context, id string, in ports.UpdateBusinessAppInput) (*domain.BusinessApp, error) {
	key, err := lookupID(domain.KindBusinessApp, id)
	if err != nil {
		return nil, err
	}
	if err := firstErr(
		requiredIfSet("name", in.Name),
		requiredIfSet("architectural_owner", in.ArchitecturalOwner),
	); err != nil {
		return nil, err
	}

	var updated *domain.BusinessApp
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, key)
		if err != nil {
			return err
		}
		if err := applyAppEnums(current, in); err != nil {
			return err
		}

		if in.ProductID != nil {
			if *in.ProductID == "" {
				current.ProductKey = nil
				current.ProductID = ""
			} else {
				ref, ok, err := resolveOptional(ctx, s.resolver, domain.KindProduct, *in.ProductID)
				if err != nil {
					return err
				}
				if ok {
					current.ProductKey = keyPtr(ref.Key)
					current.ProductID = ref.ID
				}
			}
		}

		setString(&current.Name, in.Name)
		setString(&current.Description, in.Description)
		setString(&current.ArchitecturalOwner, in.ArchitecturalOwner)
		setString(&current.BusinessOwner, in.BusinessOwner)
		setString(&current.ProductOwner, in.ProductOwner)
		setString(&current.SystemOwner, in.SystemOwner)
		setString(&current.CloudProvider, in.CloudProvider)
		setList(&current.GeographicLocations, in.GeographicLocations)
		setList(&current.Technologies, in.Technologies)
		setList(&current.Dependencies, in.Dependencies)
		current.UpdatedAt = s.timestamp()

		updated, err = s.repo.Update(ctx, current)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.KindBusinessApp, updated.ID, domain.ActionUpdated, updated.Name)
	return updated, nil
}

func (s *BusinessAppService) Delete(ctx context.Context, id string) error {
	key, err := lookupID(domain.KindBusinessApp, id)
	if err != nil {
		return err
	}
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, key)
	}); err != nil {
		return err
	}

	s.log.Info().Str("app_id", key).Msg("business app deleted")
	s.record(ctx, domain.KindBusinessApp, key, domain.ActionDeleted, "")
	return nil
}

func applyAppEnums(app *domain.BusinessApp, in ports.UpdateBusinessAppInput) error {
	if in.Status != nil {
		v, err := domain.ParseAppStatus(*in.Status)
		if err != nil {
			return err
		}
		app.Status = v
	}
	if in.ResilienceCategory != nil {
		v, err := domain.ParseResilienceCategory(*in.ResilienceCategory)
		if err != nil {
			return err
		}
		app.ResilienceCategory = v
	}
	if in.HostingType != nil {
		v, err := domain.ParseHostingType(*in.HostingType)
		if err != nil {
			return err
		}
		app.HostingType = v
	}
	if in.DevelopmentType != nil {
		v, err := domain.ParseDevelopmentType(*in.DevelopmentType)
		if err != nil {
			return err
		}
		app.DevelopmentType = v
	}
	return nil
}
