package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

type TechDebtService struct {
	catalog
	repo     ports.TechDebtRepository
	resolver ports.IdentifierResolver
}

func NewTechDebtService(repo ports.TechDebtRepository, resolver ports.IdentifierResolver, tx ports.Transactor, activity ports.ActivityLog, log zerolog.Logger, opts ...Option) *TechDebtService {
	return &TechDebtService{catalog: newCatalog(tx, activity, log, opts), repo: repo, resolver: resolver}
}

func (s *TechDebtService) List(ctx context.Context) ([]domain.TechDebt, error) {
	var out []domain.TechDebt
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	return out, err
}

func (s *TechDebtService) ListByADR(ctx context.Context, adrID string) ([]domain.TechDebt, error) {
	out := []domain.TechDebt{}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ref, ok, err := resolveOptional(ctx, s.resolver, domain.KindADR, adrID)
		if err != nil || !ok {
			return err
		}
		out, err = s.repo.ListByADR(ctx, ref.Key)
		return err
	})
	return out, err
}

func (s *TechDebtService) Get(ctx context.Context, id string) (*domain.TechDebt, error) {
	key, err := lookupID(domain.KindTechDebt, id)
	if err != nil {
		return nil, err
	}
	var out *domain.TechDebt
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		out, err = s.repo.FindByID(ctx, key)
		return err
	})
	return out, err
}

// Create defaults priority to medium and status to identified, and stamps
// created_date with today's date. A linked_adr_id that does not resolve is
// dropped.
func (s *TechDebtService) Create(ctx context.Context, in ports.CreateTechDebtInput) (*domain.TechDebt, error) {
	if err := firstErr(
		required("title", in.Title),
		required("description", in.Description),
		required("owner", in.Owner),
	); err != nil {
		return nil, err
	}

	priority := domain.PriorityMedium
	if in.Priority != "" {
		parsed, err := domain.ParseDebtPriority(in.Priority)
		if err != nil {
			return nil, err
		}
		priority = parsed
	}
	status := domain.DebtIdentified
	if in.Status != "" {
		parsed, err := domain.ParseDebtStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	now := s.timestamp()
	debt := &domain.TechDebt{
		ID:                   domain.NewTechDebtID(now, in.Title),
		Title:                in.Title,
		Description:          in.Description,
		Owner:                in.Owner,
		Priority:             priority,
		Status:               status,
		Impact:               in.Impact,
		EffortEstimate:       in.EffortEstimate,
		CreatedDate:          domain.DateOf(now),
		TargetResolutionDate: nonZeroDate(in.TargetResolutionDate),
		ActualResolutionDate: nonZeroDate(in.ActualResolutionDate),
		AffectedSystems:      orEmpty(in.AffectedSystems),
		Tags:                 orEmpty(in.Tags),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	var created *domain.TechDebt
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if in.LinkedADRID != "" {
			ref, ok, err := resolveOptional(ctx, s.resolver, domain.KindADR, in.LinkedADRID)
			if err != nil {
				return err
			}
			if ok {
				debt.LinkedADRKey = keyPtr(ref.Key)
				debt.LinkedADRID = ref.ID
			} else {
				s.log.Debug().Str("adr_id", in.LinkedADRID).Msg("unresolvable adr dropped")
			}
		}
		var err error
		created, err = s.repo.Create(ctx, debt)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("debt_id", created.ID).Str("priority", string(created.Priority)).Msg("tech debt created")
	s.record(ctx, domain.KindTechDebt, created.ID, domain.ActionCreated, created.Title)
	return created, nil
}

// Update applies the non-nil fields. An empty linked_adr_id unlinks the ADR;
// an unresolvable one leaves the link as it was.
func (s *TechDebtService) Update(ctx context.Context, id string, in ports.UpdateTechDebtInput) (*domain.TechDebt, error) {
	key, err := lookupID(domain.KindTechDebt, id)
	if err != nil {
		return nil, err
	}
	if err := firstErr(
		requiredIfSet("title", in.Title),
		requiredIfSet("description", in.Description),
		requiredIfSet("owner", in.Owner),
	); err != nil {
		return nil, err
	}
	var priority *domain.DebtPriority
	if in.Priority != nil {
		parsed, err := domain.ParseDebtPriority(*in.Priority)
		if err != nil {
			return nil, err
		}
		priority = &parsed
	}
	var status *domain.DebtStatus
	if in.Status != nil {
		parsed, err := domain.ParseDebtStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}

	var updated *domain.TechDebt
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, key)
		if err != nil {
			return err
		}

		if in.LinkedADRID != nil {
			if *in.LinkedADRID == "" {
				current.LinkedADRKey = nil
				current.LinkedADRID = ""
			} else {
				ref, ok, err := resolveOptional(ctx, s.resolver, domain.KindADR, *in.LinkedADRID)
				if err != nil {
					return err
				}
				if ok {
					current.LinkedADRKey = keyPtr(ref.Key)
					current.LinkedADRID = ref.ID
				}
			}
		}

		setString(&current.Title, in.Title)
		setString(&current.Description, in.Description)
		setString(&current.Owner, in.Owner)
		setString(&current.Impact, in.Impact)
		setString(&current.EffortEstimate, in.EffortEstimate)
		setList(&current.AffectedSystems, in.AffectedSystems)
		setList(&current.Tags, in.Tags)
		if priority != nil {
			current.Priority = *priority
		}
		if status != nil {
			current.Status = *status
		}
		setDate(&current.TargetResolutionDate, in.TargetResolutionDate)
		setDate(&current.ActualResolutionDate, in.ActualResolutionDate)
		current.UpdatedAt = s.timestamp()

		updated, err = s.repo.Update(ctx, current)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.KindTechDebt, updated.ID, domain.ActionUpdated, updated.Title)
	return updated, nil
}

func (s *TechDebtService) Delete(ctx context.Context, id string) error {
	key, err := lookupID(domain.KindTechDebt, id)
	if err != nil {
		return err
	}
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, key)
	}); err != nil {
		return err
	}

	s.log.Info().Str("debt_id", key).Msg("tech debt deleted")
	s.record(ctx, domain.KindTechDebt, key, domain.ActionDeleted, "")
	return nil
}

// setDate applies an optional date patch. A zero Date clears the field.
func setDate(dst **domain.Date, src *domain.Date) {
	if src == nil {
		return
	}
	*dst = nonZeroDate(src)
}

func nonZeroDate(d *domain.Date) *domain.Date {
	if d == nil || d.IsZero() {
		return nil
	}
	v := *d
	return &v
}
