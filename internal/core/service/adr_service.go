package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

type ADRService struct {
	catalog
	repo ports.ADRRepository
}

func NewADRService(repo ports.ADRRepository, tx ports.Transactor, activity ports.ActivityLog, log zerolog.Logger, opts ...Option) *ADRService {
	return &ADRService{catalog: newCatalog(tx, activity, log, opts), repo: repo}
}

func (s *ADRService) List(ctx context.Context) ([]domain.ADR, error) {
	var out []domain.ADR
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	return out, err
}

func (s *ADRService) Get(ctx context.Context, id string) (*domain.ADR, error) {
	key, err := lookupID(domain.KindADR, id)
	if err != nil {
		return nil, err
	}
	var out *domain.ADR
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		out, err = s.repo.FindByID(ctx, key)
		return err
	})
	return out, err
}

// Create derives the ID from today's date and the title. A second ADR with
// the same title on the same day is domain.ErrConflict.
func (s *ADRService) Create(ctx context.Context, in ports.CreateADRInput) (*domain.ADR, error) {
	if err := firstErr(
		required("title", in.Title),
		required("context", in.Context),
		required("consequences", in.Consequences),
	); err != nil {
		return nil, err
	}

	status := domain.ADRProposed
	if in.Status != "" {
		parsed, err := domain.ParseADRStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}
	if err := validateOptions(in.Options); err != nil {
		return nil, err
	}

	now := s.timestamp()
	adr := &domain.ADR{
		ID:                 domain.NewADRID(now, in.Title),
		Title:              in.Title,
		Context:            in.Context,
		Options:            normaliseOptions(in.Options),
		RecommendedOption:  in.RecommendedOption,
		StrategicSelection: in.StrategicSelection,
		InterimSelection:   in.InterimSelection,
		DecisionRationale:  in.DecisionRationale,
		Consequences:       in.Consequences,
		Status:             status,
		Author:             in.Author,
		Stakeholders:       orEmpty(in.Stakeholders),
		RelatedADRs:        orEmpty(in.RelatedADRs),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	var created *domain.ADR
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, adr)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("adr_id", created.ID).Str("status", string(created.Status)).Msg("adr created")
	s.record(ctx, domain.KindADR, created.ID, domain.ActionCreated, created.Title)
	return created, nil
}

// Update applies the non-nil fields. The ID stays fixed even when the title
// changes.
func (s *ADRService) Update(ctx context.Context, id string, in ports.UpdateADRInput) (*domain.ADR, error) {
	key, err := lookupID(domain.KindADR, id)
	if err != nil {
		return nil, err
	}
	if err := firstErr(
		requiredIfSet("title", in.Title),
		requiredIfSet("context", in.Context),
		requiredIfSet("consequences", in.Consequences),
	); err != nil {
		return nil, err
	}
	var status *domain.ADRStatus
	if in.Status != nil {
		parsed, err := domain.ParseADRStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}
	if in.Options != nil {
		if err := validateOptions(*in.Options); err != nil {
			return nil, err
		}
	}

	var updated *domain.ADR
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, key)
		if err != nil {
			return err
		}

		setString(&current.Title, in.Title)
		setString(&current.Context, in.Context)
		setString(&current.RecommendedOption, in.RecommendedOption)
		setString(&current.StrategicSelection, in.StrategicSelection)
		setString(&current.InterimSelection, in.InterimSelection)
		setString(&current.DecisionRationale, in.DecisionRationale)
		setString(&current.Consequences, in.Consequences)
		setString(&current.Author, in.Author)
		setList(&current.Stakeholders, in.Stakeholders)
		setList(&current.RelatedADRs, in.RelatedADRs)
		if in.Options != nil {
			current.Options = normaliseOptions(*in.Options)
		}
		if status != nil {
			current.Status = *status
		}
		current.UpdatedAt = s.timestamp()

		updated, err = s.repo.Update(ctx, current)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, domain.KindADR, updated.ID, domain.ActionUpdated, updated.Title)
	return updated, nil
}

// Delete removes the ADR; tech debt linked to it is kept and unlinked.
func (s *ADRService) Delete(ctx context.Context, id string) error {
	key, err := lookupID(domain.KindADR, id)
	if err != nil {
		return err
	}
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, key)
	}); err != nil {
		return err
	}

	s.log.Info().Str("adr_id", key).Msg("adr deleted")
	s.record(ctx, domain.KindADR, key, domain.ActionDeleted, "")
	return nil
}

func validateOptions(opts []domain.DecisionOption) error {
	for _, o := range opts {
		if err := required("options.name", o.Name); err != nil {
			return err
		}
	}
	return nil
}

// normaliseOptions copies opts so pros and cons are never null.
func normaliseOptions(opts []domain.DecisionOption) []domain.DecisionOption {
	out := make([]domain.DecisionOption, len(opts))
	for i, o := range opts {
		o.Pros = orEmpty(o.Pros)
		o.Cons = orEmpty(o.Cons)
		out[i] = o
	}
	return out
}
