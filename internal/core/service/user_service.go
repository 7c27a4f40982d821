package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

// UserService manages accounts and verifies local credentials. Account
// changes are not written to the activity log.
type UserService struct {
	catalog
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository, tx ports.Transactor, log zerolog.Logger, opts ...Option) *UserService {
	return &UserService{catalog: newCatalog(tx, nil, log, opts), repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	return out, err
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	key, err := lookupID(domain.KindUser, id)
	if err != nil {
		return nil, err
	}
	var out *domain.User
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		out, err = s.repo.FindByID(ctx, key)
		return err
	})
	return out, err
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var out *domain.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.FindByEmail(ctx, normaliseEmail(email))
		return err
	})
	return out, err
}

// Create hashes the password with bcrypt. Role defaults to user, status to
// active and the auth provider to local.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	email := normaliseEmail(in.Email)
	if err := firstErr(required("email", email), required("name", in.Name), required("password", in.Password)); err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if in.Role != "" {
		parsed, err := domain.ParseUserRole(in.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}
	status := domain.UserActive
	if in.Status != "" {
		parsed, err := domain.ParseUserStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}
	provider := in.AuthProvider
	if provider == "" {
		provider = domain.AuthProviderLocal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	user := &domain.User{
		ID:              domain.NewUUID(),
		Email:           email,
		Name:            in.Name,
		PasswordHash:    string(hash),
		Role:            role,
		Status:          status,
		AuthProvider:    provider,
		ProfileImageURL: in.ProfileImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var created *domain.User
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureEmailFree(ctx, email); err != nil {
			return err
		}
		var err error
		created, err = s.repo.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

// Update applies the non-nil fields and rehashes a new password.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	key, err := lookupID(domain.KindUser, id)
	if err != nil {
		return nil, err
	}
	var email *string
	if in.Email != nil {
		e := normaliseEmail(*in.Email)
		email = &e
	}
	if err := firstErr(
		requiredIfSet("email", email),
		requiredIfSet("name", in.Name),
		requiredIfSet("password", in.Password),
	); err != nil {
		return nil, err
	}

	var role *domain.UserRole
	if in.Role != nil {
		parsed, err := domain.ParseUserRole(*in.Role)
		if err != nil {
			return nil, err
		}
		role = &parsed
	}
	var status *domain.UserStatus
	if in.Status != nil {
		parsed, err := domain.ParseUserStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}
	var hash string
	if in.Password != nil {
		b, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(b)
	}

	var updated *domain.User
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.FindByID(ctx, key)
		if err != nil {
			return err
		}
		if email != nil && *email != current.Email {
			if err := s.ensureEmailFree(ctx, *email); err != nil {
				return err
			}
		}

		setString(&current.Email, email)
		setString(&current.Name, in.Name)
		setString(&current.ProfileImageURL, in.ProfileImageURL)
		if role != nil {
			current.Role = *role
		}
		if status != nil {
			current.Status = *status
		}
		if hash != "" {
			current.PasswordHash = hash
		}
		current.UpdatedAt = s.timestamp()

		updated, err = s.repo.Update(ctx, current)
		return err
	})
	return updated, err
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	key, err := lookupID(domain.KindUser, id)
	if err != nil {
		return err
	}
	if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, key)
	}); err != nil {
		return err
	}
	s.log.Info().Str("user_id", key).Msg("user deleted")
	return nil
}

// Authenticate verifies email and password. Unknown emails, wrong passwords
// and accounts that are not active all report domain.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = normaliseEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	var user *domain.User
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		found, err := s.repo.FindByEmail(ctx, email)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidCredentials
		}
		if err != nil {
			return err
		}
		if found.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)) != nil {
			return domain.ErrInvalidCredentials
		}
		if found.Status != domain.UserActive {
			return domain.ErrInvalidCredentials
		}

		now := s.timestamp()
		found.LastLogin = &now
		found.UpdatedAt = now
		user, err = s.repo.Update(ctx, found)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.Conflict(domain.KindUser, "email", email)
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}

func normaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EnsureAdmin creates an active admin account for email unless one with that
// email already exists. It reports whether an account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password, name string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}
	_, err = s.Create(ctx, ports.CreateUserInput{
		Email:    email,
		Name:     name,
		Password: password,
		Role:     string(domain.RoleAdmin),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
