package ports

import (
	"context"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

type CreateUserInput struct {
	Email           string
	Name            string
	Password        string
	Role            string
	Status          string
	AuthProvider    string
	ProfileImageURL string
}

type UpdateUserInput struct {
	Email           *string
	Name            *string
	Password        *string
	Role            *string
	Status          *string
	ProfileImageURL *string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// Authenticate checks email and password against the stored hash and
	// stamps last_login on success. Any mismatch is domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// AuthService issues bearer tokens for authenticated users.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
