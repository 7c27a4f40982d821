package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

var userColumns = []string{
	"email", "name", "password_hash", "role", "status", "auth_provider", "profile_image_url", "last_login", "updated_at",
}

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var recs []userRecord
	if err := conn(ctx, r.db).Order("email ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]domain.User, len(recs))
	for i := range recs {
		out[i] = recs[i].toDomain()
	}
	return out, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, "external_id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) findOne(ctx context.Context, cond string, arg string) (*domain.User, error) {
	var rec userRecord
	if err := conn(ctx, r.db).Where(cond, arg).Take(&rec).Error; err != nil {
		return nil, translate(err, domain.KindUser, arg)
	}
	u := rec.toDomain()
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	rec := userFromDomain(u)
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return nil, conflictOr(err, domain.KindUser, "email", u.Email)
	}
	return r.FindByID(ctx, u.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	rec := userFromDomain(u)
	res := conn(ctx, r.db).Model(&userRecord{}).
		Where("external_id = ?", u.ID).
		Select(userColumns).
		Updates(&rec)
	if res.Error != nil {
		return nil, conflictOr(res.Error, domain.KindUser, "email", u.Email)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound(domain.KindUser, u.ID)
	}
	return r.FindByID(ctx, u.ID)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res := conn(ctx, r.db).Where("external_id = ?", id).Delete(&userRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound(domain.KindUser, id)
	}
	return nil
}

func (r userRecord) toDomain() domain.User {
	return domain.User{
		ID:              r.ExternalID,
		Email:           r.Email,
		Name:            r.Name,
		PasswordHash:    r.PasswordHash,
		Role:            domain.UserRole(r.Role),
		Status:          domain.UserStatus(r.Status),
		AuthProvider:    r.AuthProvider,
		ProfileImageURL: r.ProfileImageURL,
		LastLogin:       utcPtr(r.LastLogin),
		CreatedAt:       utc(r.CreatedAt),
		UpdatedAt:       utc(r.UpdatedAt),
	}
}

func userFromDomain(u *domain.User) userRecord {
	return userRecord{
		ExternalID:      u.ID,
		Email:           u.Email,
		Name:            u.Name,
		PasswordHash:    u.PasswordHash,
		Role:            string(u.Role),
		Status:          string(u.Status),
		AuthProvider:    u.AuthProvider,
		ProfileImageURL: u.ProfileImageURL,
		LastLogin:       u.LastLogin,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
