package postgres

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

var kindTables = map[domain.Kind]string{
	domain.KindSupplier:    "suppliers",
	domain.KindProduct:     "products",
	domain.KindBusinessApp: "business_apps",
	domain.KindADR:         "adrs",
	domain.KindTechDebt:    "tech_debts",
	domain.KindUser:        "users",
}

// Resolver implements ports.IdentifierResolver with one indexed lookup on
// the kind's external_id column.
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

func (r *Resolver) Resolve(ctx context.Context, kind domain.Kind, externalID string) (domain.Ref, error) {
	table, ok := kindTables[kind]
	if !ok {
		return domain.Ref{}, fmt.Errorf("resolve: unknown kind %q", kind)
	}

	id := strings.TrimSpace(externalID)
	if kind.UsesUUID() {
		canonical, ok := domain.CanonicalUUID(id)
		if !ok {
			return domain.Ref{}, domain.NotFound(kind, externalID)
		}
		id = canonical
	}

	var row struct {
		ID         int64
		ExternalID string
	}
	err := conn(ctx, r.db).Table(table).
		Select("id", "external_id").
		Where("external_id = ?", id).
		Take(&row).Error
	if err != nil {
		return domain.Ref{}, translate(err, kind, externalID)
	}
	return domain.Ref{Key: row.ID, ID: row.ExternalID}, nil
}
