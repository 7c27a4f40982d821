package postgres

import (
	"time"

	"gorm.io/datatypes"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

// Records carry a numeric primary key that never leaves this package except
// as a foreign-key value on domain types. Timestamps are set by the services,
// so GORM's auto-timestamps are off.

type supplierRecord struct {
	ID           int64  `gorm:"primaryKey"`
	ExternalID   string `gorm:"column:external_id;size:36;not null;uniqueIndex"`
	Name         string `gorm:"size:255;not null;uniqueIndex"`
	Description  string
	Website      string `gorm:"size:500"`
	ContactEmail string `gorm:"size:255"`
	ContactPhone string `gorm:"size:50"`
	Address      string
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (supplierRecord) TableName() string { return "suppliers" }

type productRecord struct {
	ID          int64           `gorm:"primaryKey"`
	ExternalID  string          `gorm:"column:external_id;size:36;not null;uniqueIndex"`
	Name        string          `gorm:"size:255;not null;index"`
	SupplierID  int64           `gorm:"column:supplier_id;not null;index"`
	Supplier    *supplierRecord `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
	Description string
	Version     string    `gorm:"size:100"`
	ProductURL  string    `gorm:"column:product_url;size:500"`
	SupportURL  string    `gorm:"column:support_url;size:500"`
	LicenseType string    `gorm:"size:100"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (productRecord) TableName() string { return "products" }

type businessAppRecord struct {
	ID                  int64  `gorm:"primaryKey"`
	ExternalID          string `gorm:"column:external_id;size:36;not null;uniqueIndex"`
	Name                string `gorm:"size:255;not null;index"`
	Description         string
	ArchitecturalOwner  string                      `gorm:"size:255;not null"`
	BusinessOwner       string                      `gorm:"size:255"`
	ProductOwner        string                      `gorm:"size:255"`
	SystemOwner         string                      `gorm:"size:255"`
	Status              string                      `gorm:"size:20;not null;index"`
	ResilienceCategory  string                      `gorm:"size:20"`
	HostingType         string                      `gorm:"size:20"`
	CloudProvider       string                      `gorm:"size:100"`
	DevelopmentType     string                      `gorm:"size:20"`
	GeographicLocations datatypes.JSONSlice[string] `gorm:"column:geographic_locations"`
	Technologies        datatypes.JSONSlice[string]
	Dependencies        datatypes.JSONSlice[string]
	ProductID           *int64         `gorm:"column:product_id;index"`
	Product             *productRecord `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	CreatedAt           time.Time      `gorm:"not null;autoCreateTime:false;index"`
	UpdatedAt           time.Time      `gorm:"not null;autoUpdateTime:false"`
}

func (businessAppRecord) TableName() string { return "business_apps" }

type adrRecord struct {
	ID                 int64                                      `gorm:"primaryKey"`
	ExternalID         string                                     `gorm:"column:external_id;size:100;not null;uniqueIndex"`
	Title              string                                     `gorm:"size:255;not null"`
	Context            string                                     `gorm:"not null"`
	Options            datatypes.JSONSlice[domain.DecisionOption] `gorm:"column:options"`
	RecommendedOption  string                                     `gorm:"size:255"`
	StrategicSelection string                                     `gorm:"size:255"`
	InterimSelection   string                                     `gorm:"size:255"`
	DecisionRationale  string
	Consequences       string                      `gorm:"not null"`
	Status             string                      `gorm:"size:20;not null;index"`
	Author             string                      `gorm:"size:255"`
	Stakeholders       datatypes.JSONSlice[string] `gorm:"column:stakeholders"`
	RelatedADRs        datatypes.JSONSlice[string] `gorm:"column:related_adrs"`
	CreatedAt          time.Time                   `gorm:"not null;autoCreateTime:false;index"`
	UpdatedAt          time.Time                   `gorm:"not null;autoUpdateTime:false"`
}

func (adrRecord) TableName() string { return "adrs" }

type techDebtRecord struct {
	ID                   int64      `gorm:"primaryKey"`
	ExternalID           string     `gorm:"column:external_id;size:100;not null;uniqueIndex"`
	Title                string     `gorm:"size:255;not null"`
	Description          string     `gorm:"not null"`
	Owner                string     `gorm:"size:255;not null"`
	Priority             string     `gorm:"size:20;not null;index"`
	Status               string     `gorm:"size:20;not null;index"`
	LinkedADRID          *int64     `gorm:"column:linked_adr_id;index"`
	LinkedADR            *adrRecord `gorm:"foreignKey:LinkedADRID;constraint:OnDelete:SET NULL"`
	Impact               string
	EffortEstimate       string                      `gorm:"size:100"`
	CreatedDate          datatypes.Date              `gorm:"column:created_date;not null"`
	TargetResolutionDate *datatypes.Date             `gorm:"column:target_resolution_date"`
	ActualResolutionDate *datatypes.Date             `gorm:"column:actual_resolution_date"`
	AffectedSystems      datatypes.JSONSlice[string] `gorm:"column:affected_systems"`
	Tags                 datatypes.JSONSlice[string] `gorm:"column:tags"`
	CreatedAt            time.Time                   `gorm:"not null;autoCreateTime:false;index"`
	UpdatedAt            time.Time                   `gorm:"not null;autoUpdateTime:false"`
}

func (techDebtRecord) TableName() string { return "tech_debts" }

type userRecord struct {
	ID              int64      `gorm:"primaryKey"`
	ExternalID      string     `gorm:"column:external_id;size:36;not null;uniqueIndex"`
	Email           string     `gorm:"size:255;not null;uniqueIndex"`
	Name            string     `gorm:"size:255;not null"`
	PasswordHash    string     `gorm:"size:255;not null"`
	Role            string     `gorm:"size:20;not null"`
	Status          string     `gorm:"size:20;not null"`
	AuthProvider    string     `gorm:"size:50;not null"`
	ProfileImageURL string     `gorm:"column:profile_image_url;size:500"`
	LastLogin       *time.Time `gorm:"column:last_login"`
	CreatedAt       time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt       time.Time  `gorm:"not null;autoUpdateTime:false"`
}

func (userRecord) TableName() string { return "users" }

func models() []any {
	return []any{
		&supplierRecord{},
		&productRecord{},
		&businessAppRecord{},
		&adrRecord{},
		&techDebtRecord{},
		&userRecord{},
	}
}

// stringList returns a non-nil copy so empty lists serialise as [] rather than null.
func stringList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func optionList(in []domain.DecisionOption) []domain.DecisionOption {
	out := make([]domain.DecisionOption, len(in))
	for i, o := range in {
		o.Pros = stringList(o.Pros)
		o.Cons = stringList(o.Cons)
		out[i] = o
	}
	return out
}

func toDate(d datatypes.Date) domain.Date {
	return domain.DateOf(time.Time(d))
}

func toOptionalDate(d *datatypes.Date) *domain.Date {
	if d == nil {
		return nil
	}
	v := toDate(*d)
	return &v
}

func fromOptionalDate(d *domain.Date) *datatypes.Date {
	if d == nil || d.IsZero() {
		return nil
	}
	v := datatypes.Date(d.Time)
	return &v
}

func utc(t time.Time) time.Time {
	return t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
