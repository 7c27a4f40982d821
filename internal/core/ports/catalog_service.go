package ports

import (
	"context"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

// Update inputs are partial: a nil field is left untouched. Enum fields take
// any letter case and "_" for "-". Reference fields take the referenced
// record's external ID; an empty string clears an optional link.

type CreateSupplierInput struct {
	Name         string
	Description  string
	Website      string
	ContactEmail string
	ContactPhone string
	Address      string
}

type UpdateSupplierInput struct {
	Name         *string
	Description  *string
	Website      *string
	ContactEmail *string
	ContactPhone *string
	Address      *string
}

type SupplierService interface {
	List(ctx context.Context) ([]domain.Supplier, error)
	Get(ctx context.Context, id string) (*domain.Supplier, error)
	GetByName(ctx context.Context, name string) (*domain.Supplier, error)
	Create(ctx context.Context, in CreateSupplierInput) (*domain.Supplier, error)
	Update(ctx context.Context, id string, in UpdateSupplierInput) (*domain.Supplier, error)
	Delete(ctx context.Context, id string) error
}

type CreateProductInput struct {
	Name        string
	SupplierID  string
	Description string
	Version     string
	ProductURL  string
	SupportURL  string
	LicenseType string
}

type UpdateProductInput struct {
	Name        *string
	SupplierID  *string
	Description *string
	Version     *string
	ProductURL  *string
	SupportURL  *string
	LicenseType *string
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	// ListBySupplier returns an empty list when the supplier does not resolve.
	ListBySupplier(ctx context.Context, supplierID string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type CreateBusinessAppInput struct {
	Name                string
	Description         string
	ArchitecturalOwner  string
	BusinessOwner       string
	ProductOwner        string
	SystemOwner         string
	Status              string
	ResilienceCategory  string
	HostingType         string
	CloudProvider       string
	DevelopmentType     string
	GeographicLocations []string
	Technologies        []string
	Dependencies        []string
	ProductID           string
}

type UpdateBusinessAppInput struct {
	Name                *string
	Description         *string
	ArchitecturalOwner  *string
	BusinessOwner       *string
	ProductOwner        *string
	SystemOwner         *string
	Status              *string
	ResilienceCategory  *string
	HostingType         *string
	CloudProvider       *string
	DevelopmentType     *string
	GeographicLocations *[]string
	Technologies        *[]string
	Dependencies        *[]string
	ProductID           *string
}

type BusinessAppService interface {
	List(ctx context.Context) ([]domain.BusinessApp, error)
	Get(ctx context.Context, id string) (*domain.BusinessApp, error)
	Create(ctx context.Context, in CreateBusinessAppInput) (*domain.BusinessApp, error)
	Update(ctx context.Context, id string, in UpdateBusinessAppInput) (*domain.BusinessApp, error)
	Delete(ctx context.Context, id string) error
}

type CreateADRInput struct {
	Title              string
	Context            string
	Options            []domain.DecisionOption
	RecommendedOption  string
	StrategicSelection string
	InterimSelection   string
	DecisionRationale  string
	Consequences       string
	Status             string
	Author             string
	Stakeholders       []string
	RelatedADRs        []string
}

type UpdateADRInput struct {
	Title              *string
	Context            *string
	Options            *[]domain.DecisionOption
	RecommendedOption  *string
	StrategicSelection *string
	InterimSelection   *string
	DecisionRationale  *string
	Consequences       *string
	Status             *string
	Author             *string
	Stakeholders       *[]string
	RelatedADRs        *[]string
}

type ADRService interface {
	List(ctx context.Context) ([]domain.ADR, error)
	Get(ctx context.Context, id string) (*domain.ADR, error)
	Create(ctx context.Context, in CreateADRInput) (*domain.ADR, error)
	Update(ctx context.Context, id string, in UpdateADRInput) (*domain.ADR, error)
	Delete(ctx context.Context, id string) error
}

type CreateTechDebtInput struct {
	Title                string
	Description          string
	Owner                string
	Priority             string
	Status               string
	LinkedADRID          string
	Impact               string
	EffortEstimate       string
	TargetResolutionDate *domain.Date
	ActualResolutionDate *domain.Date
	AffectedSystems      []string
	Tags                 []string
}

type UpdateTechDebtInput struct {
	Title                *string
	Description          *string
	Owner                *string
	Priority             *string
	Status               *string
	LinkedADRID          *string
	Impact               *string
	EffortEstimate       *string
	// A non-nil zero Date clears the stored date.
	TargetResolutionDate *domain.Date
	ActualResolutionDate *domain.Date
	AffectedSystems      *[]string
	Tags                 *[]string
}

type TechDebtService interface {
	List(ctx context.Context) ([]domain.TechDebt, error)
	// ListByADR returns an empty list when the ADR does not resolve.
	ListByADR(ctx context.Context, adrID string) ([]domain.TechDebt, error)
	Get(ctx context.Context, id string) (*domain.TechDebt, error)
	Create(ctx context.Context, in CreateTechDebtInput) (*domain.TechDebt, error)
	Update(ctx context.Context, id string, in UpdateTechDebtInput) (*domain.TechDebt, error)
	Delete(ctx context.Context, id string) error
}

type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}
