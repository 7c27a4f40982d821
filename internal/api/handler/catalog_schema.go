package handler

import "github.com/eadirect/ea-catalog/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Suppliers ---

type createSupplierRequest struct {
	Name         string `json:"name"          validate:"required,max=255"`
	Description  string `json:"description"`
	Website      string `json:"website"       validate:"omitempty,url"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
}

type updateSupplierRequest struct {
	Name         *string `json:"name"          validate:"omitempty,max=255"`
	Description  *string `json:"description"`
	Website      *string `json:"website"       validate:"omitempty,eq=|url"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,eq=|email"`
	ContactPhone *string `json:"contact_phone"`
	Address      *string `json:"address"`
}

// --- Products ---

type createProductRequest struct {
	Name        string `json:"name"         validate:"required,max=255"`
	SupplierID  string `json:"supplier_id"  validate:"required"`
	Description string `json:"description"`
	Version     string `json:"version"`
	ProductURL  string `json:"product_url"  validate:"omitempty,url"`
	SupportURL  string `json:"support_url"  validate:"omitempty,url"`
	LicenseType string `json:"license_type"`
}

type updateProductRequest struct {
	Name        *string `json:"name"         validate:"omitempty,max=255"`
	SupplierID  *string `json:"supplier_id"`
	Description *string `json:"description"`
	Version     *string `json:"version"`
	ProductURL  *string `json:"product_url"  validate:"omitempty,eq=|url"`
	SupportURL  *string `json:"support_url"  validate:"omitempty,eq=|url"`
	LicenseType *string `json:"license_type"`
}

// productResponse adds the owning supplier's name to the stored product.
type productResponse struct {
	domain.Product
	SupplierName string `json:"supplier_name,omitempty"`
}

// --- Business apps ---

type createBusinessAppRequest struct {
	Name                string   `json:"name"                 validate:"required,max=255"`
	Description         string   `json:"description"`
	ArchitecturalOwner  string   `json:"architectural_owner"  validate:"required"`
	BusinessOwner       string   `json:"business_owner"`
	ProductOwner        string   `json:"product_owner"`
	SystemOwner         string   `json:"system_owner"`
	Status              string   `json:"status"`
	ResilienceCategory  string   `json:"resilience_category"`
	HostingType         string   `json:"hosting_type"`
	CloudProvider       string   `json:"cloud_provider"`
	DevelopmentType     string   `json:"development_type"`
	GeographicLocations []string `json:"geographic_locations"`
	Technologies        []string `json:"technologies"`
	Dependencies        []string `json:"dependencies"`
	ProductID           string   `json:"product_id"`
}

type updateBusinessAppRequest struct {
	Name                *string   `json:"name"                 validate:"omitempty,max=255"`
	Description         *string   `json:"description"`
	ArchitecturalOwner  *string   `json:"architectural_owner"`
	BusinessOwner       *string   `json:"business_owner"`
	ProductOwner        *string   `json:"product_owner"`
	SystemOwner         *string   `json:"system_owner"`
	Status              *string   `json:"status"`
	ResilienceCategory  *string   `json:"resilience_category"`
	HostingType         *string   `json:"hosting_type"`
	CloudProvider       *string   `json:"cloud_provider"`
	DevelopmentType     *string   `json:"development_type"`
	GeographicLocations *[]string `json:"geographic_locations"`
	Technologies        *[]string `json:"technologies"`
	Dependencies        *[]string `json:"dependencies"`
	ProductID           *string   `json:"product_id"`
}

// businessAppResponse adds the linked product's name to the stored app.
type businessAppResponse struct {
	domain.BusinessApp
	ProductName string `json:"product_name,omitempty"`
}

// --- ADRs ---

type decisionOptionRequest struct {
	Name           string   `json:"name"            validate:"required"`
	Description    string   `json:"description"`
	Pros           []string `json:"pros"`
	Cons           []string `json:"cons"`
	CostEstimate   string   `json:"cost_estimate"`
	EffortEstimate string   `json:"effort_estimate"`
}

type createADRRequest struct {
	Title              string                  `json:"title"               validate:"required,max=255"`
	Context            string                  `json:"context"             validate:"required"`
	Options            []decisionOptionRequest `json:"options"             validate:"dive"`
	RecommendedOption  string                  `json:"recommended_option"`
	StrategicSelection string                  `json:"strategic_selection"`
	InterimSelection   string                  `json:"interim_selection"`
	DecisionRationale  string                  `json:"decision_rationale"`
	Consequences       string                  `json:"consequences"        validate:"required"`
	Status             string                  `json:"status"`
	Author             string                  `json:"author"`
	Stakeholders       []string                `json:"stakeholders"`
	RelatedADRs        []string                `json:"related_adrs"`
}

type updateADRRequest struct {
	Title              *string                  `json:"title"               validate:"omitempty,max=255"`
	Context            *string                  `json:"context"`
	Options            *[]decisionOptionRequest `json:"options"             validate:"omitempty,dive"`
	RecommendedOption  *string                  `json:"recommended_option"`
	StrategicSelection *string                  `json:"strategic_selection"`
	InterimSelection   *string                  `json:"interim_selection"`
	DecisionRationale  *string                  `json:"decision_rationale"`
	Consequences       *string                  `json:"consequences"`
	Status             *string                  `json:"status"`
	Author             *string                  `json:"author"`
	Stakeholders       *[]string                `json:"stakeholders"`
	RelatedADRs        *[]string                `json:"related_adrs"`
}

// --- Tech debt ---

type createTechDebtRequest struct {
	Title                string       `json:"title"                  validate:"required,max=255"`
	Description          string       `json:"description"            validate:"required"`
	Owner                string       `json:"owner"                  validate:"required"`
	Priority             string       `json:"priority"`
	Status               string       `json:"status"`
	LinkedADRID          string       `json:"linked_adr_id"`
	Impact               string       `json:"impact"`
	EffortEstimate       string       `json:"effort_estimate"`
	TargetResolutionDate *domain.Date `json:"target_resolution_date" swaggertype:"string" format:"date"`
	ActualResolutionDate *domain.Date `json:"actual_resolution_date" swaggertype:"string" format:"date"`
	AffectedSystems      []string     `json:"affected_systems"`
	Tags                 []string     `json:"tags"`
}

// optionalDate tells an absent date apart from an explicit null, which
// clears the stored value.
type optionalDate struct {
	set   bool
	value domain.Date
}

func (d *optionalDate) UnmarshalJSON(b []byte) error {
	d.set = true
	return d.value.UnmarshalJSON(b)
}

// input returns nil when the field was absent and a zero Date for null.
func (d optionalDate) input() *domain.Date {
	if !d.set {
		return nil
	}
	v := d.value
	return &v
}

type updateTechDebtRequest struct {
	Title                *string      `json:"title"                  validate:"omitempty,max=255"`
	Description          *string      `json:"description"`
	Owner                *string      `json:"owner"`
	Priority             *string      `json:"priority"`
	Status               *string      `json:"status"`
	LinkedADRID          *string      `json:"linked_adr_id"`
	Impact               *string      `json:"impact"`
	EffortEstimate       *string      `json:"effort_estimate"`
	TargetResolutionDate optionalDate `json:"target_resolution_date" swaggertype:"string" format:"date"`
	ActualResolutionDate optionalDate `json:"actual_resolution_date" swaggertype:"string" format:"date"`
	AffectedSystems      *[]string    `json:"affected_systems"`
	Tags                 *[]string    `json:"tags"`
}

// --- Users ---

type createUserRequest struct {
	Email           string `json:"email"             validate:"required,email"`
	Name            string `json:"name"              validate:"required"`
	Password        string `json:"password"          validate:"required,min=8"`
	Role            string `json:"role"`
	Status          string `json:"status"`
	ProfileImageURL string `json:"profile_image_url" validate:"omitempty,url"`
}

type updateUserRequest struct {
	Email           *string `json:"email"             validate:"omitempty,email"`
	Name            *string `json:"name"`
	Password        *string `json:"password"          validate:"omitempty,min=8"`
	Role            *string `json:"role"`
	Status          *string `json:"status"`
	ProfileImageURL *string `json:"profile_image_url" validate:"omitempty,eq=|url"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	User      *domain.User `json:"user"`
}

// --- Activity ---

type activityResponse struct {
	Data  []domain.Activity `json:"data"`
	Limit int               `json:"limit"`
}

// listResponse wraps collection results so the envelope can grow without
// breaking clients.
type listResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func newList[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Data: items, Total: len(items)}
}
