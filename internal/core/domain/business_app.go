package domain

import "time"

// BusinessApp is a cataloged application, optionally backed by a Product.
type BusinessApp struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	ArchitecturalOwner string `json:"architectural_owner"`
	BusinessOwner      string `json:"business_owner,omitempty"`
	ProductOwner       string `json:"product_owner,omitempty"`
	SystemOwner        string `json:"system_owner,omitempty"`

	Status             AppStatus          `json:"status"`
	ResilienceCategory ResilienceCategory `json:"resilience_category,omitempty"`
	HostingType        HostingType        `json:"hosting_type,omitempty"`
	CloudProvider      string             `json:"cloud_provider,omitempty"`
	DevelopmentType    DevelopmentType    `json:"development_type,omitempty"`

	GeographicLocations []string `json:"geographic_locations"`
	Technologies        []string `json:"technologies"`
	Dependencies        []string `json:"dependencies"`

	// ProductID is empty when the app has no product link.
	ProductID  string `json:"product_id,omitempty"`
	ProductKey *int64 `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
