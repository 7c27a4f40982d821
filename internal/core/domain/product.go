package domain

import "time"

// Product belongs to exactly one Supplier.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SupplierID  string `json:"supplier_id"`
	SupplierKey int64  `json:"-"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	ProductURL  string `json:"product_url,omitempty"`
	SupportURL  string `json:"support_url,omitempty"`
	LicenseType string `json:"license_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
