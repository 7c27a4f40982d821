package domain

import "time"

// TechDebt is a tracked technical-debt item, optionally linked to the ADR
// that caused or addresses it.
type TechDebt struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Owner       string       `json:"owner"`
	Priority    DebtPriority `json:"priority"`
	Status      DebtStatus   `json:"status"`

	LinkedADRID  string `json:"linked_adr_id,omitempty"`
	LinkedADRKey *int64 `json:"-"`

	Impact               string `json:"impact,omitempty"`
	EffortEstimate       string `json:"effort_estimate,omitempty"`
	CreatedDate          Date   `json:"created_date"`
	TargetResolutionDate *Date  `json:"target_resolution_date,omitempty"`
	ActualResolutionDate *Date  `json:"actual_resolution_date,omitempty"`

	AffectedSystems []string  `json:"affected_systems"`
	Tags            []string  `json:"tags"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
