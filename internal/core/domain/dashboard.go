package domain

import "time"

// Totals counts records per catalog kind.
type Totals struct {
	BusinessApps int64 `json:"business_apps"`
	ADRs         int64 `json:"adrs"`
	TechDebt     int64 `json:"tech_debt"`
	Suppliers    int64 `json:"suppliers"`
	Products     int64 `json:"products"`
}

// RecentItem is the summary of a recently created record. Name is set for
// business apps, Title for ADRs and tech debt, Priority for tech debt only.
type RecentItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Title     string    `json:"title,omitempty"`
	Priority  string    `json:"priority,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardStats is the cross-catalog read view.
type DashboardStats struct {
	Totals               Totals           `json:"totals"`
	BusinessAppsByStatus map[string]int64 `json:"business_apps_by_status"`
	ADRsByStatus         map[string]int64 `json:"adrs_by_status"`
	TechDebtByPriority   map[string]int64 `json:"tech_debt_by_priority"`
	TechDebtByStatus     map[string]int64 `json:"tech_debt_by_status"`
	RecentBusinessApps   []RecentItem     `json:"recent_business_apps"`
	RecentADRs           []RecentItem     `json:"recent_adrs"`
	RecentTechDebt       []RecentItem     `json:"recent_tech_debt"`
}
