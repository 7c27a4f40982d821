package domain

import "time"

// DecisionOption is one alternative weighed by an ADR.
type DecisionOption struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Pros           []string `json:"pros"`
	Cons           []string `json:"cons"`
	CostEstimate   string   `json:"cost_estimate,omitempty"`
	EffortEstimate string   `json:"effort_estimate,omitempty"`
}

// ADR is an architecture decision record. Its ID is derived from the
// creation date and title and never changes.
type ADR struct {
	ID                 string           `json:"id"`
	Title              string           `json:"title"`
	Context            string           `json:"context"`
	Options            []DecisionOption `json:"options"`
	RecommendedOption  string           `json:"recommended_option,omitempty"`
	StrategicSelection string           `json:"strategic_selection,omitempty"`
	InterimSelection   string           `json:"interim_selection,omitempty"`
	DecisionRationale  string           `json:"decision_rationale,omitempty"`
	Consequences       string           `json:"consequences"`
	Status             ADRStatus        `json:"status"`
	Author             string           `json:"author,omitempty"`
	Stakeholders       []string         `json:"stakeholders"`
	RelatedADRs        []string         `json:"related_adrs"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}
