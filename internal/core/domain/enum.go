package domain

import (
	"fmt"
	"strings"
)

// AppStatus is the lifecycle state of a BusinessApp.
type AppStatus string

const (
	AppActive     AppStatus = "active"
	AppDeprecated AppStatus = "deprecated"
	AppPlanned    AppStatus = "planned"
	AppRetired    AppStatus = "retired"
)

type ResilienceCategory string

const (
	ResilienceBronze   ResilienceCategory = "bronze"
	ResilienceSilver   ResilienceCategory = "silver"
	ResilienceGold     ResilienceCategory = "gold"
	ResiliencePlatinum ResilienceCategory = "platinum"
)

type HostingType string

const (
	HostingCloud          HostingType = "cloud"
	HostingOnPremise      HostingType = "on-premise"
	HostingHybrid         HostingType = "hybrid"
	HostingManagedHosting HostingType = "managed-hosting"
)

type DevelopmentType string

const (
	DevelopmentSaaS       DevelopmentType = "saas"
	DevelopmentCOTS       DevelopmentType = "cots"
	DevelopmentCustom     DevelopmentType = "custom"
	DevelopmentOpenSource DevelopmentType = "open-source"
	DevelopmentLowCode    DevelopmentType = "low-code"
	DevelopmentInternal   DevelopmentType = "internal"
)

type ADRStatus string

const (
	ADRProposed   ADRStatus = "proposed"
	ADRAccepted   ADRStatus = "accepted"
	ADRDeprecated ADRStatus = "deprecated"
	ADRSuperseded ADRStatus = "superseded"
)

type DebtPriority string

const (
	PriorityLow      DebtPriority = "low"
	PriorityMedium   DebtPriority = "medium"
	PriorityHigh     DebtPriority = "high"
	PriorityCritical DebtPriority = "critical"
)

// Rank orders priorities from low (1) to critical (4); unknown values rank 0.
func (p DebtPriority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type DebtStatus string

const (
	DebtIdentified DebtStatus = "identified"
	DebtAccepted   DebtStatus = "accepted"
	DebtInProgress DebtStatus = "in-progress"
	DebtResolved   DebtStatus = "resolved"
	DebtWontFix    DebtStatus = "wont-fix"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

var (
	appStatuses      = []AppStatus{AppActive, AppDeprecated, AppPlanned, AppRetired}
	resilienceLevels = []ResilienceCategory{ResilienceBronze, ResilienceSilver, ResilienceGold, ResiliencePlatinum}
	hostingTypes     = []HostingType{HostingCloud, HostingOnPremise, HostingHybrid, HostingManagedHosting}
	developmentTypes = []DevelopmentType{DevelopmentSaaS, DevelopmentCOTS, DevelopmentCustom, DevelopmentOpenSource, DevelopmentLowCode, DevelopmentInternal}
	adrStatuses      = []ADRStatus{ADRProposed, ADRAccepted, ADRDeprecated, ADRSuperseded}
	debtPriorities   = []DebtPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
	debtStatuses     = []DebtStatus{DebtIdentified, DebtAccepted, DebtInProgress, DebtResolved, DebtWontFix}
	userRoles        = []UserRole{RoleUser, RoleAdmin}
	userStatuses     = []UserStatus{UserActive, UserInactive, UserSuspended}
)

// Canonical folds an enum spelling to its stored form: trimmed, lower-case,
// with underscores read as hyphens ("IN_PROGRESS" -> "in-progress").
func Canonical(raw string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-")
}

func parseEnum[T ~string](field, raw string, allowed []T) (T, error) {
	v := T(Canonical(raw))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", Invalid(field, fmt.Sprintf("must be one of [%s], got %q", strings.Join(names, " "), raw))
}

// parseOptionalEnum treats a blank value as "unset".
func parseOptionalEnum[T ~string](field, raw string, allowed []T) (T, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	return parseEnum(field, raw, allowed)
}

func ParseAppStatus(s string) (AppStatus, error) { return parseEnum("status", s, appStatuses) }

func ParseResilienceCategory(s string) (ResilienceCategory, error) {
	return parseOptionalEnum("resilience_category", s, resilienceLevels)
}

func ParseHostingType(s string) (HostingType, error) {
	return parseOptionalEnum("hosting_type", s, hostingTypes)
}

func ParseDevelopmentType(s string) (DevelopmentType, error) {
	return parseOptionalEnum("development_type", s, developmentTypes)
}

func ParseADRStatus(s string) (ADRStatus, error) { return parseEnum("status", s, adrStatuses) }

func ParseDebtPriority(s string) (DebtPriority, error) {
	return parseEnum("priority", s, debtPriorities)
}

func ParseDebtStatus(s string) (DebtStatus, error) { return parseEnum("status", s, debtStatuses) }

func ParseUserRole(s string) (UserRole, error) { return parseEnum("role", s, userRoles) }

func ParseUserStatus(s string) (UserStatus, error) { return parseEnum("status", s, userStatuses) }
