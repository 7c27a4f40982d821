package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	slugMaxLen     = 50
	idDateLayout   = "20060102"
	techDebtPrefix = "debt-"
)

// Slug lower-cases title, replaces spaces with hyphens and keeps at most 50
// runes.
func Slug(title string) string {
	r := []rune(strings.ReplaceAll(strings.ToLower(title), " ", "-"))
	if len(r) > slugMaxLen {
		r = r[:slugMaxLen]
	}
	return string(r)
}

// NewADRID returns "<YYYYMMDD>-<slug>". Two ADRs with the same title created
// on the same UTC day get the same ID; the store rejects the second one.
func NewADRID(at time.Time, title string) string {
	return at.UTC().Format(idDateLayout) + "-" + Slug(title)
}

// NewTechDebtID returns "debt-<YYYYMMDD>-<slug>".
func NewTechDebtID(at time.Time, title string) string {
	return techDebtPrefix + NewADRID(at, title)
}

// NewUUID returns a random external ID for UUID-keyed kinds.
func NewUUID() string {
	return uuid.NewString()
}

// CanonicalUUID parses s and returns its canonical lower-case form.
func CanonicalUUID(s string) (string, bool) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return u.String(), true
}
