package domain

// Kind tags a catalog entity type.
type Kind string

const (
	KindSupplier    Kind = "supplier"
	KindProduct     Kind = "product"
	KindBusinessApp Kind = "business_app"
	KindADR         Kind = "adr"
	KindTechDebt    Kind = "tech_debt"
	KindUser        Kind = "user"
)

// UsesUUID reports whether external IDs of this kind are UUIDs. ADR and
// TechDebt use generated date-slug IDs instead.
func (k Kind) UsesUUID() bool {
	return k != KindADR && k != KindTechDebt
}

// Ref is a resolved reference: the storage key of a record together with its
// canonical external ID. Keys stay inside the service and storage layers.
type Ref struct {
	Key int64
	ID  string
}
