package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
	"github.com/eadirect/ea-catalog/internal/core/service"
	"github.com/eadirect/ea-catalog/internal/infrastructure/db/dbtest"
	"github.com/eadirect/ea-catalog/internal/infrastructure/db/postgres"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

type catalogFixture struct {
	clock     *clock
	suppliers *service.SupplierService
	products  *service.ProductService
	apps      *service.BusinessAppService
	adrs      *service.ADRService
	debts     *service.TechDebtService
	dashboard *service.DashboardService
}

func newCatalogFixture(t *testing.T, start time.Time) *catalogFixture {
	t.Helper()
	db := dbtest.New(t)
	tx := postgres.NewTransactor(db)
	resolver := postgres.NewResolver(db)
	log := zerolog.Nop()
	c := &clock{t: start}
	opt := service.WithClock(c.now)

	return &catalogFixture{
		clock:     c,
		suppliers: service.NewSupplierService(postgres.NewSupplierRepository(db), tx, nil, log, opt),
		products:  service.NewProductService(postgres.NewProductRepository(db), resolver, tx, nil, log, opt),
		apps:      service.NewBusinessAppService(postgres.NewBusinessAppRepository(db), resolver, tx, nil, log, opt),
		adrs:      service.NewADRService(postgres.NewADRRepository(db), tx, nil, log, opt),
		debts:     service.NewTechDebtService(postgres.NewTechDebtRepository(db), resolver, tx, nil, log, opt),
		dashboard: service.NewDashboardService(postgres.NewDashboardRepository(db), tx),
	}
}

func ptr[T any](v T) *T { return &v }

func TestScenario_SupplierDeleteCascadesProductsButKeepsApps(t *testing.T) {
	f := newCatalogFixture(t, time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()

	acme, err := f.suppliers.Create(ctx, ports.CreateSupplierInput{Name: "Acme"})
	require.NoError(t, err)
	widget, err := f.products.Create(ctx, ports.CreateProductInput{Name: "Widget", SupplierID: acme.ID})
	require.NoError(t, err)
	assert.Equal(t, acme.ID, widget.SupplierID)

	app, err := f.apps.Create(ctx, ports.CreateBusinessAppInput{Name: "App1", ArchitecturalOwner: "EA Team", ProductID: widget.ID})
	require.NoError(t, err)

	got, err := f.apps.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, widget.ID, got.ProductID)

	require.NoError(t, f.suppliers.Delete(ctx, acme.ID))

	_, err = f.products.Get(ctx, widget.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	survivor, err := f.apps.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Empty(t, survivor.ProductID)
	assert.Nil(t, survivor.ProductKey)
}

func TestScenario_ADRAndLinkedTechDebt(t *testing.T) {
	f := newCatalogFixture(t, time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC))
	ctx := context.Background()

	adr, err := f.adrs.Create(ctx, ports.CreateADRInput{Title: "Adopt X", Context: "We need X.", Consequences: "We depend on X."})
	require.NoError(t, err)
	assert.Equal(t, "20240601-adopt-x", adr.ID)
	assert.Equal(t, domain.ADRProposed, adr.Status)

	debt, err := f.debts.Create(ctx, ports.CreateTechDebtInput{
		Title:       "Legacy Y",
		Description: "Y predates X.",
		Owner:       "Platform",
		LinkedADRID: adr.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "debt-20240601-legacy-y", debt.ID)
	assert.Equal(t, domain.PriorityMedium, debt.Priority)
	assert.Equal(t, domain.DebtIdentified, debt.Status)
	assert.Equal(t, "2024-06-01", debt.CreatedDate.String())

	_, err = f.debts.Create(ctx, ports.CreateTechDebtInput{Title: "Unlinked", Description: "d", Owner: "o"})
	require.NoError(t, err)

	linked, err := f.debts.ListByADR(ctx, adr.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, debt.ID, linked[0].ID)

	none, err := f.debts.ListByADR(ctx, "20990101-missing")
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, f.adrs.Delete(ctx, adr.ID))
	orphan, err := f.debts.Get(ctx, debt.ID)
	require.NoError(t, err)
	assert.Empty(t, orphan.LinkedADRID)
}

func TestScenario_ADRSameTitleSameDayConflicts(t *testing.T) {
	f := newCatalogFixture(t, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	in := ports.CreateADRInput{Title: "Adopt X", Context: "c", Consequences: "q"}
	_, err := f.adrs.Create(ctx, in)
	require.NoError(t, err)

	f.clock.advance(time.Hour)
	_, err = f.adrs.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrConflict)

	f.clock.advance(24 * time.Hour)
	next, err := f.adrs.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "20240602-adopt-x", next.ID)
}

func TestScenario_EmptyUpdateOnlyTouchesUpdatedAt(t *testing.T) {
	f := newCatalogFixture(t, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	created, err := f.apps.Create(ctx, ports.CreateBusinessAppInput{
		Name:               "App1",
		ArchitecturalOwner: "EA Team",
		Technologies:       []string{"go", "postgres"},
		HostingType:        "on_premise",
	})
	require.NoError(t, err)

	f.clock.advance(time.Minute)
	updated, err := f.apps.Update(ctx, created.ID, ports.UpdateBusinessAppInput{})
	require.NoError(t, err)

	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	updated.UpdatedAt = created.UpdatedAt
	assert.Equal(t, created, updated)
}

func TestScenario_CreateGetRoundTrip(t *testing.T) {
	f := newCatalogFixture(t, time.Date(2024, 6, 1, 8, 0, 0, 987654321, time.UTC))
	ctx := context.Background()

	target := domain.DateOf(time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC))
	debt, err := f.debts.Create(ctx, ports.CreateTechDebtInput{
		Title:                "Old TLS",
		Description:          "TLS 1.0 still enabled",
		Owner:                "Security",
		Priority:             "HIGH",
		Status:               "in_progress",
		TargetResolutionDate: &target,
		Tags:                 []string{"security"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, debt.Priority)
	assert.Equal(t, domain.DebtInProgress, debt.Status)

	got, err := f.debts.Get(ctx, debt.ID)
	require.NoError(t, err)
	assert.Equal(t, debt, got)

	adr, err := f.adrs.Create(ctx, ports.CreateADRInput{
		Title:        "Use Postgres",
		Context:      "Need a relational store",
		Consequences: "Run a database",
		Options: []domain.DecisionOption{
			{Name: "Postgres", Pros: []string{"mature"}},
			{Name: "MySQL"},
		},
		Stakeholders: []string{"EA"},
	})
	require.NoError(t, err)
	gotADR, err := f.adrs.Get(ctx, adr.ID)
	require.NoError(t, err)
	assert.Equal(t, adr, gotADR)
	assert.Equal(t, []string{}, gotADR.Options[1].Cons)
}

func TestScenario_EnumNormalisation(t *testing.T) {
	f := newCatalogFixture(t, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, status := range []string{"ACTIVE", "Active", "active"} {
		app, err := f.apps.Create(ctx, ports.CreateBusinessAppInput{Name: "App " + status, ArchitecturalOwner: "EA", Status: status})
		require.NoError(t, err)
		assert.Equal(t, domain.AppActive, app.Status)
	}

	_, err := f.apps.Create(ctx, ports.CreateBusinessAppInput{Name: "Bad", ArchitecturalOwner: "EA", Status: "sunset"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScenario_DeleteMissingIsNotFound(t *testing.T) {
	f := newCatalogFixture(t, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	s, err := f.suppliers.Create(ctx, ports.CreateSupplierInput{Name: "Acme"})
	require.NoError(t, err)
	require.NoError(t, f.suppliers.Delete(ctx, s.ID))

	assert.ErrorIs(t, f.suppliers.Delete(ctx, s.ID), domain.ErrNotFound)
	assert.ErrorIs(t, f.apps.Delete(ctx, domain.NewUUID()), domain.ErrNotFound)
	assert.ErrorIs(t, f.adrs.Delete(ctx, "20240101-never"), domain.ErrNotFound)
	assert.ErrorIs(t, f.debts.Delete(ctx, "debt-20240101-never"), domain.ErrNotFound)
}

func TestScenario_ProductRequiresKnownSupplier(t *testing.T) {
	f := newCatalogFixture(t, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := f.products.Create(ctx, ports.CreateProductInput{Name: "Widget", SupplierID: domain.NewUUID()})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	acme, err := f.suppliers.Create(ctx, ports.CreateSupplierInput{Name: "Acme"})
	require.NoError(t, err)
	widget, err := f.products.Create(ctx, ports.CreateProductInput{Name: "Widget", SupplierID: acme.ID})
	require.NoError(t, err)

	moved, err := f.products.Update(ctx, widget.ID, ports.UpdateProductInput{SupplierID: ptr(domain.NewUUID())})
	require.NoError(t, err)
	assert.Equal(t, acme.ID, moved.SupplierID)

	listed, err := f.products.ListBySupplier(ctx, acme.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, widget.ID, listed[0].ID)
}

func TestScenario_AppProductLinkClearedByEmptyID(t *testing.T) {
	f := newCatalogFixture(t, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	acme, _ := f.suppliers.Create(ctx, ports.CreateSupplierInput{Name: "Acme"})
	widget, _ := f.products.Create(ctx, ports.CreateProductInput{Name: "Widget", SupplierID: acme.ID})

	dropped, err := f.apps.Create(ctx, ports.CreateBusinessAppInput{Name: "App0", ArchitecturalOwner: "EA", ProductID: domain.NewUUID()})
	require.NoError(t, err)
	assert.Empty(t, dropped.ProductID)

	app, err := f.apps.Create(ctx, ports.CreateBusinessAppInput{Name: "App1", ArchitecturalOwner: "EA", ProductID: widget.ID})
	require.NoError(t, err)

	kept, err := f.apps.Update(ctx, app.ID, ports.UpdateBusinessAppInput{ProductID: ptr("not-a-uuid")})
	require.NoError(t, err)
	assert.Equal(t, widget.ID, kept.ProductID)

	cleared, err := f.apps.Update(ctx, app.ID, ports.UpdateBusinessAppInput{ProductID: ptr("")})
	require.NoError(t, err)
	assert.Empty(t, cleared.ProductID)

	require.NoError(t, f.products.Delete(ctx, widget.ID))
}

func TestScenario_TechDebtOrderedByPriority(t *testing.T) {
	f := newCatalogFixture(t, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for _, p := range []string{"low", "critical", "medium", "high"} {
		_, err := f.debts.Create(ctx, ports.CreateTechDebtInput{Title: "Debt " + p, Description: "d", Owner: "o", Priority: p})
		require.NoError(t, err)
		f.clock.advance(time.Second)
	}

	list, err := f.debts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	got := make([]domain.DebtPriority, len(list))
	for i, d := range list {
		got[i] = d.Priority
	}
	assert.Equal(t, []domain.DebtPriority{domain.PriorityCritical, domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow}, got)
}

func TestScenario_DashboardCounts(t *testing.T) {
	f := newCatalogFixture(t, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for i, status := range []string{"active", "active", "deprecated"} {
		_, err := f.apps.Create(ctx, ports.CreateBusinessAppInput{Name: "App" + string(rune('A'+i)), ArchitecturalOwner: "EA", Status: status})
		require.NoError(t, err)
		f.clock.advance(time.Second)
	}

	stats, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"active": 2, "deprecated": 1}, stats.BusinessAppsByStatus)
	assert.Equal(t, int64(3), stats.Totals.BusinessApps)
	require.Len(t, stats.RecentBusinessApps, 3)
	assert.Equal(t, "AppC", stats.RecentBusinessApps[0].Name)
	assert.Empty(t, stats.ADRsByStatus)
}
