package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestSupplierHandler_Create(t *testing.T) {
	e := newTestEcho()
	svc := &stubSupplierService{}
	h := NewSupplierHandler(svc)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/suppliers", `{"name":"Acme","website":"https://acme.example"}`), rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.created == nil || svc.created.Name != "Acme" || svc.created.Website != "https://acme.example" {
		t.Fatalf("unexpected service input: %+v", svc.created)
	}
	if got := decode[domain.Supplier](t, rec); got.ID != "s-new" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestSupplierHandler_Create_Validation(t *testing.T) {
	cases := map[string]string{
		"missing name":  `{"description":"no name"}`,
		"bad email":     `{"name":"Acme","contact_email":"nope"}`,
		"bad website":   `{"name":"Acme","website":"not a url"}`,
		"name too long": `{"name":"` + strings.Repeat("a", 256) + `"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			e := newTestEcho()
			svc := &stubSupplierService{}
			c := e.NewContext(jsonRequest(http.MethodPost, "/v1/suppliers", body), httptest.NewRecorder())

			err := NewSupplierHandler(svc).Create(c)
			if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", code)
			}
			if svc.created != nil {
				t.Fatalf("service should not be called")
			}
		})
	}
}

func TestSupplierHandler_Update_PartialFields(t *testing.T) {
	e := newTestEcho()
	svc := &stubSupplierService{}

	c := e.NewContext(jsonRequest(http.MethodPut, "/v1/suppliers/x", `{"website":""}`), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("x")

	if err := NewSupplierHandler(svc).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.updated.Name != nil {
		t.Fatalf("absent name must stay nil")
	}
	if svc.updated.Website == nil || *svc.updated.Website != "" {
		t.Fatalf("explicit empty website must be passed through")
	}
}

func TestCatalogHandlers_Update_EmptyClearsOptionalLinks(t *testing.T) {
	e := newTestEcho()

	suppliers := &stubSupplierService{}
	c := e.NewContext(jsonRequest(http.MethodPut, "/v1/suppliers/x", `{"contact_email":"","website":""}`), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("x")
	if err := NewSupplierHandler(suppliers).Update(c); err != nil {
		t.Fatalf("supplier update error: %v", err)
	}
	if suppliers.updated.ContactEmail == nil || *suppliers.updated.ContactEmail != "" {
		t.Fatalf("explicit empty contact_email must be passed through")
	}

	products := &stubProductService{products: []domain.Product{{ID: "p1"}}}
	c = e.NewContext(jsonRequest(http.MethodPut, "/v1/products/p1", `{"product_url":"","support_url":""}`), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := NewProductHandler(products, suppliers).Update(c); err != nil {
		t.Fatalf("product update error: %v", err)
	}

	users := &stubUserService{users: map[string]*domain.User{"u1": {ID: "u1"}}}
	c = e.NewContext(jsonRequest(http.MethodPut, "/v1/users/u1", `{"profile_image_url":""}`), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := NewUserHandler(users).Update(c); err != nil {
		t.Fatalf("user update error: %v", err)
	}
}

func TestCatalogHandlers_Update_MalformedOptionalLinksRejected(t *testing.T) {
	e := newTestEcho()
	cases := map[string]string{
		"website":       `{"website":"not a url"}`,
		"contact_email": `{"contact_email":"nobody"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c := e.NewContext(jsonRequest(http.MethodPut, "/v1/suppliers/x", body), httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues("x")
			err := NewSupplierHandler(&stubSupplierService{}).Update(c)
			if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", code)
			}
			if !strings.Contains(err.Error(), name+" must be a valid") {
				t.Fatalf("unexpected message: %v", err)
			}
		})
	}
}

func TestSupplierHandler_Get_PropagatesDomainError(t *testing.T) {
	e := newTestEcho()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/suppliers/missing", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := NewSupplierHandler(&stubSupplierService{}).Get(c)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSupplierHandler_Delete(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/v1/suppliers/s1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := NewSupplierHandler(&stubSupplierService{}).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestProductHandler_AddsSupplierName(t *testing.T) {
	suppliers := &stubSupplierService{suppliers: []domain.Supplier{{ID: "s1", Name: "Acme"}}}
	products := &stubProductService{products: []domain.Product{
		{ID: "p1", Name: "Widget", SupplierID: "s1"},
		{ID: "p2", Name: "Orphan", SupplierID: "gone"},
	}}
	h := NewProductHandler(products, suppliers)
	e := newTestEcho()

	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/products", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	list := decode[listResponse[productResponse]](t, rec)
	if list.Total != 2 || list.Data[0].SupplierName != "Acme" || list.Data[1].SupplierName != "" {
		t.Fatalf("unexpected list: %+v", list)
	}

	rec = httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/products/p1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	one := decode[map[string]any](t, rec)
	if one["supplier_name"] != "Acme" || one["supplier_id"] != "s1" || one["name"] != "Widget" {
		t.Fatalf("unexpected body: %+v", one)
	}
}

func TestProductHandler_ListBySupplier_Empty(t *testing.T) {
	h := NewProductHandler(&stubProductService{}, &stubSupplierService{})
	e := newTestEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/suppliers/unknown/products", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("unknown")

	if err := h.ListBySupplier(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := decode[map[string]any](t, rec); body["total"] != float64(0) {
		t.Fatalf("expected empty list, got %+v", body)
	}
}

func TestBusinessAppHandler_AddsProductName(t *testing.T) {
	products := &stubProductService{products: []domain.Product{{ID: "p1", Name: "Widget"}}}
	apps := &stubBusinessAppService{apps: []domain.BusinessApp{
		{ID: "a1", Name: "App1", ProductID: "p1"},
		{ID: "a2", Name: "App2"},
	}}
	h := NewBusinessAppHandler(apps, products)
	e := newTestEcho()

	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/business-apps", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	list := decode[listResponse[businessAppResponse]](t, rec)
	if list.Data[0].ProductName != "Widget" || list.Data[1].ProductName != "" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestBusinessAppHandler_Update_ClearsProduct(t *testing.T) {
	apps := &stubBusinessAppService{apps: []domain.BusinessApp{{ID: "a1", Name: "App1"}}}
	h := NewBusinessAppHandler(apps, &stubProductService{})
	e := newTestEcho()

	c := e.NewContext(jsonRequest(http.MethodPut, "/v1/business-apps/a1", `{"product_id":"","technologies":["go"]}`), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("a1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if apps.updated.ProductID == nil || *apps.updated.ProductID != "" {
		t.Fatalf("expected explicit empty product_id")
	}
	if apps.updated.Technologies == nil || len(*apps.updated.Technologies) != 1 {
		t.Fatalf("expected technologies to be set")
	}
	if apps.updated.Dependencies != nil {
		t.Fatalf("absent dependencies must stay nil")
	}
}

func TestTechDebtHandler_Create_ParsesDates(t *testing.T) {
	svc := &stubTechDebtService{}
	e := newTestEcho()

	rec := httptest.NewRecorder()
	body := `{"title":"Legacy auth","description":"d","owner":"o","priority":"HIGH","target_resolution_date":"2024-09-30"}`
	if err := NewTechDebtHandler(svc).Create(e.NewContext(jsonRequest(http.MethodPost, "/v1/tech-debt", body), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.created.Priority != "HIGH" {
		t.Fatalf("priority should reach the service untouched, got %q", svc.created.Priority)
	}
	if svc.created.TargetResolutionDate == nil || svc.created.TargetResolutionDate.String() != "2024-09-30" {
		t.Fatalf("unexpected target date: %v", svc.created.TargetResolutionDate)
	}
	if got := decode[map[string]any](t, rec); got["target_resolution_date"] != "2024-09-30" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestTechDebtHandler_Create_BadDate(t *testing.T) {
	e := newTestEcho()
	body := `{"title":"t","description":"d","owner":"o","target_resolution_date":"30/09/2024"}`
	err := NewTechDebtHandler(&stubTechDebtService{}).Create(e.NewContext(jsonRequest(http.MethodPost, "/v1/tech-debt", body), httptest.NewRecorder()))
	if code := httpCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestTechDebtHandler_Update_NullDateClears(t *testing.T) {
	svc := &stubTechDebtService{}
	e := newTestEcho()

	body := `{"target_resolution_date":null,"status":"resolved"}`
	c := e.NewContext(jsonRequest(http.MethodPut, "/v1/tech-debt/d1", body), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("d1")
	if err := NewTechDebtHandler(svc).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.updated.TargetResolutionDate == nil || !svc.updated.TargetResolutionDate.IsZero() {
		t.Fatalf("null date must reach the service as a zero date, got %v", svc.updated.TargetResolutionDate)
	}
	if svc.updated.ActualResolutionDate != nil {
		t.Fatalf("absent date must stay nil")
	}

	c = e.NewContext(jsonRequest(http.MethodPut, "/v1/tech-debt/d1", `{"actual_resolution_date":"2024-10-01"}`), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("d1")
	if err := NewTechDebtHandler(svc).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if d := svc.updated.ActualResolutionDate; d == nil || d.String() != "2024-10-01" {
		t.Fatalf("unexpected actual date: %v", d)
	}
}

func TestTechDebtHandler_ListByADR(t *testing.T) {
	svc := &stubTechDebtService{byADR: map[string][]domain.TechDebt{
		"20240601-adopt-x": {{ID: "debt-20240601-legacy"}},
	}}
	e := newTestEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/adrs/20240601-adopt-x/tech-debt", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("20240601-adopt-x")

	if err := NewTechDebtHandler(svc).ListByADR(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if list := decode[listResponse[domain.TechDebt]](t, rec); list.Total != 1 {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestADRHandler_Create_OptionNameRequired(t *testing.T) {
	e := newTestEcho()
	body := `{"title":"Adopt X","context":"c","consequences":"q","options":[{"description":"nameless"}]}`
	err := NewADRHandler(nil).Create(e.NewContext(jsonRequest(http.MethodPost, "/v1/adrs", body), httptest.NewRecorder()))
	if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestDashboardHandler_Activity(t *testing.T) {
	activity := &stubActivityLog{}
	h := NewDashboardHandler(&stubDashboardService{}, activity)
	e := newTestEcho()

	rec := httptest.NewRecorder()
	if err := h.Activity(e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/activity", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if activity.lastLimit != defaultActivityLimit {
		t.Fatalf("expected default limit, got %d", activity.lastLimit)
	}
	if body := decode[map[string]any](t, rec); body["data"] == nil {
		t.Fatalf("expected empty data array, got %+v", body)
	}

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/activity?limit=1000", nil), httptest.NewRecorder())
	if err := h.Activity(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if activity.lastLimit != maxActivityLimit {
		t.Fatalf("expected capped limit, got %d", activity.lastLimit)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/activity?limit=abc", nil), httptest.NewRecorder())
	if code := httpCode(t, h.Activity(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestDashboardHandler_Stats(t *testing.T) {
	stats := &domain.DashboardStats{
		Totals:               domain.Totals{BusinessApps: 3},
		BusinessAppsByStatus: map[string]int64{"active": 2, "deprecated": 1},
	}
	e := newTestEcho()

	rec := httptest.NewRecorder()
	if err := NewDashboardHandler(&stubDashboardService{stats: stats}, nil).Stats(e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	got := decode[domain.DashboardStats](t, rec)
	if got.Totals.BusinessApps != 3 || got.BusinessAppsByStatus["active"] != 2 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestUserHandler_Me(t *testing.T) {
	users := &stubUserService{users: map[string]*domain.User{"u1": {ID: "u1", Email: "alice@example.com"}}}
	e := newTestEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/users/me", nil), rec)
	c.Set("user_id", "u1")

	if err := NewUserHandler(users).Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := decode[domain.User](t, rec); got.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/users/me", nil), httptest.NewRecorder())
	if code := httpCode(t, NewUserHandler(users).Me(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", code)
	}
}

func TestUserHandler_Create_SetsLocalProvider(t *testing.T) {
	e := newTestEcho()
	rec := httptest.NewRecorder()
	body := `{"email":"bob@example.com","name":"Bob","password":"correct-horse"}`

	if err := NewUserHandler(&stubUserService{}).Create(e.NewContext(jsonRequest(http.MethodPost, "/v1/users", body), rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := decode[domain.User](t, rec); got.AuthProvider != domain.AuthProviderLocal {
		t.Fatalf("unexpected provider: %q", got.AuthProvider)
	}

	short := `{"email":"bob@example.com","name":"Bob","password":"short"}`
	err := NewUserHandler(&stubUserService{}).Create(e.NewContext(jsonRequest(http.MethodPost, "/v1/users", short), httptest.NewRecorder()))
	if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestUserHandler_Delete_Self(t *testing.T) {
	users := &stubUserService{users: map[string]*domain.User{}}
	e := newTestEcho()

	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/v1/users/u1", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("u1")
	c.Set("user_id", "u1")

	if code := httpCode(t, NewUserHandler(users).Delete(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if len(users.deleted) != 0 {
		t.Fatalf("service should not be called")
	}
}
