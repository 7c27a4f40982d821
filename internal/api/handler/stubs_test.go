package handler

import (
	"context"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

type stubSupplierService struct {
	suppliers []domain.Supplier
	created   *ports.CreateSupplierInput
	updated   *ports.UpdateSupplierInput
	err       error
}

func (s *stubSupplierService) List(context.Context) ([]domain.Supplier, error) {
	return s.suppliers, s.err
}

func (s *stubSupplierService) Get(_ context.Context, id string) (*domain.Supplier, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			return &s.suppliers[i], nil
		}
	}
	return nil, domain.NotFound(domain.KindSupplier, id)
}

func (s *stubSupplierService) GetByName(_ context.Context, name string) (*domain.Supplier, error) {
	for i := range s.suppliers {
		if s.suppliers[i].Name == name {
			return &s.suppliers[i], nil
		}
	}
	return nil, domain.NotFound(domain.KindSupplier, name)
}

func (s *stubSupplierService) Create(_ context.Context, in ports.CreateSupplierInput) (*domain.Supplier, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &in
	return &domain.Supplier{ID: "s-new", Name: in.Name, Website: in.Website}, nil
}

func (s *stubSupplierService) Update(_ context.Context, id string, in ports.UpdateSupplierInput) (*domain.Supplier, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updated = &in
	return &domain.Supplier{ID: id}, nil
}

func (s *stubSupplierService) Delete(context.Context, string) error {
	return s.err
}

type stubProductService struct {
	products []domain.Product
	created  *ports.CreateProductInput
	err      error
}

func (s *stubProductService) List(context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductService) ListBySupplier(_ context.Context, supplierID string) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range s.products {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, s.err
}

func (s *stubProductService) Get(_ context.Context, id string) (*domain.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, domain.NotFound(domain.KindProduct, id)
}

func (s *stubProductService) Create(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &in
	return &domain.Product{ID: "p-new", Name: in.Name, SupplierID: in.SupplierID}, nil
}

func (s *stubProductService) Update(_ context.Context, id string, _ ports.UpdateProductInput) (*domain.Product, error) {
	return s.Get(context.Background(), id)
}

func (s *stubProductService) Delete(context.Context, string) error {
	return s.err
}

type stubBusinessAppService struct {
	apps    []domain.BusinessApp
	updated *ports.UpdateBusinessAppInput
}

func (s *stubBusinessAppService) List(context.Context) ([]domain.BusinessApp, error) {
	return s.apps, nil
}

func (s *stubBusinessAppService) Get(_ context.Context, id string) (*domain.BusinessApp, error) {
	for i := range s.apps {
		if s.apps[i].ID == id {
			return &s.apps[i], nil
		}
	}
	return nil, domain.NotFound(domain.KindBusinessApp, id)
}

func (s *stubBusinessAppService) Create(_ context.Context, in ports.CreateBusinessAppInput) (*domain.BusinessApp, error) {
	return &domain.BusinessApp{ID: "a-new", Name: in.Name, ProductID: in.ProductID}, nil
}

func (s *stubBusinessAppService) Update(_ context.Context, id string, in ports.UpdateBusinessAppInput) (*domain.BusinessApp, error) {
	s.updated = &in
	return s.Get(context.Background(), id)
}

func (s *stubBusinessAppService) Delete(context.Context, string) error {
	return nil
}

type stubTechDebtService struct {
	created *ports.CreateTechDebtInput
	updated *ports.UpdateTechDebtInput
	byADR   map[string][]domain.TechDebt
}

func (s *stubTechDebtService) List(context.Context) ([]domain.TechDebt, error) {
	return nil, nil
}

func (s *stubTechDebtService) ListByADR(_ context.Context, adrID string) ([]domain.TechDebt, error) {
	return s.byADR[adrID], nil
}

func (s *stubTechDebtService) Get(_ context.Context, id string) (*domain.TechDebt, error) {
	return nil, domain.NotFound(domain.KindTechDebt, id)
}

func (s *stubTechDebtService) Create(_ context.Context, in ports.CreateTechDebtInput) (*domain.TechDebt, error) {
	s.created = &in
	return &domain.TechDebt{ID: "debt-20240601-legacy", Title: in.Title, TargetResolutionDate: in.TargetResolutionDate}, nil
}

func (s *stubTechDebtService) Update(_ context.Context, id string, in ports.UpdateTechDebtInput) (*domain.TechDebt, error) {
	s.updated = &in
	return &domain.TechDebt{ID: id}, nil
}

func (s *stubTechDebtService) Delete(context.Context, string) error {
	return nil
}

type stubDashboardService struct {
	stats *domain.DashboardStats
}

func (s *stubDashboardService) Stats(context.Context) (*domain.DashboardStats, error) {
	return s.stats, nil
}

type stubActivityLog struct {
	entries   []domain.Activity
	lastLimit int
}

func (s *stubActivityLog) Record(_ context.Context, a domain.Activity) error {
	s.entries = append(s.entries, a)
	return nil
}

func (s *stubActivityLog) Recent(_ context.Context, limit int) ([]domain.Activity, error) {
	s.lastLimit = limit
	if len(s.entries) > limit {
		return s.entries[:limit], nil
	}
	return s.entries, nil
}

type stubUserService struct {
	users   map[string]*domain.User
	deleted []string
}

func (s *stubUserService) List(context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *stubUserService) Get(_ context.Context, id string) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, domain.NotFound(domain.KindUser, id)
}

func (s *stubUserService) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.NotFound(domain.KindUser, email)
}

func (s *stubUserService) Create(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return &domain.User{ID: "u-new", Email: in.Email, Name: in.Name, AuthProvider: in.AuthProvider}, nil
}

func (s *stubUserService) Update(_ context.Context, id string, _ ports.UpdateUserInput) (*domain.User, error) {
	return s.Get(context.Background(), id)
}

func (s *stubUserService) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubUserService) Authenticate(context.Context, string, string) (*domain.User, error) {
	return nil, domain.ErrInvalidCredentials
}
