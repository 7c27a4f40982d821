package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/eadirect/ea-catalog/internal/core/domain"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 123456789, time.UTC)

func fixedClock() time.Time { return fixedNow }

// passTx runs fn directly; stub repositories have no transactions.
type passTx struct {
	calls int
	err   error
}

func (t *passTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if t.err != nil {
		return t.err
	}
	return fn(ctx)
}

type recordingLog struct {
	mu      sync.Mutex
	entries []domain.Activity
	err     error
}

func (l *recordingLog) Record(_ context.Context, a domain.Activity) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	l.entries = append(l.entries, a)
	return nil
}

func (l *recordingLog) Recent(_ context.Context, limit int) ([]domain.Activity, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if limit > len(l.entries) {
		limit = len(l.entries)
	}
	return append([]domain.Activity(nil), l.entries[len(l.entries)-limit:]...), nil
}

// ---------------------------------------------------------------------------
// Supplier
// ---------------------------------------------------------------------------

type stubSupplierRepo struct {
	byID      map[string]*domain.Supplier
	createErr error
	deleted   []string
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{byID: make(map[string]*domain.Supplier)}
}

func (r *stubSupplierRepo) List(_ context.Context) ([]domain.Supplier, error) {
	out := make([]domain.Supplier, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id string) (*domain.Supplier, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.NotFound(domain.KindSupplier, id)
	}
	clone := *s
	return &clone, nil
}

func (r *stubSupplierRepo) FindByName(_ context.Context, name string) (*domain.Supplier, error) {
	for _, s := range r.byID {
		if s.Name == name {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.NotFound(domain.KindSupplier, name)
}

func (r *stubSupplierRepo) Create(_ context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *s
	r.byID[s.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *domain.Supplier) (*domain.Supplier, error) {
	if _, ok := r.byID[s.ID]; !ok {
		return nil, domain.NotFound(domain.KindSupplier, s.ID)
	}
	clone := *s
	r.byID[s.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.NotFound(domain.KindSupplier, id)
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users   map[string]*domain.User
	updates int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NotFound(domain.KindUser, id)
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.NotFound(domain.KindUser, email)
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.Conflict(domain.KindUser, "email", u.Email)
		}
	}
	r.users[u.ID] = cloneUser(u)
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.users[u.ID]; !ok {
		return nil, domain.NotFound(domain.KindUser, u.ID)
	}
	r.updates++
	r.users[u.ID] = cloneUser(u)
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.NotFound(domain.KindUser, id)
	}
	delete(r.users, id)
	return nil
}

// ---------------------------------------------------------------------------
// Dashboard
// ---------------------------------------------------------------------------

type stubDashboardRepo struct {
	totals   domain.Totals
	groups   map[string]map[string]int64
	recent   map[domain.Kind][]domain.RecentItem
	limits   []int
	countErr error
}

func (r *stubDashboardRepo) Totals(_ context.Context) (domain.Totals, error) {
	return r.totals, nil
}

func (r *stubDashboardRepo) CountBy(_ context.Context, kind domain.Kind, column string) (map[string]int64, error) {
	if r.countErr != nil {
		return nil, r.countErr
	}
	return r.groups[string(kind)+"."+column], nil
}

func (r *stubDashboardRepo) Recent(_ context.Context, kind domain.Kind, limit int) ([]domain.RecentItem, error) {
	r.limits = append(r.limits, limit)
	return r.recent[kind], nil
}

var errStore = errors.New("store unavailable")
