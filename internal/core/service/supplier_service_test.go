package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eadirect/ea-catalog/internal/core/domain"
	"github.com/eadirect/ea-catalog/internal/core/ports"
)

func newTestSupplierService() (*SupplierService, *stubSupplierRepo, *recordingLog, *passTx) {
	repo := newStubSupplierRepo()
	activity := &recordingLog{}
	tx := &passTx{}
	return NewSupplierService(repo, tx, activity, zerolog.Nop(), WithClock(fixedClock)), repo, activity, tx
}

func strPtr(s string) *string { return &s }

func TestSupplierService_Create_Success(t *testing.T) {
	svc, repo, activity, tx := newTestSupplierService()

	s, err := svc.Create(context.Background(), ports.CreateSupplierInput{Name: "Acme", Website: "https://acme.test"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, ok := domain.CanonicalUUID(s.ID); !ok {
		t.Fatalf("expected UUID id, got %q", s.ID)
	}
	if !s.CreatedAt.Equal(s.UpdatedAt) {
		t.Fatalf("created_at %v != updated_at %v", s.CreatedAt, s.UpdatedAt)
	}
	if s.CreatedAt.Nanosecond()%1000 != 0 {
		t.Fatalf("timestamp not truncated to microseconds: %v", s.CreatedAt)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 stored supplier, got %d", len(repo.byID))
	}
	if tx.calls != 1 {
		t.Fatalf("expected 1 transaction, got %d", tx.calls)
	}
	if len(activity.entries) != 1 || activity.entries[0].Action != domain.ActionCreated || activity.entries[0].ExternalID != s.ID {
		t.Fatalf("unexpected activity: %+v", activity.entries)
	}
}

func TestSupplierService_Create_RequiresName(t *testing.T) {
	svc, _, activity, tx := newTestSupplierService()

	_, err := svc.Create(context.Background(), ports.CreateSupplierInput{Name: "  "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if tx.calls != 0 {
		t.Fatalf("validation must happen before the store is touched")
	}
	if len(activity.entries) != 0 {
		t.Fatalf("no activity expected on failure")
	}
}

func TestSupplierService_Create_DuplicateName(t *testing.T) {
	svc, _, _, _ := newTestSupplierService()

	if _, err := svc.Create(context.Background(), ports.CreateSupplierInput{Name: "Acme"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), ports.CreateSupplierInput{Name: "Acme"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestSupplierService_Create_ActivityFailureIsNotFatal(t *testing.T) {
	repo := newStubSupplierRepo()
	activity := &recordingLog{err: errStore}
	svc := NewSupplierService(repo, &passTx{}, activity, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateSupplierInput{Name: "Acme"}); err != nil {
		t.Fatalf("expected success despite activity failure, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("supplier should be stored")
	}
}

func TestSupplierService_Create_StoreFailurePropagates(t *testing.T) {
	svc, repo, activity, _ := newTestSupplierService()
	repo.createErr = errStore

	_, err := svc.Create(context.Background(), ports.CreateSupplierInput{Name: "Acme"})
	if !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}
	if len(activity.entries) != 0 {
		t.Fatalf("no activity expected on failure")
	}
}

func TestSupplierService_Get_MalformedIDIsNotFound(t *testing.T) {
	svc, _, _, tx := newTestSupplierService()

	_, err := svc.Get(context.Background(), "not-a-uuid")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if tx.calls != 0 {
		t.Fatalf("malformed id must not reach the store")
	}
}

func TestSupplierService_Get_CanonicalisesID(t *testing.T) {
	svc, _, _, _ := newTestSupplierService()

	created, err := svc.Create(context.Background(), ports.CreateSupplierInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.Get(context.Background(), "{"+strings.ToUpper(created.ID)+"}")
	if err != nil {
		t.Fatalf("Get with braced upper-case id: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected %s, got %s", created.ID, got.ID)
	}
}

func TestSupplierService_Update_PartialFields(t *testing.T) {
	svc, _, activity, _ := newTestSupplierService()

	created, _ := svc.Create(context.Background(), ports.CreateSupplierInput{Name: "Acme", Website: "https://acme.test", Address: "1 Road"})
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateSupplierInput{Website: strPtr("https://acme.example")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Website != "https://acme.example" {
		t.Fatalf("website not updated: %q", updated.Website)
	}
	if updated.Name != "Acme" || updated.Address != "1 Road" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if len(activity.entries) != 2 || activity.entries[1].Action != domain.ActionUpdated {
		t.Fatalf("unexpected activity: %+v", activity.entries)
	}
}

func TestSupplierService_Update_RenameToTakenName(t *testing.T) {
	svc, _, _, _ := newTestSupplierService()

	_, _ = svc.Create(context.Background(), ports.CreateSupplierInput{Name: "Acme"})
	other, _ := svc.Create(context.Background(), ports.CreateSupplierInput{Name: "Globex"})

	_, err := svc.Update(context.Background(), other.ID, ports.UpdateSupplierInput{Name: strPtr("Acme")})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestSupplierService_Update_SameNameIsAllowed(t *testing.T) {
	svc, _, _, _ := newTestSupplierService()

	created, _ := svc.Create(context.Background(), ports.CreateSupplierInput{Name: "Acme"})
	if _, err := svc.Update(context.Background(), created.ID, ports.UpdateSupplierInput{Name: strPtr("Acme")}); err != nil {
		t.Fatalf("renaming to own name should succeed, got %v", err)
	}
}

func TestSupplierService_Delete(t *testing.T) {
	svc, repo, activity, _ := newTestSupplierService()

	created, _ := svc.Create(context.Background(), ports.CreateSupplierInput{Name: "Acme"})
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != created.ID {
		t.Fatalf("unexpected deletes: %v", repo.deleted)
	}
	last := activity.entries[len(activity.entries)-1]
	if last.Action != domain.ActionDeleted {
		t.Fatalf("expected deleted activity, got %s", last.Action)
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

