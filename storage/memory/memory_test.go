package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"coffeeshop/models"
	"coffeeshop/storage"
)

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	first := models.User{Name: "First", Email: "dup@example.com", Role: models.RoleCustomer}
	if err := s.Create(ctx, &first, "hash"); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := models.User{Name: "Second", Email: "DUP@example.com", Role: models.RoleCustomer}
	if err := s.Create(ctx, &second, "hash"); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	user := models.User{Name: "Original", Email: "p@example.com", Role: models.RoleCustomer}
	if err := s.Create(ctx, &user, "hash"); err != nil {
		t.Fatalf("create: %v", err)
	}

	phone := "5550100"
	updated, err := s.UpdateProfile(ctx, user.ID, models.ProfileUpdate{Phone: &phone})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Original" {
		t.Fatalf("omitted name should be preserved, got %q", updated.Name)
	}
	if updated.Phone == nil || *updated.Phone != "5550100" {
		t.Fatalf("phone not applied: %v", updated.Phone)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Fatalf("updatedAt not refreshed")
	}
}

func TestRequestDeletionHidesUser(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	user := models.User{Name: "Going Away", Email: "bye@example.com", Role: models.RoleCustomer}
	if err := s.Create(ctx, &user, "hash"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.RequestDeletion(ctx, user.ID); err != nil {
		t.Fatalf("request deletion: %v", err)
	}
	if _, err := s.GetByID(ctx, user.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after deletion request, got %v", err)
	}
	if err := s.RequestDeletion(ctx, user.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("second deletion request should be ErrNotFound, got %v", err)
	}
}

func TestListOrdersPagination(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	all, total, err := s.ListOrders(ctx, "", 1, 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != len(all) {
		t.Fatalf("total %d does not match list length %d", total, len(all))
	}

	page1, _, err := s.ListOrders(ctx, "", 1, 5)
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if len(page1) != 5 {
		t.Fatalf("expected 5 orders on page 1, got %d", len(page1))
	}

	// A page past the end is empty, not an error.
	empty, _, err := s.ListOrders(ctx, "", 100, 5)
	if err != nil {
		t.Fatalf("list far page: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %d orders", len(empty))
	}
}

func TestListOrdersStatusFilter(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	pending, total, err := s.ListOrders(ctx, "pending", 1, 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != len(pending) {
		t.Fatalf("total %d does not match list length %d", total, len(pending))
	}
	for _, order := range pending {
		if order.Status != "pending" {
			t.Fatalf("filter leaked order with status %q", order.Status)
		}
	}
}

func TestReportRange(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	full, err := s.Report(ctx, nil, nil)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if full.TotalOrders == 0 || full.AverageOrderValue == 0 {
		t.Fatalf("seeded report should not be empty: %+v", full)
	}

	var orders int
	for _, day := range full.ByDate {
		orders += day.Orders
	}
	if orders != full.TotalOrders {
		t.Fatalf("byDate orders %d do not sum to total %d", orders, full.TotalOrders)
	}

	past := time.Now().AddDate(-10, 0, 0)
	alsoPast := past.AddDate(0, 1, 0)
	empty, err := s.Report(ctx, &past, &alsoPast)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if empty.TotalOrders != 0 || len(empty.ByDate) != 0 {
		t.Fatalf("expected empty report for past range, got %+v", empty)
	}
}

func TestFavoritesIdempotent(t *testing.T) {
	s := NewSeededStore()
	ctx := context.Background()

	first, err := s.Add(ctx, "user-1", "latte")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := s.Add(ctx, "user-1", "latte")
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if !first.AddedAt.Equal(second.AddedAt) {
		t.Fatalf("re-add should keep the original entry")
	}

	favorites, err := s.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(favorites) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(favorites))
	}

	if err := s.Remove(ctx, "user-1", "latte"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.Remove(ctx, "user-1", "latte"); err != nil {
		t.Fatalf("second remove should be a no-op, got %v", err)
	}

	if _, err := s.Add(ctx, "user-1", "unknown"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown item, got %v", err)
	}
}
