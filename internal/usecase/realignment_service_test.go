package usecase

import (
	"context"
	"testing"
)

func TestRealignmentService_EnsureSeeded_SeedsWhenEmpty(t *testing.T) {
	t.Parallel()

	repo := &stubRealignmentRepository{}
	service := NewRealignmentService(repo)

	inserted, err := service.EnsureSeeded(context.Background())
	if err != nil {
		t.Fatalf("ensure seeded: %v", err)
	}
	if inserted != 32 {
		t.Fatalf("expected 32 seeded rows, got %d", inserted)
	}
	if len(repo.rows) != 32 {
		t.Fatalf("expected repository to hold 32 rows, got %d", len(repo.rows))
	}
}

func TestRealignmentService_EnsureSeeded_SkipsWhenPopulated(t *testing.T) {
	t.Parallel()

	repo := &stubRealignmentRepository{rows: testRealignRows()}
	service := NewRealignmentService(repo)

	inserted, err := service.EnsureSeeded(context.Background())
	if err != nil {
		t.Fatalf("ensure seeded: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("expected no seeding on populated table, got %d", inserted)
	}
	if repo.seeded != 0 {
		t.Fatalf("seed should not run on populated table")
	}
}

func TestRealignmentService_Initialize_Overwrite(t *testing.T) {
	t.Parallel()

	repo := &stubRealignmentRepository{rows: testRealignRows()}
	service := NewRealignmentService(repo)

	inserted, err := service.Initialize(context.Background(), true)
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if inserted != 32 || len(repo.rows) != 32 {
		t.Fatalf("expected overwrite with 32 rows, got inserted=%d rows=%d", inserted, len(repo.rows))
	}
}
