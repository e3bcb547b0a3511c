package usecase

import (
	"context"
	"fmt"

	"github.com/statfield/nfl-standings/internal/domain/realignment"
)

type RealignmentService struct {
	realignRepo realignment.Repository
}

func NewRealignmentService(realignRepo realignment.Repository) *RealignmentService {
	return &RealignmentService{realignRepo: realignRepo}
}

// Initialize seeds the conference and division assignments. With overwrite
// set, existing rows are replaced; otherwise they are left untouched.
func (s *RealignmentService) Initialize(ctx context.Context, overwrite bool) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.realignment_initialize")
	defer span.End()

	inserted, err := s.realignRepo.SeedBatch(ctx, realignment.DefaultAlignment(), overwrite)
	if err != nil {
		return 0, fmt.Errorf("seed realignment: %w", err)
	}
	return inserted, nil
}

// EnsureSeeded seeds the default assignments only when the table is empty.
func (s *RealignmentService) EnsureSeeded(ctx context.Context) (int, error) {
	count, err := s.realignRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count realignment: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	return s.Initialize(ctx, false)
}

func (s *RealignmentService) Lookup(ctx context.Context) (realignment.Lookup, error) {
	rows, err := s.realignRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list realignment: %w", err)
	}
	return realignment.BuildLookup(rows), nil
}
