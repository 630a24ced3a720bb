package repository

import (
	"context"

	"github.com/mendly/mendly-backend/internal/domain/entity"
)

// AssignmentRepository defines the persistence operations for assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, a *entity.Assignment) error
	List(ctx context.Context) ([]entity.Assignment, error)
	ListByAssignmentID(ctx context.Context, assignmentID string) ([]entity.Assignment, error)
	// Update overwrites every mutable field of the record with id a.ID.
	Update(ctx context.Context, a *entity.Assignment) error
}
