package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mendly/mendly-backend/internal/domain/entity"
	"github.com/mendly/mendly-backend/internal/domain/repository"
)

const assignmentColumns = `id::text, situation, tanke, kansla, kropp, lukt, assignment_id, complete, created_at, updated_at`

type AssignmentRepository struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *entity.Assignment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO assignments (situation, tanke, kansla, kropp, lukt, assignment_id, complete)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id::text, created_at, updated_at
	`, a.Situation, a.Tanke, a.Kansla, a.Kropp, a.Lukt, a.AssignmentID, a.Complete)

	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("insert assignment: %w", mapError(err))
	}
	return nil
}

func (r *AssignmentRepository) List(ctx context.Context) ([]entity.Assignment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+assignmentColumns+`
		FROM assignments
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return collectAssignments(rows)
}

func (r *AssignmentRepository) ListByAssignmentID(ctx context.Context, assignmentID string) ([]entity.Assignment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+assignmentColumns+`
		FROM assignments
		WHERE assignment_id = $1
		ORDER BY created_at
	`, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("list assignments by group: %w", err)
	}
	return collectAssignments(rows)
}

func (r *AssignmentRepository) Update(ctx context.Context, a *entity.Assignment) error {
	a.UpdatedAt = time.Now().UTC()

	row := r.pool.QueryRow(ctx, `
		UPDATE assignments
		SET situation = $1, tanke = $2, kansla = $3, kropp = $4, lukt = $5,
		    assignment_id = $6, complete = $7, updated_at = $8
		WHERE id = $9
		RETURNING created_at
	`, a.Situation, a.Tanke, a.Kansla, a.Kropp, a.Lukt, a.AssignmentID, a.Complete, a.UpdatedAt, a.ID)

	if err := row.Scan(&a.CreatedAt); err != nil {
		return fmt.Errorf("update assignment %s: %w", a.ID, mapError(err))
	}
	return nil
}

func collectAssignments(rows pgx.Rows) ([]entity.Assignment, error) {
	defer rows.Close()
	out := make([]entity.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanAssignment(row pgx.Row) (*entity.Assignment, error) {
	a := &entity.Assignment{}
	if err := row.Scan(&a.ID, &a.Situation, &a.Tanke, &a.Kansla, &a.Kropp, &a.Lukt,
		&a.AssignmentID, &a.Complete, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

var _ repository.AssignmentRepository = (*AssignmentRepository)(nil)
