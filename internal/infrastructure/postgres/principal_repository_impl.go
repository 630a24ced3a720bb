package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mendly/mendly-backend/internal/domain/entity"
	"github.com/mendly/mendly-backend/internal/domain/repository"
)

const principalColumns = `id::text, kind, name, COALESCE(email, ''), password_hash, access_token, created_at`

type PrincipalRepository struct {
	pool *pgxpool.Pool
}

func NewPrincipalRepository(pool *pgxpool.Pool) *PrincipalRepository {
	return &PrincipalRepository{pool: pool}
}

func (r *PrincipalRepository) Create(ctx context.Context, p *entity.Principal) error {
	var email *string
	if p.Kind == entity.KindUser {
		email = &p.Email
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO principals (kind, name, email, password_hash, access_token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text, created_at
	`, string(p.Kind), p.Name, email, p.PasswordHash, p.AccessToken)

	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("insert %s: %w", p.Kind, mapError(err))
	}
	return nil
}

func (r *PrincipalRepository) FindByToken(ctx context.Context, kind entity.Kind, token string) (*entity.Principal, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+principalColumns+`
		FROM principals
		WHERE kind = $1 AND access_token = $2
	`, string(kind), token)
	return scanPrincipal(row)
}

func (r *PrincipalRepository) FindByName(ctx context.Context, kind entity.Kind, name string) (*entity.Principal, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+principalColumns+`
		FROM principals
		WHERE kind = $1 AND name = $2
	`, string(kind), name)
	return scanPrincipal(row)
}

func (r *PrincipalRepository) List(ctx context.Context, kind entity.Kind) ([]entity.Principal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+principalColumns+`
		FROM principals
		WHERE kind = $1
		ORDER BY created_at
	`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	out := make([]entity.Principal, 0)
	for rows.Next() {
		p, err := scanPrincipal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return out, nil
}

func (r *PrincipalRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanPrincipal(row pgx.Row) (*entity.Principal, error) {
	p := &entity.Principal{}
	var kind string
	if err := row.Scan(&p.ID, &kind, &p.Name, &p.Email, &p.PasswordHash, &p.AccessToken, &p.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	p.Kind = entity.Kind(kind)
	return p, nil
}

var _ repository.PrincipalRepository = (*PrincipalRepository)(nil)
