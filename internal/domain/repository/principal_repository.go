package repository

import (
	"context"

	"github.com/mendly/mendly-backend/internal/domain/entity"
)

// PrincipalRepository persists users and admins. Every lookup is scoped to a
// single kind.
type PrincipalRepository interface {
	// Create stores p and fills in ID and CreatedAt. It returns
	// entity.ErrConflict when the name is taken for p.Kind.
	Create(ctx context.Context, p *entity.Principal) error
	FindByToken(ctx context.Context, kind entity.Kind, token string) (*entity.Principal, error)
	FindByName(ctx context.Context, kind entity.Kind, name string) (*entity.Principal, error)
	List(ctx context.Context, kind entity.Kind) ([]entity.Principal, error)
	Ping(ctx context.Context) error
}
