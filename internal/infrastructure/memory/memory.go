// Package memory holds map-backed repositories with the same semantics as
// the Postgres ones. Tests use them in place of a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mendly/mendly-backend/internal/domain/entity"
	"github.com/mendly/mendly-backend/internal/domain/repository"
)

type PrincipalRepository struct {
	mu    sync.RWMutex
	items []entity.Principal
	// Calls counts FindByToken lookups.
	Calls int
}

func NewPrincipalRepository() *PrincipalRepository {
	return &PrincipalRepository{}
}

func (r *PrincipalRepository) Create(_ context.Context, p *entity.Principal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if (it.Kind == p.Kind && it.Name == p.Name) || it.AccessToken == p.AccessToken {
			return entity.ErrConflict
		}
	}
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	r.items = append(r.items, *p)
	return nil
}

func (r *PrincipalRepository) FindByToken(_ context.Context, kind entity.Kind, token string) (*entity.Principal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	for _, it := range r.items {
		if it.Kind == kind && it.AccessToken == token {
			p := it
			return &p, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *PrincipalRepository) FindByName(_ context.Context, kind entity.Kind, name string) (*entity.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.Kind == kind && it.Name == name {
			p := it
			return &p, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *PrincipalRepository) List(_ context.Context, kind entity.Kind) ([]entity.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Principal, 0)
	for _, it := range r.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *PrincipalRepository) Ping(context.Context) error { return nil }

type AssignmentRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Assignment
}

func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{items: map[string]entity.Assignment{}}
}

func (r *AssignmentRepository) Create(_ context.Context, a *entity.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = uuid.NewString()
	now := time.Now().UTC()
	// keep insertion order stable for List
	if n := len(r.items); n > 0 {
		now = now.Add(time.Duration(n) * time.Nanosecond)
	}
	a.CreatedAt, a.UpdatedAt = now, now
	r.items[a.ID] = *a
	return nil
}

func (r *AssignmentRepository) List(_ context.Context) ([]entity.Assignment, error) {
	return r.filter(func(entity.Assignment) bool { return true }), nil
}

func (r *AssignmentRepository) ListByAssignmentID(_ context.Context, assignmentID string) ([]entity.Assignment, error) {
	return r.filter(func(a entity.Assignment) bool { return a.AssignmentID == assignmentID }), nil
}

func (r *AssignmentRepository) Update(_ context.Context, a *entity.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.items[a.ID]
	if !ok {
		return entity.ErrNotFound
	}
	a.CreatedAt = cur.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	r.items[a.ID] = *a
	return nil
}

func (r *AssignmentRepository) filter(keep func(entity.Assignment) bool) []entity.Assignment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Assignment, 0)
	for _, a := range r.items {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

var (
	_ repository.PrincipalRepository  = (*PrincipalRepository)(nil)
	_ repository.AssignmentRepository = (*AssignmentRepository)(nil)
)
