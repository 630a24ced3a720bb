package application

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mendly/mendly-backend/internal/domain/entity"
	repo "github.com/mendly/mendly-backend/internal/domain/repository"
)

// AssignmentIndex mirrors assignments into a full-text search backend.
type AssignmentIndex interface {
	Index(ctx context.Context, a *entity.Assignment) error
	Search(ctx context.Context, query string, size int) ([]entity.Assignment, error)
}

// AssignmentInput carries the mutable fields of an assignment.
type AssignmentInput struct {
	Situation    string
	Tanke        string
	Kansla       string
	Kropp        string
	Lukt         string
	AssignmentID string
	Complete     bool
}

type AssignmentService struct {
	Repo   repo.AssignmentRepository
	Index  AssignmentIndex // optional
	Logger *logrus.Logger
}

func NewAssignmentService(repo repo.AssignmentRepository, index AssignmentIndex, logger *logrus.Logger) *AssignmentService {
	return &AssignmentService{Repo: repo, Index: index, Logger: logger}
}

func (s *AssignmentService) Create(ctx context.Context, in AssignmentInput) (*entity.Assignment, error) {
	a := in.apply(&entity.Assignment{})
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.index(ctx, a)
	return a, nil
}

func (s *AssignmentService) List(ctx context.Context) ([]entity.Assignment, error) {
	return s.Repo.List(ctx)
}

func (s *AssignmentService) ListByAssignmentID(ctx context.Context, assignmentID string) ([]entity.Assignment, error) {
	return s.Repo.ListByAssignmentID(ctx, assignmentID)
}

// Update overwrites all mutable fields of the assignment with the given id.
// Fields left empty in the input are stored empty.
func (s *AssignmentService) Update(ctx context.Context, id string, in AssignmentInput) (*entity.Assignment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &FieldError{Field: "_id", Message: "must be a valid id"}
	}
	a := in.apply(&entity.Assignment{ID: id})
	if err := s.Repo.Update(ctx, a); err != nil {
		return nil, err
	}
	s.index(ctx, a)
	return a, nil
}

const maxSearchSize = 100

func (s *AssignmentService) Search(ctx context.Context, query string, size int) ([]entity.Assignment, error) {
	if s.Index == nil {
		return nil, ErrSearchDisabled
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &FieldError{Field: "q", Message: "is required"}
	}
	if size <= 0 || size > maxSearchSize {
		size = 20
	}
	return s.Index.Search(ctx, query, size)
}

func (s *AssignmentService) index(ctx context.Context, a *entity.Assignment) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, a); err != nil {
		l := s.Logger
		if l == nil {
			l = logrus.StandardLogger()
		}
		l.WithError(err).WithField("id", a.ID).Warn("failed to index assignment")
	}
}

func (in AssignmentInput) apply(a *entity.Assignment) *entity.Assignment {
	a.Situation = in.Situation
	a.Tanke = in.Tanke
	a.Kansla = in.Kansla
	a.Kropp = in.Kropp
	a.Lukt = in.Lukt
	a.AssignmentID = in.AssignmentID
	a.Complete = in.Complete
	return a
}
