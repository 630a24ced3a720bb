package application

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mendly/mendly-backend/internal/domain/entity"
	"github.com/mendly/mendly-backend/internal/infrastructure/memory"
)

type fakeIndex struct {
	docs map[string]entity.Assignment
}

func (f *fakeIndex) Index(_ context.Context, a *entity.Assignment) error {
	f.docs[a.ID] = *a
	return nil
}

func (f *fakeIndex) Search(_ context.Context, query string, _ int) ([]entity.Assignment, error) {
	out := []entity.Assignment{}
	for _, d := range f.docs {
		if d.Situation == query {
			out = append(out, d)
		}
	}
	return out, nil
}

func newAssignmentService() *AssignmentService {
	logger, _ := test.NewNullLogger()
	return NewAssignmentService(memory.NewAssignmentRepository(), nil, logger)
}

func TestAssignment_CreateAndList(t *testing.T) {
	svc := newAssignmentService()
	ctx := context.Background()

	a1, err := svc.Create(ctx, AssignmentInput{Situation: "work", AssignmentID: "g1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, AssignmentInput{Situation: "home", AssignmentID: "g2", Complete: true})
	require.NoError(t, err)

	assert.NotEmpty(t, a1.ID)
	assert.False(t, a1.CreatedAt.IsZero())

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	g1, err := svc.ListByAssignmentID(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, g1, 1)
	assert.Equal(t, a1.ID, g1[0].ID)

	none, err := svc.ListByAssignmentID(ctx, "nope")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestAssignment_UpdateOverwrites(t *testing.T) {
	svc := newAssignmentService()
	ctx := context.Background()

	a, err := svc.Create(ctx, AssignmentInput{Situation: "work", Tanke: "t", AssignmentID: "g1"})
	require.NoError(t, err)

	got, err := svc.Update(ctx, a.ID, AssignmentInput{Situation: "work2", Complete: true})
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "work2", got.Situation)
	assert.Empty(t, got.Tanke)
	assert.Empty(t, got.AssignmentID)
	assert.True(t, got.Complete)
	assert.Equal(t, a.CreatedAt, got.CreatedAt)
}

func TestAssignment_UpdateErrors(t *testing.T) {
	svc := newAssignmentService()
	ctx := context.Background()

	_, err := svc.Update(ctx, "not-a-uuid", AssignmentInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, "5b0c1a52-2c6f-4f5e-9a57-3f1f0f3e8d11", AssignmentInput{})
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAssignment_Search(t *testing.T) {
	svc := newAssignmentService()
	ctx := context.Background()

	_, err := svc.Search(ctx, "work", 10)
	assert.ErrorIs(t, err, ErrSearchDisabled)

	svc.Index = &fakeIndex{docs: map[string]entity.Assignment{}}
	_, err = svc.Create(ctx, AssignmentInput{Situation: "work"})
	require.NoError(t, err)

	got, err := svc.Search(ctx, " work ", 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.Search(ctx, "   ", 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
