package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/assert"

	"github.com/mendly/mendly-backend/internal/application"
	"github.com/mendly/mendly-backend/internal/domain/entity"
	"github.com/mendly/mendly-backend/internal/infrastructure/memory"
)

var errStore = errors.New("store unavailable")

type brokenAssignments struct{ *memory.AssignmentRepository }

func (brokenAssignments) List(context.Context) ([]entity.Assignment, error) {
	return nil, errStore
}

type staticIndex struct{ hits []entity.Assignment }

func (staticIndex) Index(context.Context, *entity.Assignment) error { return nil }

func (s staticIndex) Search(context.Context, string, int) ([]entity.Assignment, error) {
	return s.hits, nil
}

type downPinger struct{}

func (downPinger) Ping(context.Context) error { return errStore }

func newEngine(logger *logrus.Logger, svc *application.AssignmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAssignmentHandler(svc, logger)
	e := gin.New()
	e.GET("/assignments", h.List)
	e.GET("/assignments/search", h.Search)
	return e
}

func TestAssignmentList_StoreErrorIs500(t *testing.T) {
	logger, hook := test.NewNullLogger()
	svc := application.NewAssignmentService(brokenAssignments{memory.NewAssignmentRepository()}, nil, logger)

	apitest.New().Handler(newEngine(logger, svc)).
		Get("/assignments").
		Expect(t).
		Status(http.StatusInternalServerError).
		Assert(jsonpath.Equal(`$.success`, false)).
		End()

	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	}
}

func TestAssignmentSearch(t *testing.T) {
	logger, _ := test.NewNullLogger()
	idx := staticIndex{hits: []entity.Assignment{{ID: "a1", Situation: "work"}}}
	svc := application.NewAssignmentService(memory.NewAssignmentRepository(), idx, logger)
	e := newEngine(logger, svc)

	apitest.New().Handler(e).
		Get("/assignments/search").
		Query("q", "work").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$`, 1)).
		Assert(jsonpath.Equal(`$[0]._id`, "a1")).
		End()

	apitest.New().Handler(e).
		Get("/assignments/search").
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.error.q`, "is required")).
		End()
}

func TestHealth_Down(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()
	h := NewSystemHandler(downPinger{}, logger)
	e := gin.New()
	e.GET("/health", h.Health)

	apitest.New().Handler(e).
		Get("/health").
		Expect(t).
		Status(http.StatusServiceUnavailable).
		End()
}
