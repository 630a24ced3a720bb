package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mendly/mendly-backend/internal/application"
	"github.com/mendly/mendly-backend/internal/domain/entity"
	"github.com/mendly/mendly-backend/pkg/response"
	"github.com/mendly/mendly-backend/pkg/validation"
)

type AssignmentHandler struct {
	Svc    *application.AssignmentService
	Logger *logrus.Logger
}

func NewAssignmentHandler(svc *application.AssignmentService, logger *logrus.Logger) *AssignmentHandler {
	return &AssignmentHandler{Svc: svc, Logger: logger}
}

// Both create and update send the whole record, so complete is required.
type assignmentRequest struct {
	Situation    string `json:"situation"`
	Tanke        string `json:"tanke"`
	Kansla       string `json:"kansla"`
	Kropp        string `json:"kropp"`
	Lukt         string `json:"lukt"`
	AssignmentID string `json:"assignmentId"`
	Complete     *bool  `json:"complete" binding:"required"`
}

func (r assignmentRequest) input() application.AssignmentInput {
	return application.AssignmentInput{
		Situation: r.Situation, Tanke: r.Tanke, Kansla: r.Kansla, Kropp: r.Kropp, Lukt: r.Lukt,
		AssignmentID: r.AssignmentID, Complete: *r.Complete,
	}
}

func (h *AssignmentHandler) Create(c *gin.Context) {
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "could not create assignment", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		h.serverError(c, "could not create assignment", err)
		return
	}
	response.JSON(c, http.StatusCreated, a)
}

func (h *AssignmentHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "could not list assignments", err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *AssignmentHandler) ListByAssignmentID(c *gin.Context) {
	items, err := h.Svc.ListByAssignmentID(c.Request.Context(), c.Param("assignmentId"))
	if err != nil {
		h.serverError(c, "could not list assignments", err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *AssignmentHandler) Update(c *gin.Context) {
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "could not update assignment", validation.ToDetails(err))
		return
	}
	a, err := h.Svc.Update(c.Request.Context(), c.Param("_id"), req.input())
	var fe *application.FieldError
	switch {
	case err == nil:
		response.JSON(c, http.StatusOK, a)
	case errors.As(err, &fe):
		response.Error(c, http.StatusBadRequest, "could not update assignment", fe.Details())
	case errors.Is(err, entity.ErrNotFound):
		response.Error(c, http.StatusNotFound, "assignment not found", nil)
	default:
		h.serverError(c, "could not update assignment", err)
	}
}

func (h *AssignmentHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	items, err := h.Svc.Search(c.Request.Context(), c.Query("q"), size)
	var fe *application.FieldError
	switch {
	case err == nil:
		response.JSON(c, http.StatusOK, items)
	case errors.As(err, &fe):
		response.Error(c, http.StatusBadRequest, "invalid search", fe.Details())
	case errors.Is(err, application.ErrSearchDisabled):
		response.Error(c, http.StatusServiceUnavailable, err.Error(), nil)
	default:
		h.serverError(c, "search failed", err)
	}
}

func (h *AssignmentHandler) serverError(c *gin.Context, msg string, err error) {
	h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(msg)
	response.Error(c, http.StatusInternalServerError, msg, nil)
}
