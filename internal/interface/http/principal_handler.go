package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mendly/mendly-backend/internal/application"
	"github.com/mendly/mendly-backend/internal/domain/entity"
	"github.com/mendly/mendly-backend/internal/interface/middleware"
	"github.com/mendly/mendly-backend/pkg/response"
	"github.com/mendly/mendly-backend/pkg/validation"
)

const loggedInMessage = "you are logged in"

type PrincipalHandler struct {
	Svc    *application.PrincipalService
	Logger *logrus.Logger
}

func NewPrincipalHandler(svc *application.PrincipalService, logger *logrus.Logger) *PrincipalHandler {
	return &PrincipalHandler{Svc: svc, Logger: logger}
}

type userSignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type adminSignupRequest struct {
	Adminname string `json:"adminname" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// Missing fields are not a 400 here; they just fail the credential check.
type loginRequest struct {
	Username  string `json:"username"`
	Adminname string `json:"adminname"`
	Password  string `json:"password"`
}

func (r loginRequest) name(kind entity.Kind) string {
	if kind == entity.KindAdmin {
		return r.Adminname
	}
	return r.Username
}

func (h *PrincipalHandler) SignupUser(c *gin.Context) {
	var req userSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "could not create user", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.CreateUser(c.Request.Context(), req.Username, req.Email, req.Password)
	h.created(c, entity.KindUser, p, err)
}

func (h *PrincipalHandler) SignupAdmin(c *gin.Context) {
	var req adminSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "could not create admin", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.CreateAdmin(c.Request.Context(), req.Adminname, req.Password)
	h.created(c, entity.KindAdmin, p, err)
}

func (h *PrincipalHandler) created(c *gin.Context, kind entity.Kind, p *entity.Principal, err error) {
	msg := "could not create " + kind.String()
	var fe *application.FieldError
	switch {
	case err == nil:
		response.JSON(c, http.StatusCreated, p)
	case errors.As(err, &fe):
		response.Error(c, http.StatusBadRequest, msg, fe.Details())
	case errors.Is(err, entity.ErrConflict):
		response.Error(c, http.StatusBadRequest, msg, map[string]string{kind.NameField(): "already exists"})
	default:
		h.Logger.WithError(err).WithField("kind", kind).Error("create principal failed")
		response.Error(c, http.StatusInternalServerError, msg, nil)
	}
}

// Login returns the handler for POST /userlogin or /adminlogin.
func (h *PrincipalHandler) Login(kind entity.Kind) gin.HandlerFunc {
	failed := "login failed, " + kind.NameField() + " or password incorrect"
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
			return
		}
		p, err := h.Svc.Login(c.Request.Context(), kind, req.name(kind), req.Password)
		if err != nil {
			if !errors.Is(err, application.ErrInvalidCredentials) {
				h.Logger.WithError(err).WithField("kind", kind).Error("login lookup failed")
			}
			response.Error(c, http.StatusUnauthorized, failed, nil)
			return
		}
		response.JSON(c, http.StatusOK, gin.H{
			kind.NameField(): p.Name,
			kind.IDField():   p.ID,
			"accessToken":    p.AccessToken,
			"message":        loggedInMessage,
		})
	}
}

// Home answers /userhome and /adminhome behind RequirePrincipal.
func (h *PrincipalHandler) Home(c *gin.Context) {
	if _, ok := middleware.CurrentPrincipal(c); !ok {
		response.Unauthorized(c)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "success", "message": loggedInMessage})
}

func (h *PrincipalHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context(), entity.KindUser)
	if err != nil {
		h.serverError(c, "list users failed", err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

func (h *PrincipalHandler) FindUsersByToken(c *gin.Context) {
	users, err := h.Svc.ListByToken(c.Request.Context(), entity.KindUser, c.Param("accessToken"))
	if err != nil {
		h.serverError(c, "find users failed", err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

func (h *PrincipalHandler) serverError(c *gin.Context, msg string, err error) {
	h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(msg)
	response.Error(c, http.StatusInternalServerError, msg, nil)
}
