package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mendly/mendly-backend/internal/application"
	"github.com/mendly/mendly-backend/internal/domain/entity"
	"github.com/mendly/mendly-backend/pkg/response"
)

// PrincipalKey is the gin context key holding the authenticated *entity.Principal.
const PrincipalKey = "principal"

// Authenticator resolves a bearer token to a principal of one kind.
type Authenticator interface {
	Authenticate(ctx context.Context, kind entity.Kind, token string) (*entity.Principal, error)
}

// RequirePrincipal lets the request through only when the Authorization
// header carries the access token of a principal of the given kind.
func RequirePrincipal(auth Authenticator, kind entity.Kind, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		p, err := auth.Authenticate(c.Request.Context(), kind, token)
		if errors.Is(err, application.ErrUnauthorized) {
			response.Unauthorized(c)
			return
		}
		// A failed lookup says nothing about the token, so the client keeps it.
		if err != nil {
			if logger != nil {
				logger.WithError(err).WithFields(logrus.Fields{
					"kind":       kind,
					"request_id": c.GetString("request_id"),
				}).Error("authentication lookup failed")
			}
			response.Error(c, http.StatusServiceUnavailable, "authentication unavailable", nil)
			return
		}
		c.Set(PrincipalKey, p)
		c.Next()
	}
}

// CurrentPrincipal returns the principal set by RequirePrincipal.
func CurrentPrincipal(c *gin.Context) (*entity.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*entity.Principal)
	return p, ok
}

// The header holds the raw token; a "Bearer " scheme is accepted too.
func bearerToken(h string) string {
	h = strings.TrimSpace(h)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return h
}
