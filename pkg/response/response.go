package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope used for every error body.
type APIResponse struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Error     interface{} `json:"error,omitempty"`
	// LoggedOut tells the client to drop its stored token.
	LoggedOut bool `json:"loggedOut,omitempty"`
}

func newError(ctx *gin.Context, status int, message string, err interface{}) APIResponse {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     err,
	}
}

// Error writes an error envelope and aborts the handler chain.
func Error(ctx *gin.Context, status int, message string, err interface{}) {
	resp := newError(ctx, status, message, err)
	ctx.AbortWithStatusJSON(resp.Status, resp)
}

// Unauthorized is the 401 body for a missing or unknown bearer token.
func Unauthorized(ctx *gin.Context) {
	resp := newError(ctx, http.StatusUnauthorized, "not authorized", nil)
	resp.LoggedOut = true
	ctx.AbortWithStatusJSON(resp.Status, resp)
}

// JSON writes body as is. Successful responses keep the raw resource shape.
func JSON(ctx *gin.Context, status int, body any) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, body)
}
