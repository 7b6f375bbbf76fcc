package http_auth_middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/kinolog/core/internal/delivery/http/common"
	"github.com/kinolog/core/internal/model"
	session_auth "github.com/kinolog/core/internal/service/auth/session"
)

const (
	tokenHeader = "X-user-token"

	// gin context key holding the resolved acting user id.
	ContextUserID = "user_id"
)

type Middleware struct {
	auth   *session_auth.Service
	logger *slog.Logger
}

func New(auth *session_auth.Service) *Middleware {
	return &Middleware{
		auth:   auth,
		logger: slog.Default(),
	}
}

// SessionRequired resolves the session token into an acting user id or
// aborts with 401.
func (m *Middleware) SessionRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := m.auth.Resolve(ctx.GetHeader(tokenHeader))
		if err != nil {
			m.logger.Warn("unauthenticated request",
				slog.String("path", ctx.FullPath()),
				slog.String("error", err.Error()))
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "unauthenticated",
			})
			ctx.Abort()
			return
		}

		ctx.Set(ContextUserID, userID)
		ctx.Next()
	}
}

// SessionOptional resolves the token when present and stays silent
// otherwise. Used by read endpoints that personalize for a viewer.
func (m *Middleware) SessionOptional() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if userID, err := m.auth.Resolve(ctx.GetHeader(tokenHeader)); err == nil {
			ctx.Set(ContextUserID, userID)
		}
		ctx.Next()
	}
}

// ActingUser reads the id stored by SessionRequired/SessionOptional.
func ActingUser(ctx *gin.Context) (model.UserID, bool) {
	v, ok := ctx.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	userID, ok := v.(model.UserID)
	return userID, ok
}
