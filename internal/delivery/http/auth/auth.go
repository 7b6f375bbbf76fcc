package http_auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/kinolog/core/internal/delivery/http/common"
	session_auth "github.com/kinolog/core/internal/service/auth/session"
)

type Controller struct {
	service *session_auth.Service
	logger  *slog.Logger
}

func New(service *session_auth.Service) *Controller {
	return &Controller{
		service: service,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("", c.start)
}

// AuthRequestDTO
type AuthRequestDTO struct {
	Code   string `json:"code" binding:"required"`
	UserID int64  `json:"user_id" binding:"required"`
}

// @Summary Start a session
// @Description Exchanges the shared code and a known user id for a session token returned in X-user-token
// @Tags Auth operations
// @Accept json
// @Success 202
// @Header 202 {string} X-user-token "Session token"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request format"
// @Failure 403 {object} http_common.ErrorResponse "Wrong code"
// @Failure 404 {object} http_common.ErrorResponse "Unknown user"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /auth [post]
func (c *Controller) start(ctx *gin.Context) {
	var req AuthRequestDTO

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", "error", err)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	token, err := c.service.Start(ctx, req.Code, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, session_auth.ErrWrongCode):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{Message: "forbidden"})
		case errors.Is(err, session_auth.ErrUnknownUser):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "unknown user"})
		default:
			c.logger.Error("internal auth error", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		}
		return
	}

	ctx.Header("X-user-token", token)
	ctx.Status(http.StatusAccepted)
}
