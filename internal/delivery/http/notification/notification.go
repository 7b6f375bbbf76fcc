package http_notification

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/kinolog/core/internal/delivery/http/common"
	http_auth_middleware "github.com/kinolog/core/internal/delivery/http/middleware/auth"
	usecase_notification "github.com/kinolog/core/internal/usecase/notification"
)

type Controller struct {
	usecase    *usecase_notification.Usecase
	middleware *http_auth_middleware.Middleware

	logger *slog.Logger
}

func New(usecase *usecase_notification.Usecase,
	middleware *http_auth_middleware.Middleware) *Controller {
	return &Controller{
		usecase:    usecase,
		middleware: middleware,
		logger:     slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	notifications.Use(c.middleware.SessionRequired())
	{
		notifications.GET("", c.list)
		notifications.PUT("/:id/read", c.markRead)
	}
}

// NotificationResponseDTO
type NotificationResponseDTO struct {
	ID            int64  `json:"id"`
	Message       string `json:"message"`
	Type          string `json:"type"`
	IsRead        bool   `json:"isRead"`
	CreatedAt     string `json:"createdAt"`
	SenderID      int64  `json:"senderId"`
	SenderName    string `json:"senderName"`
	SenderPicture string `json:"senderPicture"`
}

// @Summary List notifications
// @Description The acting user's ledger, newest first
// @Tags Notifications
// @Produce json
// @Success 200 {array} NotificationResponseDTO
// @Failure 401 {object} http_common.ErrorResponse "Unauthenticated"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Security UserToken
// @Router /notifications [get]
func (c *Controller) list(ctx *gin.Context) {
	userID, ok := http_auth_middleware.ActingUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthenticated"})
		return
	}

	notifications, err := c.usecase.List(ctx, userID)
	if err != nil {
		c.logger.Error("failed to list notifications",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	resp := make([]NotificationResponseDTO, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, NotificationResponseDTO{
			ID:            n.ID,
			Message:       n.Message,
			Type:          n.Type,
			IsRead:        n.IsRead,
			CreatedAt:     n.CreatedAt.Format(time.RFC3339),
			SenderID:      n.SenderID,
			SenderName:    n.SenderName,
			SenderPicture: n.SenderAvatar,
		})
	}

	ctx.JSON(http.StatusOK, resp)
}

// @Summary Mark a notification read
// @Description Only the recipient may flip the flag; repeating is a no-op
// @Tags Notifications
// @Param id path int true "Notification identifier"
// @Success 204 "Marked"
// @Failure 400 {object} http_common.ErrorResponse "Bad id"
// @Failure 401 {object} http_common.ErrorResponse "Unauthenticated"
// @Failure 403 {object} http_common.ErrorResponse "Not the recipient"
// @Failure 404 {object} http_common.ErrorResponse "No such notification"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Security UserToken
// @Router /notifications/{id}/read [put]
func (c *Controller) markRead(ctx *gin.Context) {
	userID, ok := http_auth_middleware.ActingUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthenticated"})
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid notification id"})
		return
	}

	if err := c.usecase.MarkRead(ctx, userID, id); err != nil {
		c.logger.Error("failed to mark notification read",
			slog.Int64("user_id", userID),
			slog.Int64("notification_id", id),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_notification.ErrResourceNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		case errors.Is(err, usecase_notification.ErrForbidden):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{Message: "forbidden"})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}
