package ws_notify

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	http_common "github.com/kinolog/core/internal/delivery/http/common"
	session_auth "github.com/kinolog/core/internal/service/auth/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Controller struct {
	hub  *Hub
	auth *session_auth.Service

	logger *slog.Logger
}

func NewController(hub *Hub, auth *session_auth.Service) *Controller {
	return &Controller{
		hub:    hub,
		auth:   auth,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/notifications/ws", c.connect)
}

// connect upgrades the request and keeps the socket registered under the
// recipient's identity until either side closes it.
func (c *Controller) connect(ctx *gin.Context) {
	token := ctx.Query("token")
	if token == "" {
		token = ctx.GetHeader("X-user-token")
	}

	userID, err := c.auth.Resolve(token)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "unauthorized",
		})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		return
	}

	client := NewClient(c.hub, conn, userID)
	c.hub.Register(client)

	go c.hub.StartClientWriting(client)
	go c.hub.StartClientReading(client)
}
