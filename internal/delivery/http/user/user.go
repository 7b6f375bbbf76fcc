package http_user

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/kinolog/core/internal/delivery/http/common"
	http_auth_middleware "github.com/kinolog/core/internal/delivery/http/middleware/auth"
	usecase_interaction "github.com/kinolog/core/internal/usecase/interaction"
)

type Controller struct {
	usecase    *usecase_interaction.Usecase
	middleware *http_auth_middleware.Middleware

	logger *slog.Logger
}

func New(usecase *usecase_interaction.Usecase,
	middleware *http_auth_middleware.Middleware) *Controller {
	return &Controller{
		usecase:    usecase,
		middleware: middleware,
		logger:     slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/:id", c.middleware.SessionOptional(), c.profile)
		users.POST("/:id/follow", c.middleware.SessionRequired(), c.follow)
		users.POST("/:id/unfollow", c.middleware.SessionRequired(), c.unfollow)
	}
}

// ProfileResponseDTO
type ProfileResponseDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Bio            string `json:"bio"`
	Picture        string `json:"picture"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
	FilmsCount     int    `json:"filmsCount"`
	IsFollowing    bool   `json:"isFollowing"`
}

// MessageResponseDTO
type MessageResponseDTO struct {
	Message string `json:"message"`
}

// @Summary User profile
// @Description Profile fields plus follower/following/film counts; isFollowing is relative to the acting user when a session is present
// @Tags Users
// @Produce json
// @Param id path int true "User identifier"
// @Success 200 {object} ProfileResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Bad user id"
// @Failure 404 {object} http_common.ErrorResponse "User not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /users/{id} [get]
func (c *Controller) profile(ctx *gin.Context) {
	targetID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid user id"})
		return
	}

	user, err := c.usecase.UserProfile(ctx, targetID)
	if err != nil {
		c.respondError(ctx, "failed to load profile", err)
		return
	}

	followers, err := c.usecase.FollowerCount(ctx, targetID)
	if err != nil {
		c.respondError(ctx, "failed to count followers", err)
		return
	}
	following, err := c.usecase.FollowingCount(ctx, targetID)
	if err != nil {
		c.respondError(ctx, "failed to count following", err)
		return
	}
	films, err := c.usecase.UserReviewCount(ctx, targetID)
	if err != nil {
		c.respondError(ctx, "failed to count reviews", err)
		return
	}

	isFollowing := false
	if viewerID, ok := http_auth_middleware.ActingUser(ctx); ok && viewerID != targetID {
		isFollowing, err = c.usecase.IsFollowing(ctx, viewerID, targetID)
		if err != nil {
			c.respondError(ctx, "failed to check follow state", err)
			return
		}
	}

	ctx.JSON(http.StatusOK, ProfileResponseDTO{
		ID:             user.ID,
		Name:           user.Name,
		Bio:            user.Bio,
		Picture:        user.AvatarURL,
		FollowersCount: followers,
		FollowingCount: following,
		FilmsCount:     films,
		IsFollowing:    isFollowing,
	})
}

// @Summary Follow a user
// @Description Creates the follow edge and notifies the followee; repeating it is a no-op
// @Tags Users
// @Produce json
// @Param id path int true "User to follow"
// @Success 200 {object} MessageResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Self-follow or bad id"
// @Failure 401 {object} http_common.ErrorResponse "Unauthenticated"
// @Failure 404 {object} http_common.ErrorResponse "User not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Security UserToken
// @Router /users/{id}/follow [post]
func (c *Controller) follow(ctx *gin.Context) {
	actorID, ok := http_auth_middleware.ActingUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthenticated"})
		return
	}

	targetID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid user id"})
		return
	}

	if err := c.usecase.Follow(ctx, actorID, targetID); err != nil {
		if errors.Is(err, usecase_interaction.ErrSelfFollow) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "cannot follow yourself"})
			return
		}
		c.respondError(ctx, "failed to follow", err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponseDTO{Message: "followed successfully"})
}

// @Summary Unfollow a user
// @Description Removes the follow edge; absent edge is a no-op
// @Tags Users
// @Produce json
// @Param id path int true "User to unfollow"
// @Success 200 {object} MessageResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Self-unfollow or bad id"
// @Failure 401 {object} http_common.ErrorResponse "Unauthenticated"
// @Failure 404 {object} http_common.ErrorResponse "User not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Security UserToken
// @Router /users/{id}/unfollow [post]
func (c *Controller) unfollow(ctx *gin.Context) {
	actorID, ok := http_auth_middleware.ActingUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthenticated"})
		return
	}

	targetID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid user id"})
		return
	}

	if err := c.usecase.Unfollow(ctx, actorID, targetID); err != nil {
		if errors.Is(err, usecase_interaction.ErrSelfFollow) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "cannot unfollow yourself"})
			return
		}
		c.respondError(ctx, "failed to unfollow", err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponseDTO{Message: "unfollowed successfully"})
}

func (c *Controller) respondError(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg, slog.String("error", err.Error()))
	if errors.Is(err, usecase_interaction.ErrResourceNotFound) {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{Message: "not found"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
}
