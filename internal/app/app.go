package app

import (
	"time"

	"github.com/kinolog/core/internal/config"
	http_auth "github.com/kinolog/core/internal/delivery/http/auth"
	http_init "github.com/kinolog/core/internal/delivery/http/init"
	http_auth_middleware "github.com/kinolog/core/internal/delivery/http/middleware/auth"
	http_notification "github.com/kinolog/core/internal/delivery/http/notification"
	http_review "github.com/kinolog/core/internal/delivery/http/review"
	http_swagger "github.com/kinolog/core/internal/delivery/http/swagger"
	http_user "github.com/kinolog/core/internal/delivery/http/user"
	ws_notify "github.com/kinolog/core/internal/delivery/ws/notify"
	infra_postgres_follow "github.com/kinolog/core/internal/infra/postgres/follow"
	infra_pg_init "github.com/kinolog/core/internal/infra/postgres/init"
	infra_postgres_like "github.com/kinolog/core/internal/infra/postgres/like"
	infra_postgres_notification "github.com/kinolog/core/internal/infra/postgres/notification"
	infra_postgres_review "github.com/kinolog/core/internal/infra/postgres/review"
	infra_postgres_user "github.com/kinolog/core/internal/infra/postgres/user"
	infra_redis_init "github.com/kinolog/core/internal/infra/redis/init"
	infra_session_cache "github.com/kinolog/core/internal/infra/redis/session"
	session_auth "github.com/kinolog/core/internal/service/auth/session"
	usecase_interaction "github.com/kinolog/core/internal/usecase/interaction"
	usecase_notification "github.com/kinolog/core/internal/usecase/notification"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	reviewRepository := infra_postgres_review.New(pgConn)
	likeRepository := infra_postgres_like.New(pgConn)
	followRepository := infra_postgres_follow.New(pgConn)
	notificationRepository := infra_postgres_notification.New(pgConn)
	userRepository := infra_postgres_user.New(pgConn)

	sessionTTL, err := time.ParseDuration(cfg.Auth.SessionTTL)
	if err != nil {
		sessionTTL = 24 * time.Hour
	}
	sessionCache := infra_session_cache.New(redisConn, "session_cache")
	authService := session_auth.New(cfg.Auth.Secret, sessionCache, userRepository, sessionTTL)
	authMiddleware := http_auth_middleware.New(authService)

	hub := ws_notify.NewHub()

	interactionUC := usecase_interaction.New(
		reviewRepository,
		likeRepository,
		followRepository,
		userRepository,
		hub,
	)
	notificationUC := usecase_notification.New(notificationRepository)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_auth.New(authService))
	controllerPool.Add(http_review.New(interactionUC, authMiddleware))
	controllerPool.Add(http_user.New(interactionUC, authMiddleware))
	controllerPool.Add(http_notification.New(notificationUC, authMiddleware))
	controllerPool.Add(ws_notify.NewController(hub, authService))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
