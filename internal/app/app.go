package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/humanbelnik/cinemate/docs"
	"github.com/humanbelnik/cinemate/internal/config"
	http_graph "github.com/humanbelnik/cinemate/internal/delivery/http/graph"
	http_health "github.com/humanbelnik/cinemate/internal/delivery/http/health"
	http_init "github.com/humanbelnik/cinemate/internal/delivery/http/init"
	http_access_middleware "github.com/humanbelnik/cinemate/internal/delivery/http/middleware/access"
	http_auth_middleware "github.com/humanbelnik/cinemate/internal/delivery/http/middleware/auth"
	http_metrics_middleware "github.com/humanbelnik/cinemate/internal/delivery/http/middleware/metrics"
	http_movie "github.com/humanbelnik/cinemate/internal/delivery/http/movie"
	http_recommend "github.com/humanbelnik/cinemate/internal/delivery/http/recommend"
	http_review "github.com/humanbelnik/cinemate/internal/delivery/http/review"
	http_swagger "github.com/humanbelnik/cinemate/internal/delivery/http/swagger"
	http_user "github.com/humanbelnik/cinemate/internal/delivery/http/user"
	service_session "github.com/humanbelnik/cinemate/internal/service/session"
	usecase_graph "github.com/humanbelnik/cinemate/internal/usecase/graph"
	usecase_movie "github.com/humanbelnik/cinemate/internal/usecase/movie"
	usecase_recommend "github.com/humanbelnik/cinemate/internal/usecase/recommend"
	usecase_review "github.com/humanbelnik/cinemate/internal/usecase/review"
	usecase_user "github.com/humanbelnik/cinemate/internal/usecase/user"
)

func Go(cfg *config.Config) {
	logger := NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores := MustOpenStores(ctx, cfg, logger)
	defer stores.Close()

	graphUC := usecase_graph.New(stores.Graph, stores.Movies, stores.Reviews, usecase_graph.WithLogger(logger))
	movieUC := usecase_movie.New(stores.Movies, stores.Cache, graphUC)
	recommendUC := usecase_recommend.New(stores.Movies, stores.Graph, stores.Cache,
		usecase_recommend.WithPopularMinReviews(cfg.Recommend.PopularMinReviews),
		usecase_recommend.WithSharedTimeout(cfg.Timeouts.Store+cfg.Timeouts.Cache),
		usecase_recommend.WithLogger(logger),
	)
	reviewUC := usecase_review.New(stores.Reviews, stores.Movies, stores.Cache, graphUC, usecase_review.WithLogger(logger))

	sessions := service_session.New(stores.Cache, nil)
	userUC := usecase_user.New(stores.Users, stores.Movies, sessions, graphUC)
	authMiddleware := http_auth_middleware.New(sessions)

	controllerPool := http_init.NewControllerPool(cfg.HTTP,
		http_init.WithLogger(logger),
		http_init.WithMiddleware(
			http_metrics_middleware.Observe(),
			http_access_middleware.ReadOnlyBadGatewayMiddleware(cfg.HTTP.Mode),
		),
	)
	controllerPool.Add(http_health.New(map[string]http_health.Pinger{
		"mongo": stores.Documents,
		"redis": stores.Cache,
		"neo4j": stores.Graph,
	}))
	controllerPool.Add(http_swagger.New())
	controllerPool.Add(http_movie.New(movieUC, http_movie.WithLogger(logger)))
	controllerPool.Add(http_recommend.New(recommendUC, http_recommend.WithLogger(logger)))
	controllerPool.Add(http_graph.New(recommendUC, graphUC, http_graph.WithLogger(logger)))
	controllerPool.Add(http_user.New(userUC, authMiddleware, http_user.WithLogger(logger)))
	controllerPool.Add(http_review.New(reviewUC, http_review.WithLogger(logger)))

	controllerPool.Register()
	controllerPool.RunAll(ctx)
}
