package app

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/cinemate/internal/config"
	infra_mongo_init "github.com/humanbelnik/cinemate/internal/infra/mongo/init"
	infra_mongo_movie "github.com/humanbelnik/cinemate/internal/infra/mongo/movie"
	infra_mongo_review "github.com/humanbelnik/cinemate/internal/infra/mongo/review"
	infra_mongo_store "github.com/humanbelnik/cinemate/internal/infra/mongo/store"
	infra_mongo_user "github.com/humanbelnik/cinemate/internal/infra/mongo/user"
	infra_neo4j_graph "github.com/humanbelnik/cinemate/internal/infra/neo4j/graph"
	infra_neo4j_init "github.com/humanbelnik/cinemate/internal/infra/neo4j/init"
	infra_redis_cache "github.com/humanbelnik/cinemate/internal/infra/redis/cache"
	infra_redis_init "github.com/humanbelnik/cinemate/internal/infra/redis/init"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	cacheNamespace = "cinemate"
	closeTimeout   = 5 * time.Second
)

// Stores holds the process-wide clients and the adapters built on them.
type Stores struct {
	mongo *mongo.Client
	redis *redis.Client

	Documents *infra_mongo_store.Store
	Movies    *infra_mongo_movie.Repository
	Reviews   *infra_mongo_review.Repository
	Users     *infra_mongo_user.Repository
	Cache     *infra_redis_cache.Driver
	Graph     *infra_neo4j_graph.Store
}

// MustOpenStores connects every store. Only the document store is required
// to be up; the cache and the graph degrade on their own.
func MustOpenStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) *Stores {
	mongoConn := infra_mongo_init.MustEstablishConn(cfg.Mongo)
	redisConn := infra_redis_init.EstablishConn(cfg.Redis, cfg.Timeouts.Cache)
	neo4jConn := infra_neo4j_init.EstablishConn(cfg.Neo4j, cfg.Timeouts.Store)

	documents := infra_mongo_store.New(mongoConn.Database(cfg.Mongo.DBName), cfg.Timeouts.Store)
	if err := documents.EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure mongo indexes: %v", err)
	}

	graphOpts := []infra_neo4j_graph.Option{infra_neo4j_graph.WithLogger(logger)}
	if cfg.Neo4j.Database != "" {
		graphOpts = append(graphOpts, infra_neo4j_graph.WithDatabase(cfg.Neo4j.Database))
	}

	return &Stores{
		mongo:     mongoConn,
		redis:     redisConn,
		Documents: documents,
		Movies:    infra_mongo_movie.New(documents),
		Reviews:   infra_mongo_review.New(documents),
		Users:     infra_mongo_user.New(documents),
		Cache:     infra_redis_cache.New(redisConn, cacheNamespace, infra_redis_cache.WithLogger(logger)),
		Graph:     infra_neo4j_graph.New(neo4jConn, cfg.Timeouts.Store, graphOpts...),
	}
}

func (s *Stores) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := s.Graph.Close(ctx); err != nil {
		slog.Error("neo4j close", slog.String("error", err.Error()))
	}
	if err := s.redis.Close(); err != nil {
		slog.Error("redis close", slog.String("error", err.Error()))
	}
	if err := s.mongo.Disconnect(ctx); err != nil {
		slog.Error("mongo disconnect", slog.String("error", err.Error()))
	}
}

// NewLogger builds the JSON logger used by every binary.
func NewLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
