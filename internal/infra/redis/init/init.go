package infra_redis_init

import (
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/cinemate/internal/config"
)

// EstablishConn dials the cache. An unreachable cache is logged and the
// client is still returned: every cache call then degrades to a miss and
// the pool reconnects once the server is back.
func EstablishConn(cfg config.RedisCache, timeout time.Duration) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	if err := client.Ping().Err(); err != nil {
		log.Printf("redis ping failed, serving without cache until it recovers: %v", err)
	}

	return client
}
