package infra_mongo_init

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/humanbelnik/cinemate/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

func URI(cfg config.Mongo) string {
	host := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	if cfg.User == "" {
		return "mongodb://" + host
	}
	return fmt.Sprintf("mongodb://%s@%s", url.UserPassword(cfg.User, cfg.Password).String(), host)
}

func MustEstablishConn(cfg config.Mongo) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(URI(cfg)))
	if err != nil {
		log.Fatal("mongo connect failed", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("mongo ping failed", err)
	}

	return client
}
