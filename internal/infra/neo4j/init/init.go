package infra_neo4j_init

import (
	"context"
	"log"
	"time"

	"github.com/humanbelnik/cinemate/internal/config"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const verifyTimeout = 10 * time.Second

// EstablishConn builds the driver. A malformed URI or auth setup is fatal;
// an unreachable server is only logged since graph reads then fail on
// their own and the document store keeps serving.
func EstablishConn(cfg config.Neo4j, timeout time.Duration) neo4j.DriverWithContext {
	driver, err := neo4j.NewDriverWithContext(
		cfg.URI,
		neo4j.BasicAuth(cfg.User, cfg.Password, ""),
		func(c *neo4j.Config) {
			c.SocketConnectTimeout = timeout
			c.ConnectionAcquisitionTimeout = timeout
		},
	)
	if err != nil {
		log.Fatal("neo4j driver init failed", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Printf("neo4j connectivity check failed, graph queries will error until it recovers: %v", err)
	}

	return driver
}
