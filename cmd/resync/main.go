package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/humanbelnik/cinemate/internal/app"
	"github.com/humanbelnik/cinemate/internal/config"
	usecase_graph "github.com/humanbelnik/cinemate/internal/usecase/graph"
)

// resync replays the document store into the graph store. With -recompute
// the movie rating aggregates are first rebuilt from the reviews.
func main() {
	recompute := flag.Bool("recompute", false, "rebuild rating aggregates from reviews first")
	cfg := config.Load()

	logger := app.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores := app.MustOpenStores(ctx, cfg, logger)
	defer stores.Close()

	graphUC := usecase_graph.New(stores.Graph, stores.Movies, stores.Reviews, usecase_graph.WithLogger(logger))

	report, err := graphUC.Resync(ctx, *recompute)
	if err != nil {
		stores.Close()
		log.Fatalf("resync failed after %d movies: %v", report.Movies, err)
	}
	if report.Failed > 0 {
		logger.Warn("some movies did not reach the graph", slog.Int("failed", report.Failed))
	}
}
