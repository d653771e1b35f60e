package http_recommend

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinemate/internal/delivery/http/common"
	usecase_recommend "github.com/humanbelnik/cinemate/internal/usecase/recommend"
)

// Controller serves the document store recommendations.
type Controller struct {
	uc *usecase_recommend.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_recommend.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	recs := router.Group("/movies/recommendations")
	recs.GET("/popular", c.popular)
	recs.GET("/genre/:genre", c.byGenre)
	recs.GET("/similar/:movie_id", c.similar)
	recs.GET("/random", c.random)
}

// @Summary Popular movies
// @Description Best rated movies with enough reviews
// @Tags Recommendations
// @Produce json
// @Param limit query int false "max results" default(10)
// @Router /movies/recommendations/popular [get]
func (c *Controller) popular(ctx *gin.Context) {
	limit, ok := c.limit(ctx, usecase_recommend.DefaultLimit)
	if !ok {
		return
	}

	movies, err := c.uc.Popular(ctx.Request.Context(), limit)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to load popular movies", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"movies": movies, "recommendation_type": "popular", "count": len(movies)})
}

func (c *Controller) byGenre(ctx *gin.Context) {
	limit, ok := c.limit(ctx, usecase_recommend.DefaultLimit)
	if !ok {
		return
	}

	genre := ctx.Param("genre")
	movies, err := c.uc.ByGenre(ctx.Request.Context(), genre, limit)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to load movies by genre", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"movies": movies, "genre": genre, "count": len(movies)})
}

func (c *Controller) similar(ctx *gin.Context) {
	limit, ok := c.limit(ctx, usecase_recommend.DefaultSimilarLimit)
	if !ok {
		return
	}

	id := ctx.Param("movie_id")
	movies, err := c.uc.SimilarByGenreAndRating(ctx.Request.Context(), id, limit)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to load similar movies", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"movies": movies, "movie_id": id, "count": len(movies)})
}

func (c *Controller) random(ctx *gin.Context) {
	limit, ok := c.limit(ctx, usecase_recommend.DefaultLimit)
	if !ok {
		return
	}

	movies, err := c.uc.Random(ctx.Request.Context(), limit)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to sample movies", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"movies": movies, "recommendation_type": "random", "count": len(movies)})
}

func (c *Controller) limit(ctx *gin.Context, def int64) (int64, bool) {
	limit, err := http_common.QueryInt64(ctx, "limit", def)
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return 0, false
	}
	return limit, true
}
