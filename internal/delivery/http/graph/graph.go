package http_graph

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinemate/internal/delivery/http/common"
	"github.com/humanbelnik/cinemate/internal/model"
	usecase_graph "github.com/humanbelnik/cinemate/internal/usecase/graph"
	usecase_recommend "github.com/humanbelnik/cinemate/internal/usecase/recommend"
)

type MovieNodeRequestDTO struct {
	Title      string  `json:"title" binding:"required"`
	Year       int     `json:"year" binding:"gte=0"`
	AvgRating  float64 `json:"avg_rating" binding:"gte=0"`
	NumReviews int     `json:"num_reviews" binding:"gte=0"`
}

type GenresRequestDTO struct {
	Genres []string `json:"genres" binding:"required,min=1"`
}

type Controller struct {
	recommend *usecase_recommend.Usecase
	graph     *usecase_graph.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	recommend *usecase_recommend.Usecase,
	graph *usecase_graph.Usecase,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		recommend: recommend,
		graph:     graph,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	g := router.Group("/graph")
	g.GET("/similar/:movie_id", c.similar)
	g.GET("/recommendations/:user_id", c.userRecommendations)
	g.GET("/popular-genres", c.popularGenres)
	g.GET("/shortest-path/:from_id/:to_id", c.shortestPath)

	g.POST("/movie/:movie_id", c.createMovie)
	g.POST("/movie/:movie_id/genres", c.linkGenres)
	g.POST("/user/:user_id", c.createUser)
	g.POST("/rating/:user_id/:movie_id", c.createRating)
	g.POST("/resync", c.resync)
}

// @Summary Movies sharing genres
// @Description Ranked by the number of shared genres, then by rating
// @Tags Graph
// @Produce json
// @Param movie_id path string true "movie id"
// @Param limit query int false "max results" default(5)
// @Router /graph/similar/{movie_id} [get]
func (c *Controller) similar(ctx *gin.Context) {
	limit, err := http_common.QueryInt64(ctx, "limit", usecase_recommend.DefaultSimilarLimit)
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	id := ctx.Param("movie_id")
	movies, err := c.recommend.GraphSimilar(ctx.Request.Context(), id, limit)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to query similar movies", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"similar_movies": movies, "movie_id": id, "count": len(movies)})
}

func (c *Controller) userRecommendations(ctx *gin.Context) {
	limit, err := http_common.QueryInt64(ctx, "limit", usecase_recommend.DefaultSimilarLimit)
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	id := ctx.Param("user_id")
	movies, err := c.recommend.UserRecommendations(ctx.Request.Context(), id, limit)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to query recommendations", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"recommendations": movies, "user_id": id, "count": len(movies)})
}

func (c *Controller) popularGenres(ctx *gin.Context) {
	limit, err := http_common.QueryInt64(ctx, "limit", usecase_recommend.DefaultLimit)
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	genres, err := c.recommend.PopularGenres(ctx.Request.Context(), limit)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to query genres", err)
		return
	}
	if genres == nil {
		genres = []model.GenrePopularity{}
	}
	ctx.JSON(http.StatusOK, gin.H{"popular_genres": genres, "count": len(genres)})
}

func (c *Controller) shortestPath(ctx *gin.Context) {
	from, to := ctx.Param("from_id"), ctx.Param("to_id")

	path, err := c.recommend.ShortestPath(ctx.Request.Context(), from, to)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to query path", err)
		return
	}
	if path.Steps == nil {
		path.Steps = []model.PathStep{}
	}
	ctx.JSON(http.StatusOK, gin.H{"shortest_path": path, "movie1_id": from, "movie2_id": to})
}

func (c *Controller) createMovie(ctx *gin.Context) {
	var req MovieNodeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	id := ctx.Param("movie_id")
	err := c.graph.AddMovie(ctx.Request.Context(), model.GraphMovie{
		ID:         id,
		Title:      req.Title,
		Year:       req.Year,
		AvgRating:  req.AvgRating,
		NumReviews: req.NumReviews,
	})
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to create movie node", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Movie node created successfully", "movie_id": id})
}

func (c *Controller) linkGenres(ctx *gin.Context) {
	var req GenresRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	id := ctx.Param("movie_id")
	if err := c.graph.LinkGenres(ctx.Request.Context(), id, req.Genres); err != nil {
		http_common.Fail(ctx, c.logger, "Failed to link genres", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Genre relationships created successfully",
		"movie_id": id,
		"genres":   req.Genres,
	})
}

func (c *Controller) createUser(ctx *gin.Context) {
	id, username := ctx.Param("user_id"), ctx.Query("username")

	if err := c.graph.AddUser(ctx.Request.Context(), id, username); err != nil {
		http_common.Fail(ctx, c.logger, "Failed to create user node", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "User " + username + " created successfully", "user_id": id})
}

func (c *Controller) createRating(ctx *gin.Context) {
	userID, movieID := ctx.Param("user_id"), ctx.Param("movie_id")

	rating, err := strconv.Atoi(ctx.Query("rating"))
	if err != nil {
		http_common.BadRequest(ctx, c.logger, "rating must be an integer")
		return
	}

	if err := c.graph.AddRating(ctx.Request.Context(), userID, movieID, rating); err != nil {
		http_common.Fail(ctx, c.logger, "Failed to create rating", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Rating created successfully",
		"user_id":  userID,
		"movie_id": movieID,
		"rating":   rating,
	})
}

// resync replays the catalog into the graph. With recompute=true the rating
// aggregates are rebuilt from reviews first.
func (c *Controller) resync(ctx *gin.Context) {
	recompute := ctx.Query("recompute") == "true"

	report, err := c.graph.Resync(ctx.Request.Context(), recompute)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to resync graph", err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}
