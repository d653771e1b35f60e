package http_movie

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinemate/internal/delivery/http/common"
	"github.com/humanbelnik/cinemate/internal/model"
	usecase_movie "github.com/humanbelnik/cinemate/internal/usecase/movie"
)

// CreateMovieRequestDTO is the body of a new catalog entry. Ratings are not
// accepted here; they only come from reviews.
type CreateMovieRequestDTO struct {
	Title       string   `json:"title" binding:"required" example:"Heat"`
	Year        int      `json:"year" binding:"gte=0" example:"1995"`
	Genres      []string `json:"genres" example:"Crime,Drama"`
	Description string   `json:"description" example:"A group of professional bank robbers..."`
	Director    string   `json:"director" example:"Michael Mann"`
	Cast        []string `json:"cast"`
	PosterURL   string   `json:"poster_url" binding:"omitempty,url"`
	Tagline     string   `json:"tagline"`
	Popularity  float64  `json:"popularity" binding:"gte=0"`
	Budget      int64    `json:"budget" binding:"gte=0"`
	Revenue     int64    `json:"revenue" binding:"gte=0"`
	Runtime     int      `json:"runtime" binding:"gte=0"`
	TMDBID      int64    `json:"tmdb_id"`
}

func (r *CreateMovieRequestDTO) ToMovie() model.Movie {
	return model.Movie{
		Title:       r.Title,
		Year:        r.Year,
		Genres:      r.Genres,
		Description: r.Description,
		Director:    r.Director,
		Cast:        r.Cast,
		PosterURL:   r.PosterURL,
		Tagline:     r.Tagline,
		Popularity:  r.Popularity,
		Budget:      r.Budget,
		Revenue:     r.Revenue,
		Runtime:     r.Runtime,
		TMDBID:      r.TMDBID,
	}
}

type MoviesPageResponseDTO struct {
	Movies  []model.Movie `json:"movies"`
	Total   int64         `json:"total"`
	Limit   int64         `json:"limit"`
	Skip    int64         `json:"skip"`
	HasMore bool          `json:"has_more"`
}

type SearchResponseDTO struct {
	Movies     []model.Movie `json:"movies"`
	SearchTerm string        `json:"search_term"`
	Count      int           `json:"count"`
}

type Controller struct {
	uc *usecase_movie.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_movie.Usecase, opts ...ControllerOption) *Controller {
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
	movies := router.Group("/movies")
	movies.GET("/", c.listMovies)
	movies.POST("/", c.createMovie)
	movies.GET("/count", c.countMovies)
	movies.GET("/genres/list", c.listGenres)
	movies.GET("/search/:title", c.searchMovies)
	movies.GET("/:movie_id", c.getMovie)

	analytics := movies.Group("/analytics")
	analytics.GET("/genre-stats", c.genreStats)
	analytics.GET("/yearly-trends", c.yearlyTrends)
	analytics.GET("/top-rated", c.topRated)
}

// @Summary List movies
// @Tags Movies
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param skip query int false "offset" default(0)
// @Success 200 {object} MoviesPageResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Router /movies/ [get]
func (c *Controller) listMovies(ctx *gin.Context) {
	limit, err := http_common.QueryInt64(ctx, "limit", usecase_movie.DefaultLimit)
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}
	skip, err := http_common.QueryInt64(ctx, "skip", 0)
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	page, err := c.uc.List(ctx.Request.Context(), skip, limit)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to load movies", err)
		return
	}

	ctx.JSON(http.StatusOK, MoviesPageResponseDTO{
		Movies:  nonNil(page.Movies),
		Total:   page.Total,
		Limit:   page.Limit,
		Skip:    page.Skip,
		HasMore: page.HasMore,
	})
}

// @Summary Create a movie
// @Tags Movies
// @Accept json
// @Produce json
// @Param request body CreateMovieRequestDTO true "movie"
// @Success 201 {object} model.Movie
// @Failure 400 {object} http_common.ErrorResponse
// @Router /movies/ [post]
func (c *Controller) createMovie(ctx *gin.Context) {
	var req CreateMovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	m, err := c.uc.Create(ctx.Request.Context(), req.ToMovie())
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to create movie", err)
		return
	}

	ctx.JSON(http.StatusCreated, m)
}

func (c *Controller) countMovies(ctx *gin.Context) {
	n, err := c.uc.Count(ctx.Request.Context())
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to count movies", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"total_movies": n})
}

func (c *Controller) listGenres(ctx *gin.Context) {
	genres, err := c.uc.Genres(ctx.Request.Context())
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to load genres", err)
		return
	}
	if genres == nil {
		genres = []string{}
	}
	ctx.JSON(http.StatusOK, gin.H{"genres": genres, "count": len(genres)})
}

// @Summary Movie by id
// @Tags Movies
// @Produce json
// @Param movie_id path string true "movie id"
// @Success 200 {object} model.Movie
// @Failure 400 {object} http_common.ErrorResponse "malformed id"
// @Failure 404 {object} http_common.ErrorResponse
// @Router /movies/{movie_id} [get]
func (c *Controller) getMovie(ctx *gin.Context) {
	m, err := c.uc.Get(ctx.Request.Context(), ctx.Param("movie_id"))
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to load movie", err)
		return
	}
	ctx.JSON(http.StatusOK, m)
}

func (c *Controller) searchMovies(ctx *gin.Context) {
	limit, err := http_common.QueryInt64(ctx, "limit", usecase_movie.DefaultLimit)
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	term := ctx.Param("title")
	movies, err := c.uc.Search(ctx.Request.Context(), term, limit)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to search movies", err)
		return
	}

	ctx.JSON(http.StatusOK, SearchResponseDTO{
		Movies:     nonNil(movies),
		SearchTerm: term,
		Count:      len(movies),
	})
}

func (c *Controller) genreStats(ctx *gin.Context) {
	stats, err := c.uc.GenreStats(ctx.Request.Context())
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to aggregate genres", err)
		return
	}
	if stats == nil {
		stats = []model.GenreStats{}
	}
	ctx.JSON(http.StatusOK, gin.H{"genre_statistics": stats, "total_genres": len(stats)})
}

func (c *Controller) yearlyTrends(ctx *gin.Context) {
	trends, err := c.uc.YearlyTrends(ctx.Request.Context())
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to aggregate years", err)
		return
	}
	if trends == nil {
		trends = []model.YearTrend{}
	}
	ctx.JSON(http.StatusOK, gin.H{"yearly_trends": trends, "years_analyzed": len(trends)})
}

func (c *Controller) topRated(ctx *gin.Context) {
	decades, err := c.uc.TopRatedByDecade(ctx.Request.Context())
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to aggregate decades", err)
		return
	}
	if decades == nil {
		decades = []model.DecadeTop{}
	}
	ctx.JSON(http.StatusOK, gin.H{"top_rated_by_decade": decades})
}

func nonNil(movies []model.Movie) []model.Movie {
	if movies == nil {
		return []model.Movie{}
	}
	return movies
}
