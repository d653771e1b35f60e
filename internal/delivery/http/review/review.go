package http_review

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinemate/internal/delivery/http/common"
	"github.com/humanbelnik/cinemate/internal/model"
	usecase_review "github.com/humanbelnik/cinemate/internal/usecase/review"
)

type CreateReviewRequestDTO struct {
	UserID  string `json:"user_id" binding:"required"`
	MovieID string `json:"movie_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Review  string `json:"review"`
}

type ReviewResponseDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MovieID   string    `json:"movie_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ConvertFromReview(r model.Review) ReviewResponseDTO {
	return ReviewResponseDTO{
		ID:        r.ID,
		UserID:    r.UserID,
		MovieID:   r.MovieID,
		Rating:    r.Rating,
		Review:    r.Text,
		CreatedAt: r.CreatedAt,
	}
}

type Controller struct {
	uc *usecase_review.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_review.Usecase, opts ...ControllerOption) *Controller {
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
	reviews := router.Group("/reviews")
	reviews.POST("/", c.addReview)
	reviews.GET("/", c.listReviews)
}

// @Summary Review a movie
// @Description One review per user and movie. Updates the movie's rating aggregate.
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body CreateReviewRequestDTO true "review"
// @Success 201 {object} ReviewResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse "movie not found"
// @Failure 409 {object} http_common.ErrorResponse "already reviewed"
// @Router /reviews/ [post]
func (c *Controller) addReview(ctx *gin.Context) {
	var req CreateReviewRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	r, err := c.uc.Add(ctx.Request.Context(), model.Review{
		UserID:  req.UserID,
		MovieID: req.MovieID,
		Rating:  req.Rating,
		Text:    req.Review,
	})
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to add review", err)
		return
	}

	ctx.JSON(http.StatusCreated, ConvertFromReview(r))
}

func (c *Controller) listReviews(ctx *gin.Context) {
	limit, err := http_common.QueryInt64(ctx, "limit", 0)
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}
	skip, err := http_common.QueryInt64(ctx, "skip", 0)
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	reviews, err := c.uc.List(ctx.Request.Context(), model.ReviewFilter{
		MovieID: ctx.Query("movie_id"),
		UserID:  ctx.Query("user_id"),
		Skip:    skip,
		Limit:   limit,
	})
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to load reviews", err)
		return
	}

	resp := make([]ReviewResponseDTO, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, ConvertFromReview(r))
	}
	ctx.JSON(http.StatusOK, resp)
}
