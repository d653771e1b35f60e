package http_user

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/cinemate/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/cinemate/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/cinemate/internal/model"
	usecase_user "github.com/humanbelnik/cinemate/internal/usecase/user"
)

const defaultLimit int64 = 100

type RegisterRequestDTO struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

type LoginRequestDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponseDTO never carries the password hash.
type UserResponseDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Bookmarks []string  `json:"bookmarks"`
	JoinedAt  time.Time `json:"joined_at"`
}

type LoginResponseDTO struct {
	UserID    string `json:"user_id"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

func ConvertFromUser(u model.User) UserResponseDTO {
	bookmarks := u.Bookmarks
	if bookmarks == nil {
		bookmarks = []string{}
	}
	return UserResponseDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		Bookmarks: bookmarks,
		JoinedAt:  u.JoinedAt,
	}
}

type Controller struct {
	uc   *usecase_user.Usecase
	auth *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	uc *usecase_user.Usecase,
	auth *http_auth_middleware.Middleware,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		uc:     uc,
		auth:   auth,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.POST("/register", c.register)
	users.POST("/login", c.login)
	users.GET("/", c.list)

	own := users.Group("/:user_id", c.auth.SessionRequired("user_id"))
	own.POST("/bookmarks/:movie_id", c.bookmark)
	own.POST("/logout", c.logout)
}

// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body RegisterRequestDTO true "new user"
// @Success 201 {object} UserResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 409 {object} http_common.ErrorResponse "username or email taken"
// @Router /users/register [post]
func (c *Controller) register(ctx *gin.Context) {
	var req RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	u, err := c.uc.Register(ctx.Request.Context(), model.Registration{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to register user", err)
		return
	}

	ctx.JSON(http.StatusCreated, ConvertFromUser(u))
}

// @Summary Log in
// @Description Returns a session token to send in the X-Session-Token header
// @Tags Users
// @Accept json
// @Produce json
// @Param request body LoginRequestDTO true "credentials"
// @Success 200 {object} LoginResponseDTO
// @Failure 401 {object} http_common.ErrorResponse
// @Router /users/login [post]
func (c *Controller) login(ctx *gin.Context) {
	var req LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	s, err := c.uc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to log in", err)
		return
	}

	ctx.Header(http_auth_middleware.Header, s.Token)
	ctx.JSON(http.StatusOK, LoginResponseDTO{
		UserID:    s.UserID,
		Token:     s.Token,
		ExpiresIn: int64(s.TTL.Seconds()),
	})
}

func (c *Controller) list(ctx *gin.Context) {
	limit, err := http_common.QueryInt64(ctx, "limit", defaultLimit)
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}
	skip, err := http_common.QueryInt64(ctx, "skip", 0)
	if err != nil {
		http_common.BadRequest(ctx, c.logger, err.Error())
		return
	}

	users, err := c.uc.List(ctx.Request.Context(), skip, limit)
	if err != nil {
		http_common.Fail(ctx, c.logger, "Failed to load users", err)
		return
	}

	resp := make([]UserResponseDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, ConvertFromUser(u))
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) bookmark(ctx *gin.Context) {
	userID, movieID := ctx.Param("user_id"), ctx.Param("movie_id")

	if err := c.uc.Bookmark(ctx.Request.Context(), userID, movieID); err != nil {
		http_common.Fail(ctx, c.logger, "Failed to bookmark movie", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Movie bookmarked", "user_id": userID, "movie_id": movieID})
}

func (c *Controller) logout(ctx *gin.Context) {
	c.uc.Logout(ctx.Request.Context(), ctx.Param("user_id"))
	ctx.Status(http.StatusNoContent)
}
