package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiwangsa/forum-api/domain"
	"github.com/adiwangsa/forum-api/internal/rest/request"
	"github.com/adiwangsa/forum-api/internal/rest/response"
)

type userHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *userHandler {
	return &userHandler{
		Service: svc,
	}
}

// Register will register a new user by given request body
func (h *userHandler) Register(c *gin.Context) {
	var req request.RegisterUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	ctx := c.Request.Context()
	registered, err := h.Service.Register(ctx, req.ToDomain())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.NewAddedUserFromDomain(registered)))
}

// Login exchanges credentials for an access and a refresh token
func (h *userHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	ctx := c.Request.Context()
	auth, err := h.Service.Login(ctx, req.ToDomain())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.NewAuthenticationFromDomain(auth)))
}

// Refresh issues a fresh access token for a stored refresh token
func (h *userHandler) Refresh(c *gin.Context) {
	var req request.RefreshToken
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	ctx := c.Request.Context()
	accessToken, err := h.Service.RefreshAuthentication(ctx, req.RefreshToken)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(response.RefreshedAuthentication{AccessToken: accessToken}))
}

// Logout revokes the given refresh token
func (h *userHandler) Logout(c *gin.Context) {
	var req request.RefreshToken
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.Logout(ctx, req.RefreshToken); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("refresh token berhasil dihapus"))
}
