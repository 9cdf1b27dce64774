package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiwangsa/forum-api/domain"
	"github.com/adiwangsa/forum-api/internal/rest/request"
	"github.com/adiwangsa/forum-api/internal/rest/response"
)

// ThreadHandler represent the httphandler for thread
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will store the thread by given request body
func (h *ThreadHandler) Store(c *gin.Context) {
	var req request.Thread
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
		return
	}
	owner := userID.(string)

	ctx := c.Request.Context()
	added, err := h.Service.AddThread(ctx, req.ToDomain(), owner)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.NewAddedThreadFromDomain(added)))
}

// GetByID will get the thread detail by given id, comments and replies
// included. No authentication required.
func (h *ThreadHandler) GetByID(c *gin.Context) {
	threadID := c.Param("threadId")

	ctx := c.Request.Context()
	detail, err := h.Service.GetThreadDetail(ctx, threadID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(response.NewThreadDetailFromDomain(detail)))
}
