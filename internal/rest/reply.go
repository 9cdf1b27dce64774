package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiwangsa/forum-api/domain"
	"github.com/adiwangsa/forum-api/internal/rest/request"
	"github.com/adiwangsa/forum-api/internal/rest/response"
)

type replyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *replyHandler {
	return &replyHandler{
		Service: svc,
	}
}

func (h *replyHandler) Store(c *gin.Context) {
	var req request.Reply
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
	threadID := c.Param("threadId")
	commentID := c.Param("commentId")

	ctx := c.Request.Context()
	added, err := h.Service.AddReply(ctx, req.ToDomain(), owner, threadID, commentID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.NewAddedReplyFromDomain(added)))
}

func (h *replyHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
		return
	}
	owner := userID.(string)
	threadID := c.Param("threadId")
	commentID := c.Param("commentId")
	replyID := c.Param("replyId")

	ctx := c.Request.Context()
	if err := h.Service.DeleteReply(ctx, owner, threadID, commentID, replyID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("balasan berhasil dihapus"))
}
