package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adiwangsa/forum-api/domain"
	"github.com/adiwangsa/forum-api/internal/rest/request"
	"github.com/adiwangsa/forum-api/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func (h *commentHandler) Store(c *gin.Context) {
	var req request.Comment
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

	ctx := c.Request.Context()
	added, err := h.Service.AddComment(ctx, req.ToDomain(), threadID, owner)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.NewAddedCommentFromDomain(added)))
}

func (h *commentHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
		return
	}
	owner := userID.(string)
	threadID := c.Param("threadId")
	commentID := c.Param("commentId")

	ctx := c.Request.Context()
	if err := h.Service.DeleteComment(ctx, threadID, commentID, owner); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("komentar berhasil dihapus"))
}

// ToggleLike likes the comment when the caller hasn't liked it yet and
// unlikes it otherwise.
func (h *commentHandler) ToggleLike(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
		return
	}
	uid := userID.(string)
	threadID := c.Param("threadId")
	commentID := c.Param("commentId")

	ctx := c.Request.Context()
	if err := h.Service.ToggleCommentLike(ctx, threadID, commentID, uid); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("berhasil mengubah status suka"))
}
