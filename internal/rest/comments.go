package rest

import (
	"net/http"

	"postcomments/api"
	"postcomments/blog/application"
	"postcomments/blog/domain"

	"github.com/gin-gonic/gin"
)

type CommentsHandler struct {
	service *application.CommentService
}

func (h *CommentsHandler) ListByPost(c *gin.Context) {
	postID, ok := parseID(c, "postId", c.Param("postId"))
	if !ok {
		return
	}

	comments, err := h.service.ListCommentsByPost(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentsHandler) Create(c *gin.Context) {
	postID, ok := parseID(c, "postId", c.Param("postId"))
	if !ok {
		return
	}

	req := &api.CreateCommentRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, domain.NewValidationError("body", err.Error()))
		return
	}

	authorID, ok := parseID(c, "author_id", req.AuthorID)
	if !ok {
		return
	}

	comment, err := h.service.CreateComment(c.Request.Context(), req.Text, authorID, postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *CommentsHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "commentId", c.Param("commentId"))
	if !ok {
		return
	}

	comment, err := h.service.GetComment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "commentId", c.Param("commentId"))
	if !ok {
		return
	}

	req := &api.UpdateCommentRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, domain.NewValidationError("body", err.Error()))
		return
	}

	comment, err := h.service.UpdateComment(c.Request.Context(), id, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "commentId", c.Param("commentId"))
	if !ok {
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
