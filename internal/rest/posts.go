package rest

import (
	"net/http"

	"postcomments/api"
	"postcomments/blog/application"
	"postcomments/blog/domain"

	"github.com/gin-gonic/gin"
)

type PostsHandler struct {
	service *application.PostService
}

func (h *PostsHandler) List(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostsHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "postId", c.Param("postId"))
	if !ok {
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostsHandler) Create(c *gin.Context) {
	req := &api.CreatePostRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, domain.NewValidationError("body", err.Error()))
		return
	}

	authorID, ok := parseID(c, "author_id", req.AuthorID)
	if !ok {
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), req.Title, req.Text, authorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "postId", c.Param("postId"))
	if !ok {
		return
	}

	req := &api.UpdatePostRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, domain.NewValidationError("body", err.Error()))
		return
	}

	if err := h.service.UpdatePost(c.Request.Context(), id, req.Title, req.Text); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PostsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "postId", c.Param("postId"))
	if !ok {
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
