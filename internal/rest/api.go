package rest

import (
	"postcomments/blog/application"

	"github.com/gin-gonic/gin"
)

// NewApi registers the v1 routes. Comment listing and creation are nested
// under the owning post's path; get/update/delete address a comment by its
// own id.
func NewApi(router *gin.Engine, posts *application.PostService, comments *application.CommentService) {
	postsHandler := &PostsHandler{service: posts}
	commentsHandler := &CommentsHandler{service: comments}

	v1 := router.Group("api/v1")
	{
		v1.GET("/posts", postsHandler.List)
		v1.POST("/posts", postsHandler.Create)
		v1.GET("/posts/:postId", postsHandler.Get)
		v1.PUT("/posts/:postId", postsHandler.Update)
		v1.DELETE("/posts/:postId", postsHandler.Delete)

		v1.GET("/posts/:postId/comments", commentsHandler.ListByPost)
		v1.POST("/posts/:postId/comments", commentsHandler.Create)
		v1.GET("/comments/:commentId", commentsHandler.Get)
		v1.PUT("/comments/:commentId", commentsHandler.Update)
		v1.DELETE("/comments/:commentId", commentsHandler.Delete)
	}
}
