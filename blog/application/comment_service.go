package application

import (
	"context"
	"fmt"

	"postcomments/blog/domain"

	"github.com/google/uuid"
)

// CommentService validates and orchestrates the comment lifecycle. Beyond
// the comment repository it holds the post repository, because a comment may
// only be created against a post that exists at creation time.
type CommentService struct {
	comments domain.Repository[*domain.Comment]
	posts    domain.Repository[*domain.Post]
}

func NewCommentService(comments domain.Repository[*domain.Comment], posts domain.Repository[*domain.Post]) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
	}
}

// CreateComment constructs a comment against an existing post, stores it and
// returns the stored copy. The post existence check runs after validation
// and before construction.
func (s *CommentService) CreateComment(ctx context.Context, text string, authorID, postID uuid.UUID) (*domain.Comment, error) {
	if text == "" {
		return nil, domain.NewValidationError("text", "comment text must not be empty")
	}
	if authorID == uuid.Nil {
		return nil, domain.NewValidationError("authorId", "author id must not be empty")
	}
	if postID == uuid.Nil {
		return nil, domain.NewValidationError("postId", "post id must not be empty")
	}

	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comment, err := domain.NewComment(authorID, postID, domain.NewContent(text))
	if err != nil {
		return nil, err
	}

	if err := s.comments.Add(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to store comment: %w", err)
	}

	stored, found, err := s.comments.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back comment %s: %w", comment.ID, err)
	}
	if !found {
		return nil, domain.NewCommentNotFoundError(comment.ID)
	}
	return stored, nil
}

// ListCommentsByPost returns every comment attached to the given post, in
// insertion order. The post itself must exist.
func (s *CommentService) ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]*domain.Comment, error) {
	if postID == uuid.Nil {
		return nil, domain.NewValidationError("postId", "post id must not be empty")
	}

	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	return s.comments.List(ctx, func(c *domain.Comment) bool {
		return c.PostID == postID
	})
}

// GetComment returns the comment with the given id. Absence always raises a
// not-found error, uniformly with the rest of the API.
func (s *CommentService) GetComment(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "comment id must not be empty")
	}

	comment, found, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %s: %w", id, err)
	}
	if !found {
		return nil, domain.NewCommentNotFoundError(id)
	}
	return comment, nil
}

// UpdateComment overwrites the comment's body text and returns the stored
// copy. Id, post reference and author are never touched.
func (s *CommentService) UpdateComment(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "comment id must not be empty")
	}
	if text == "" {
		return nil, domain.NewValidationError("text", "comment text must not be empty")
	}

	comment, found, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %s: %w", id, err)
	}
	if !found {
		return nil, domain.NewCommentNotFoundError(id)
	}

	comment.Content.Text = text

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment %s: %w", id, err)
	}

	updated, found, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back comment %s: %w", id, err)
	}
	if !found {
		return nil, domain.NewCommentNotFoundError(id)
	}
	return updated, nil
}

// DeleteComment removes the comment with the given id.
func (s *CommentService) DeleteComment(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "comment id must not be empty")
	}

	comment, found, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get comment %s: %w", id, err)
	}
	if !found {
		return domain.NewCommentNotFoundError(id)
	}

	return s.comments.Delete(ctx, comment)
}

// requirePost fails with a post not-found error unless postID names a stored post.
func (s *CommentService) requirePost(ctx context.Context, postID uuid.UUID) error {
	_, found, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to get post %s: %w", postID, err)
	}
	if !found {
		return domain.NewPostNotFoundError(postID)
	}
	return nil
}
