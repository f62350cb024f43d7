package application

import (
	"context"
	"fmt"

	"postcomments/blog/domain"

	"github.com/google/uuid"
)

// PostService validates and orchestrates the post lifecycle against the post
// repository. It also holds the comment repository so that deleting a post
// can delete the post's comments with it: no stored comment ever references
// a nonexistent post.
//
// Errors are never caught or retried here; every error propagates to the
// transport layer, which owns the mapping to user-visible statuses.
type PostService struct {
	posts    domain.Repository[*domain.Post]
	comments domain.Repository[*domain.Comment]
}

func NewPostService(posts domain.Repository[*domain.Post], comments domain.Repository[*domain.Comment]) *PostService {
	return &PostService{
		posts:    posts,
		comments: comments,
	}
}

// CreatePost constructs a post from the given title and body text, stores it
// and returns the stored copy. Empty title, empty text or a nil author id
// fail with a ValidationError before the repository is touched.
func (s *PostService) CreatePost(ctx context.Context, title, text string, authorID uuid.UUID) (*domain.Post, error) {
	post, err := domain.NewPost(domain.NewTitle(title), domain.NewContent(text), authorID)
	if err != nil {
		return nil, err
	}

	if err := s.posts.Add(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to store post: %w", err)
	}

	stored, found, err := s.posts.GetByID(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back post %s: %w", post.ID, err)
	}
	if !found {
		return nil, domain.NewPostNotFoundError(post.ID)
	}
	return stored, nil
}

// ListPosts returns all posts in insertion order, unfiltered and unpaginated.
func (s *PostService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.ListAll(ctx)
}

// GetPost returns the post with the given id. A nil id fails validation
// before the existence check runs.
func (s *PostService) GetPost(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "post id must not be empty")
	}

	post, found, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w", id, err)
	}
	if !found {
		return nil, domain.NewPostNotFoundError(id)
	}
	return post, nil
}

// UpdatePost applies a partial update to the stored post. A nil pointer
// means "leave this field unchanged"; a supplied value must be non-empty.
// At least one field must be supplied.
func (s *PostService) UpdatePost(ctx context.Context, id uuid.UUID, title, text *string) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "post id must not be empty")
	}
	if title == nil && text == nil {
		return domain.NewValidationError("update", "at least one field must be supplied")
	}
	if title != nil && *title == "" {
		return domain.NewValidationError("title", "post title must not be empty")
	}
	if text != nil && *text == "" {
		return domain.NewValidationError("text", "post text must not be empty")
	}

	post, found, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get post %s: %w", id, err)
	}
	if !found {
		return domain.NewPostNotFoundError(id)
	}

	if title != nil {
		post.Title.Text = *title
	}
	if text != nil {
		post.Content.Text = *text
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return fmt.Errorf("failed to update post %s: %w", id, err)
	}
	return nil
}

// DeletePost removes the post with the given id together with all of its
// comments.
func (s *PostService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "post id must not be empty")
	}

	post, found, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get post %s: %w", id, err)
	}
	if !found {
		return domain.NewPostNotFoundError(id)
	}

	if err := s.posts.Delete(ctx, post); err != nil {
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}

	orphaned, err := s.comments.List(ctx, func(c *domain.Comment) bool {
		return c.PostID == id
	})
	if err != nil {
		return fmt.Errorf("failed to list comments of post %s: %w", id, err)
	}
	for _, comment := range orphaned {
		if err := s.comments.Delete(ctx, comment); err != nil {
			return fmt.Errorf("failed to delete comment %s of post %s: %w", comment.ID, id, err)
		}
	}

	return nil
}
