package domain

import "github.com/google/uuid"

// Comment is a reply attached to exactly one post. The entity only records
// the owning post's id; the invariant that the post exists is enforced by the
// comment service at creation time, not here.
type Comment struct {
	ID       uuid.UUID `json:"id"`
	PostID   uuid.UUID `json:"postId"`
	AuthorID uuid.UUID `json:"authorId"`
	Content  Content   `json:"content"`
}

func (c *Comment) EntityID() uuid.UUID {
	return c.ID
}

// NewComment constructs a comment with a freshly assigned id. Content text
// must be non-empty and both ids must not be nil.
func NewComment(authorID, postID uuid.UUID, content Content) (*Comment, error) {
	if content.Text == "" {
		return nil, NewValidationError("text", "comment text must not be empty")
	}
	if authorID == uuid.Nil {
		return nil, NewValidationError("authorId", "author id must not be empty")
	}
	if postID == uuid.Nil {
		return nil, NewValidationError("postId", "post id must not be empty")
	}

	return &Comment{
		ID:       uuid.New(),
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}, nil
}
