package domain

import (
	"time"

	"github.com/google/uuid"
)

// Content is the body of a post or comment: required text plus an optional
// image reference.
type Content struct {
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

// NewContent creates content with text only
func NewContent(text string) Content {
	return Content{Text: text}
}

// Title wraps a post's required title text.
type Title struct {
	Text string `json:"text"`
}

// NewTitle creates a title
func NewTitle(text string) Title {
	return Title{Text: text}
}

// Post is a top-level content item with title, body, author and creation time.
// Construction through NewPost is the only validation gate; the application
// services own all later mutation.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     Title     `json:"title"`
	Content   Content   `json:"content"`
	CreatedOn time.Time `json:"createdOn"`
	AuthorID  uuid.UUID `json:"authorId"`
}

func (p *Post) EntityID() uuid.UUID {
	return p.ID
}

// NewPost constructs a post with a freshly assigned id. Title text and
// content text must be non-empty and the author id must not be nil; a
// violation returns a ValidationError.
func NewPost(title Title, content Content, authorID uuid.UUID) (*Post, error) {
	if content.Text == "" {
		return nil, NewValidationError("text", "post text must not be empty")
	}
	if title.Text == "" {
		return nil, NewValidationError("title", "post title must not be empty")
	}
	if authorID == uuid.Nil {
		return nil, NewValidationError("authorId", "author id must not be empty")
	}

	return &Post{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		CreatedOn: time.Now().UTC(),
		AuthorID:  authorID,
	}, nil
}
