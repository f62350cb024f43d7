package api

// CreateCommentRequest is the wire shape for creating a comment under a
// post. The post id comes from the URL path.
type CreateCommentRequest struct {
	Text     string `json:"text"`
	AuthorID string `json:"author_id"`
}

// UpdateCommentRequest is the wire shape for overwriting a comment's text.
type UpdateCommentRequest struct {
	Text string `json:"text"`
}

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
