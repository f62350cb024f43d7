package api

// CreatePostRequest is the wire shape for creating a post. The author id is
// taken from the request body until authentication exists.
type CreatePostRequest struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	AuthorID string `json:"author_id"`
}

// UpdatePostRequest is the wire shape for a partial post update. Pointer
// fields distinguish "omitted, leave unchanged" from "supplied empty", which
// is rejected.
type UpdatePostRequest struct {
	Title *string `json:"title"`
	Text  *string `json:"text"`
}
