package response

import "github.com/Guyuepp/Go-Campus-Backend/domain"

type Post struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content,omitempty"`
	UserName     string `json:"user_name"`
	CommentCount int64  `json:"comment_count"`
	Views        int64  `json:"views"`
	UpdatedAt    string `json:"updated_at"`
	CreatedAt    string `json:"created_at"`
}

// NewPostFromDomain: Domain -> Response. The raw comment blob never leaves
// the service: comments are served through their own endpoints.
func NewPostFromDomain(p *domain.Post) Post {
	return Post{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		UserName:     p.User.Name,
		CommentCount: p.CommentCount,
		Views:        p.Views,
		UpdatedAt:    p.UpdatedAt.Format(DateTimeFormat),
		CreatedAt:    p.CreatedAt.Format(DateTimeFormat),
	}
}
