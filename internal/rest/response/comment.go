package response

import "github.com/Guyuepp/Go-Campus-Backend/domain"

type Comment struct {
	ID         string `json:"id"`
	AuthorID   int64  `json:"author_id"`
	AuthorName string `json:"author_name"`
	Body       string `json:"body"`
	Status     int    `json:"status"`
	CreatedAt  string `json:"created_at"`

	// filled on the moderation view only
	PostID    int64  `json:"post_id,omitempty"`
	PostTitle string `json:"post_title,omitempty"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:         c.ID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Body:       c.Body,
		Status:     int(c.Status),
		CreatedAt:  c.CreatedAt.Format(DateTimeFormat),
		PostID:     c.PostID,
		PostTitle:  c.PostTitle,
	}
}

// CommentPage is the moderation-view page envelope.
type CommentPage struct {
	Total    int64     `json:"total"`
	Comments []Comment `json:"comments"`
}

func NewCommentPage(total int64, comments []domain.Comment) CommentPage {
	res := make([]Comment, len(comments))
	for i := range comments {
		res[i] = NewCommentFromDomain(&comments[i])
	}
	return CommentPage{
		Total:    total,
		Comments: res,
	}
}
