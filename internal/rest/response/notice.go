package response

import "github.com/Guyuepp/Go-Campus-Backend/domain"

type Notice struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UserName  string `json:"user_name"`
	CreatedAt string `json:"created_at"`
}

// NewNoticeFromDomain: Domain -> Response
func NewNoticeFromDomain(n *domain.Notice) Notice {
	return Notice{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		UserName:  n.User.Name,
		CreatedAt: n.CreatedAt.Format(DateTimeFormat),
	}
}
