package request

import "github.com/Guyuepp/Go-Campus-Backend/domain"

type Notice struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Notice) ToDomain() domain.Notice {
	return domain.Notice{
		Title:   r.Title,
		Content: r.Content,
	}
}
