package model

import (
	"time"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

type Post struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"type:varchar(90);not null"`
	Content      string    `gorm:"type:longtext;not null"`
	UserID       int64     `gorm:"column:user_id;not null"`
	Comments     string    `gorm:"type:longtext"` // serialized comment collection
	CommentCount int64     `gorm:"column:comment_count;default:0"`
	Views        int64     `gorm:"default:0"`
	UpdatedAt    time.Time `gorm:"type:datetime"`
	CreatedAt    time.Time `gorm:"type:datetime"`
}

func (Post) TableName() string {
	return "post"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:      m.ID,
		Title:   m.Title,
		Content: m.Content,
		User: domain.User{
			ID: m.UserID,
		},
		CommentsRaw:  m.Comments,
		CommentCount: m.CommentCount,
		Views:        m.Views,
		UpdatedAt:    m.UpdatedAt,
		CreatedAt:    m.CreatedAt,
	}
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		UserID:       p.User.ID,
		Comments:     p.CommentsRaw,
		CommentCount: p.CommentCount,
		Views:        p.Views,
		UpdatedAt:    p.UpdatedAt,
		CreatedAt:    p.CreatedAt,
	}
}
