package model

import (
	"time"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

type Notice struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(90);not null"`
	Content   string    `gorm:"type:longtext;not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Notice) TableName() string {
	return "notice"
}

func (m *Notice) ToDomain() domain.Notice {
	return domain.Notice{
		ID:      m.ID,
		Title:   m.Title,
		Content: m.Content,
		User: domain.User{
			ID: m.UserID,
		},
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
	}
}

func NewNoticeFromDomain(n *domain.Notice) *Notice {
	return &Notice{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		UserID:    n.User.ID,
		UpdatedAt: n.UpdatedAt,
		CreatedAt: n.CreatedAt,
	}
}
