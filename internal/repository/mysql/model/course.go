package model

import (
	"time"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

type Course struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(90);not null"`
	Credit    int64     `gorm:"default:0"`
	TeacherID int64     `gorm:"column:teacher_id;not null"`
	Capacity  int64     `gorm:"default:0"`
	Enrolled  int64     `gorm:"default:0"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Course) TableName() string {
	return "course"
}

func (m *Course) ToDomain() domain.Course {
	return domain.Course{
		ID:     m.ID,
		Name:   m.Name,
		Credit: m.Credit,
		Teacher: domain.User{
			ID: m.TeacherID,
		},
		Capacity:  m.Capacity,
		Enrolled:  m.Enrolled,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
	}
}

func NewCourseFromDomain(c *domain.Course) *Course {
	return &Course{
		ID:        c.ID,
		Name:      c.Name,
		Credit:    c.Credit,
		TeacherID: c.Teacher.ID,
		Capacity:  c.Capacity,
		Enrolled:  c.Enrolled,
		UpdatedAt: c.UpdatedAt,
		CreatedAt: c.CreatedAt,
	}
}
