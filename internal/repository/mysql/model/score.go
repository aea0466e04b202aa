package model

import (
	"time"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

type Score struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	StudentID int64     `gorm:"column:student_id;not null;uniqueIndex:idx_student_course_term"`
	CourseID  int64     `gorm:"column:course_id;not null;uniqueIndex:idx_student_course_term"`
	Value     float64   `gorm:"not null"`
	Term      string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_student_course_term"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Score) TableName() string {
	return "score"
}

func (m *Score) ToDomain() domain.Score {
	return domain.Score{
		ID:        m.ID,
		StudentID: m.StudentID,
		CourseID:  m.CourseID,
		Value:     m.Value,
		Term:      m.Term,
		CreatedAt: m.CreatedAt,
	}
}

func NewScoreFromDomain(s *domain.Score) *Score {
	return &Score{
		ID:        s.ID,
		StudentID: s.StudentID,
		CourseID:  s.CourseID,
		Value:     s.Value,
		Term:      s.Term,
		CreatedAt: s.CreatedAt,
	}
}
