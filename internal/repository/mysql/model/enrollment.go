package model

import (
	"time"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

type Enrollment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	StudentID int64     `gorm:"column:student_id;not null;uniqueIndex:idx_student_course"`
	CourseID  int64     `gorm:"column:course_id;not null;uniqueIndex:idx_student_course"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Enrollment) TableName() string {
	return "enrollment"
}

func (m *Enrollment) ToDomain() domain.Enrollment {
	return domain.Enrollment{
		ID:        m.ID,
		StudentID: m.StudentID,
		CourseID:  m.CourseID,
		CreatedAt: m.CreatedAt,
	}
}

func NewEnrollmentFromDomain(e *domain.Enrollment) *Enrollment {
	return &Enrollment{
		ID:        e.ID,
		StudentID: e.StudentID,
		CourseID:  e.CourseID,
		CreatedAt: e.CreatedAt,
	}
}
