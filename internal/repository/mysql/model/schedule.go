package model

import "github.com/Guyuepp/Go-Campus-Backend/domain"

type Schedule struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	CourseID int64  `gorm:"column:course_id;not null"`
	Weekday  int64  `gorm:"not null"`
	Slot     int64  `gorm:"not null"`
	Room     string `gorm:"type:varchar(45)"`
}

func (Schedule) TableName() string {
	return "schedule"
}

func (m *Schedule) ToDomain() domain.Schedule {
	return domain.Schedule{
		ID:       m.ID,
		CourseID: m.CourseID,
		Weekday:  m.Weekday,
		Slot:     m.Slot,
		Room:     m.Room,
	}
}

func NewScheduleFromDomain(s *domain.Schedule) *Schedule {
	return &Schedule{
		ID:       s.ID,
		CourseID: s.CourseID,
		Weekday:  s.Weekday,
		Slot:     s.Slot,
		Room:     s.Room,
	}
}
