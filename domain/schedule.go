package domain

import "context"

// Schedule is one weekly time slot of a course
type Schedule struct {
	ID       int64
	CourseID int64
	Weekday  int64  // 1 = Monday ... 7 = Sunday
	Slot     int64  // lesson slot within the day
	Room     string // classroom
}

type ScheduleRepository interface {
	// FetchByCourse lists a course's time slots ordered by weekday and slot.
	FetchByCourse(ctx context.Context, courseID int64) ([]Schedule, error)

	// Store creates a schedule entry.
	Store(ctx context.Context, s *Schedule) error
}

type ScheduleUsecase interface {
	FetchByCourse(ctx context.Context, courseID int64) ([]Schedule, error)
	Store(ctx context.Context, s *Schedule) error
}
