package domain

import (
	"context"
	"time"
)

// Enrollment is representing a student's registration for a course
type Enrollment struct {
	ID        int64
	StudentID int64
	CourseID  int64
	Course    Course // filled on list reads
	CreatedAt time.Time
}

type EnrollmentRepository interface {
	// Store creates an enrollment record.
	// Returns ErrConflict if the student is already enrolled.
	Store(ctx context.Context, e *Enrollment) error

	// Delete drops a student's enrollment for a course.
	// Returns ErrNotFound if no such enrollment exists.
	Delete(ctx context.Context, studentID, courseID int64) error

	// FetchByStudent lists a student's enrollments.
	FetchByStudent(ctx context.Context, studentID int64) ([]Enrollment, error)
}

type EnrollmentUsecase interface {
	Enroll(ctx context.Context, studentID, courseID int64) error
	Drop(ctx context.Context, studentID, courseID int64) error
	FetchByStudent(ctx context.Context, studentID int64) ([]Enrollment, error)
}
