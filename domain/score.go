package domain

import (
	"context"
	"time"
)

// Score is representing a student's grade for a course
type Score struct {
	ID        int64
	StudentID int64
	CourseID  int64
	Course    Course // filled on list reads
	Value     float64
	Term      string // e.g. "2025-autumn"
	CreatedAt time.Time
}

type ScoreRepository interface {
	// Store records a grade.
	// Returns ErrConflict if a grade already exists for the same
	// student/course/term.
	Store(ctx context.Context, s *Score) error

	// FetchByStudent lists a student's grades, newest term first.
	FetchByStudent(ctx context.Context, studentID int64) ([]Score, error)
}

type ScoreUsecase interface {
	Store(ctx context.Context, s *Score) error
	FetchByStudent(ctx context.Context, studentID int64) ([]Score, error)
}
