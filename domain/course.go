package domain

import (
	"context"
	"time"
)

// Course is representing a campus course
type Course struct {
	ID        int64     // Unique identifier
	Name      string    // Course name
	Credit    int64     // Credit value
	Teacher   User      // Teaching staff information
	Capacity  int64     // Maximum enrollment
	Enrolled  int64     // Current enrollment count
	CreatedAt time.Time // Creation timestamp
	UpdatedAt time.Time // Last update timestamp
}

type CourseRepository interface {
	// Fetch retrieves a paginated list of courses.
	Fetch(ctx context.Context, cursor string, num int64) ([]Course, error)

	// GetByID retrieves a single course.
	// Returns ErrNotFound if the course doesn't exist.
	GetByID(ctx context.Context, id int64) (Course, error)

	// Store creates a new course.
	Store(ctx context.Context, c *Course) error

	// Delete removes a course by its ID.
	// Returns ErrNotFound if not exists.
	Delete(ctx context.Context, id int64) error
}

type CourseUsecase interface {
	Fetch(ctx context.Context, cursor string, num int64) ([]Course, string, error)
	GetByID(ctx context.Context, id int64) (Course, error)
	Store(ctx context.Context, c *Course) error
	Delete(ctx context.Context, id int64) error
}
