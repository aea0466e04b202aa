package enrollment

import (
	"context"
	"fmt"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
)

type service struct {
	enrollRepo domain.EnrollmentRepository
	courseRepo domain.CourseRepository
}

var _ domain.EnrollmentUsecase = (*service)(nil)

func NewService(enrollRepo domain.EnrollmentRepository, courseRepo domain.CourseRepository) *service {
	return &service{
		enrollRepo: enrollRepo,
		courseRepo: courseRepo,
	}
}

func (s *service) Enroll(ctx context.Context, studentID, courseID int64) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if course.Capacity > 0 && course.Enrolled >= course.Capacity {
		return fmt.Errorf("course %d is full: %w", courseID, domain.ErrConflict)
	}

	return s.enrollRepo.Store(ctx, &domain.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	})
}

func (s *service) Drop(ctx context.Context, studentID, courseID int64) error {
	return s.enrollRepo.Delete(ctx, studentID, courseID)
}

func (s *service) FetchByStudent(ctx context.Context, studentID int64) ([]domain.Enrollment, error) {
	enrollments, err := s.enrollRepo.FetchByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	// fill course details for display
	for i := range enrollments {
		course, err := s.courseRepo.GetByID(ctx, enrollments[i].CourseID)
		if err == nil {
			enrollments[i].Course = course
		}
	}

	return enrollments, nil
}
