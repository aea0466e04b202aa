package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository/mysql/model"
)

type enrollmentRepository struct {
	DB *gorm.DB
}

var _ domain.EnrollmentRepository = (*enrollmentRepository)(nil)

func NewEnrollmentRepository(db *gorm.DB) *enrollmentRepository {
	return &enrollmentRepository{db}
}

// Store creates the enrollment and bumps the course's enrolled counter in
// one transaction.
func (m *enrollmentRepository) Store(ctx context.Context, e *domain.Enrollment) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollModel := model.NewEnrollmentFromDomain(e)
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&enrollModel)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrConflict
		}
		e.ID = enrollModel.ID
		e.CreatedAt = enrollModel.CreatedAt

		return tx.Model(&model.Course{}).Where("id = ?", e.CourseID).
			Update("enrolled", gorm.Expr("enrolled + 1")).Error
	})
}

func (m *enrollmentRepository) Delete(ctx context.Context, studentID, courseID int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("student_id = ? AND course_id = ?", studentID, courseID).
			Delete(&model.Enrollment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		return tx.Model(&model.Course{}).Where("id = ?", courseID).
			Update("enrolled", gorm.Expr("enrolled - 1")).Error
	})
}

func (m *enrollmentRepository) FetchByStudent(ctx context.Context, studentID int64) ([]domain.Enrollment, error) {
	var enrollments []model.Enrollment
	err := m.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Enrollment, len(enrollments))
	for i := range enrollments {
		res[i] = enrollments[i].ToDomain()
	}
	return res, nil
}
