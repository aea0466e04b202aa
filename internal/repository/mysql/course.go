package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository"
	"github.com/Guyuepp/Go-Campus-Backend/internal/repository/mysql/model"
)

type courseRepository struct {
	DB *gorm.DB
}

var _ domain.CourseRepository = (*courseRepository)(nil)

func NewCourseRepository(db *gorm.DB) *courseRepository {
	return &courseRepository{db}
}

func (m *courseRepository) Fetch(ctx context.Context, cursor string, num int64) (res []domain.Course, err error) {
	var courses []model.Course
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}

	repository.PageVerify(&num)
	err = m.DB.WithContext(ctx).
		Where("created_at > ?", decodedCursor).
		Order("created_at").
		Limit(int(num)).
		Find(&courses).
		Error
	if err != nil {
		return
	}

	for _, course := range courses {
		res = append(res, course.ToDomain())
	}
	return
}

func (m *courseRepository) GetByID(ctx context.Context, id int64) (res domain.Course, err error) {
	var course model.Course
	err = m.DB.WithContext(ctx).First(&course, "id = ?", id).Error
	if err != nil {
		return res, domain.ErrNotFound
	}
	res = course.ToDomain()
	return
}

func (m *courseRepository) Store(ctx context.Context, c *domain.Course) error {
	courseModel := model.NewCourseFromDomain(c)
	result := m.DB.WithContext(ctx).Create(&courseModel)
	if result.Error != nil {
		return result.Error
	}
	c.ID = courseModel.ID
	c.CreatedAt = courseModel.CreatedAt
	c.UpdatedAt = courseModel.UpdatedAt
	return nil
}

func (m *courseRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Course{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
