package response

import "github.com/Guyuepp/Go-Campus-Backend/domain"

type Score struct {
	ID         int64   `json:"id"`
	CourseID   int64   `json:"course_id"`
	CourseName string  `json:"course_name"`
	Value      float64 `json:"value"`
	Term       string  `json:"term"`
}

// NewScoreFromDomain: Domain -> Response
func NewScoreFromDomain(s *domain.Score) Score {
	return Score{
		ID:         s.ID,
		CourseID:   s.CourseID,
		CourseName: s.Course.Name,
		Value:      s.Value,
		Term:       s.Term,
	}
}
