package request

import "github.com/Guyuepp/Go-Campus-Backend/domain"

type Score struct {
	StudentID int64   `json:"student_id" binding:"required"`
	Value     float64 `json:"value" binding:"gte=0,lte=100"`
	Term      string  `json:"term" binding:"required"`
}

// ToDomain: Request -> Domain
func (r *Score) ToDomain() domain.Score {
	return domain.Score{
		StudentID: r.StudentID,
		Value:     r.Value,
		Term:      r.Term,
	}
}
