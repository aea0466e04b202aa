package request

import "github.com/Guyuepp/Go-Campus-Backend/domain"

type Course struct {
	Name     string `json:"name" binding:"required"`
	Credit   int64  `json:"credit" binding:"gte=0"`
	Capacity int64  `json:"capacity" binding:"required,gt=0"`
}

// ToDomain: Request -> Domain
func (r *Course) ToDomain() domain.Course {
	return domain.Course{
		Name:     r.Name,
		Credit:   r.Credit,
		Capacity: r.Capacity,
	}
}

type Schedule struct {
	Weekday int64  `json:"weekday" binding:"required,gte=1,lte=7"`
	Slot    int64  `json:"slot" binding:"required,gte=1"`
	Room    string `json:"room"`
}

func (r *Schedule) ToDomain() domain.Schedule {
	return domain.Schedule{
		Weekday: r.Weekday,
		Slot:    r.Slot,
		Room:    r.Room,
	}
}
