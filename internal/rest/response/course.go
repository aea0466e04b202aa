package response

import "github.com/Guyuepp/Go-Campus-Backend/domain"

type Course struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Credit    int64  `json:"credit"`
	Teacher   *User  `json:"teacher,omitempty"`
	Capacity  int64  `json:"capacity"`
	Enrolled  int64  `json:"enrolled"`
	CreatedAt string `json:"created_at"`
}

// NewCourseFromDomain: Domain -> Response
func NewCourseFromDomain(c *domain.Course) Course {
	return Course{
		ID:        c.ID,
		Name:      c.Name,
		Credit:    c.Credit,
		Teacher:   NewUserFromDomain(&c.Teacher),
		Capacity:  c.Capacity,
		Enrolled:  c.Enrolled,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
	}
}

type Schedule struct {
	ID      int64  `json:"id"`
	Weekday int64  `json:"weekday"`
	Slot    int64  `json:"slot"`
	Room    string `json:"room"`
}

func NewScheduleFromDomain(s *domain.Schedule) Schedule {
	return Schedule{
		ID:      s.ID,
		Weekday: s.Weekday,
		Slot:    s.Slot,
		Room:    s.Room,
	}
}

type Enrollment struct {
	ID        int64  `json:"id"`
	Course    Course `json:"course"`
	CreatedAt string `json:"created_at"`
}

func NewEnrollmentFromDomain(e *domain.Enrollment) Enrollment {
	return Enrollment{
		ID:        e.ID,
		Course:    NewCourseFromDomain(&e.Course),
		CreatedAt: e.CreatedAt.Format(DateTimeFormat),
	}
}
