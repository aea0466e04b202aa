package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/rest/request"
	"github.com/Guyuepp/Go-Campus-Backend/internal/rest/response"
)

type courseHandler struct {
	Service     domain.CourseUsecase
	Enrollments domain.EnrollmentUsecase
	Schedules   domain.ScheduleUsecase
}

func NewCourseHandler(svc domain.CourseUsecase, enrollments domain.EnrollmentUsecase, schedules domain.ScheduleUsecase) *courseHandler {
	return &courseHandler{
		Service:     svc,
		Enrollments: enrollments,
		Schedules:   schedules,
	}
}

func (h *courseHandler) FetchCourse(c *gin.Context) {
	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}

	cursor := c.Query("cursor")
	ctx := c.Request.Context()

	listCourse, nextCursor, err := h.Service.Fetch(ctx, cursor, int64(num))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	res := make([]response.Course, len(listCourse))
	for i := range listCourse {
		res[i] = response.NewCourseFromDomain(&listCourse[i])
	}
	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, res)
}

func (h *courseHandler) GetByID(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	course, err := h.Service.GetByID(c.Request.Context(), int64(idP))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewCourseFromDomain(&course))
}

func (h *courseHandler) Store(c *gin.Context) {
	var req request.Course
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	course := req.ToDomain()
	course.Teacher.ID = userID.(int64)

	if err := h.Service.Store(c.Request.Context(), &course); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCourseFromDomain(&course))
}

func (h *courseHandler) Delete(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), int64(idP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Enroll registers the caller into the course
func (h *courseHandler) Enroll(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.Enrollments.Enroll(c.Request.Context(), userID.(int64), int64(idP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Enrolled successfully"})
}

// Drop removes the caller's enrollment
func (h *courseHandler) Drop(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.Enrollments.Drop(c.Request.Context(), userID.(int64), int64(idP)); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Enrollment dropped"})
}

// FetchMyEnrollments lists the caller's enrollments
func (h *courseHandler) FetchMyEnrollments(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	enrollments, err := h.Enrollments.FetchByStudent(c.Request.Context(), userID.(int64))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Enrollment, len(enrollments))
	for i := range enrollments {
		res[i] = response.NewEnrollmentFromDomain(&enrollments[i])
	}
	c.JSON(http.StatusOK, res)
}

// FetchSchedule lists a course's weekly time slots
func (h *courseHandler) FetchSchedule(c *gin.Context) {
	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	schedules, err := h.Schedules.FetchByCourse(c.Request.Context(), int64(idP))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Schedule, len(schedules))
	for i := range schedules {
		res[i] = response.NewScheduleFromDomain(&schedules[i])
	}
	c.JSON(http.StatusOK, res)
}

// StoreSchedule adds a weekly time slot to a course
func (h *courseHandler) StoreSchedule(c *gin.Context) {
	var req request.Schedule
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	schedule := req.ToDomain()
	schedule.CourseID = int64(idP)

	if err := h.Schedules.Store(c.Request.Context(), &schedule); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewScheduleFromDomain(&schedule))
}
