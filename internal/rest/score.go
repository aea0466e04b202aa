package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Campus-Backend/domain"
	"github.com/Guyuepp/Go-Campus-Backend/internal/rest/request"
	"github.com/Guyuepp/Go-Campus-Backend/internal/rest/response"
)

type scoreHandler struct {
	Service domain.ScoreUsecase
}

func NewScoreHandler(svc domain.ScoreUsecase) *scoreHandler {
	return &scoreHandler{
		Service: svc,
	}
}

// Store records a grade for a student in a course
func (h *scoreHandler) Store(c *gin.Context) {
	var req request.Score
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	idP, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	score := req.ToDomain()
	score.CourseID = int64(idP)

	if err := h.Service.Store(c.Request.Context(), &score); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewScoreFromDomain(&score))
}

// FetchMyScores lists the caller's grades
func (h *scoreHandler) FetchMyScores(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	scores, err := h.Service.FetchByStudent(c.Request.Context(), userID.(int64))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Score, len(scores))
	for i := range scores {
		res[i] = response.NewScoreFromDomain(&scores[i])
	}
	c.JSON(http.StatusOK, res)
}
