package controllers

import (
	"net/http"

	"bloom/services"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	Svc *services.MoodService
}

func NewMoodController(svc *services.MoodService) *MoodController {
	return &MoodController{Svc: svc}
}

func (h *MoodController) Log(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.MoodInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Svc.Log(userID, input); err != nil {
		respondLogError(c, err, input)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "mood logged"})
}

// Days serves the mood page payload: history grouped by day plus the
// selectable vocabulary for the dropdown.
func (h *MoodController) Days(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	days, err := h.Svc.Days(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	options, err := h.Svc.Options(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days, "moods": options})
}
