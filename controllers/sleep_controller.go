package controllers

import (
	"net/http"

	"bloom/services"

	"github.com/gin-gonic/gin"
)

type SleepController struct {
	Svc *services.SleepService
}

func NewSleepController(svc *services.SleepService) *SleepController {
	return &SleepController{Svc: svc}
}

func (h *SleepController) Log(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.SleepInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Svc.Log(userID, input); err != nil {
		respondLogError(c, err, input)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "sleep logged"})
}

func (h *SleepController) Days(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"days": days})
}
