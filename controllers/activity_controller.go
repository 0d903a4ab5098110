// controllers/activity_controller.go
package controllers

import (
	"errors"
	"net/http"

	"bloom/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	Svc *services.ActivityService
}

func NewActivityController(svc *services.ActivityService) *ActivityController {
	return &ActivityController{Svc: svc}
}

func (h *ActivityController) Log(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.ActivityInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Svc.Log(userID, input); err != nil {
		respondLogError(c, err, input)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "activity logged"})
}

func (h *ActivityController) Days(c *gin.Context) {
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

// --- helpers shared by the journal controllers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// respondLogError echoes the raw input back on validation failures so the
// client can re-render the form without losing what the user typed.
func respondLogError(c *gin.Context, err error, input any) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"field": ve.Field, "message": ve.Message, "input": input,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
