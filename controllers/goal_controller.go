package controllers

import (
	"net/http"

	"github.com/evnalsb-cloud/protein-tracker/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	entries *services.EntryService
}

func NewGoalController(entries *services.EntryService) *GoalController {
	return &GoalController{entries: entries}
}

type GoalInput struct {
	Protein float64 `json:"protein" binding:"required,gt=0"`
}

// PUT /goal
func (gc *GoalController) UpsertGoal(c *gin.Context) {
	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	if err := services.UpsertGoal(userID, input.Protein); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "goal saved"})
}

// GET /goal/progress?date=2026-08-26
func (gc *GoalController) GetProgress(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	userID := c.GetUint("userID")
	goal, progress, err := services.GetGoalAndProgress(gc.entries, userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal.Protein, "progress": progress})
}
