package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/evnalsb-cloud/protein-tracker/models"
	"github.com/evnalsb-cloud/protein-tracker/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	entries *services.EntryService
}

func NewEntryController(entries *services.EntryService) *EntryController {
	return &EntryController{entries: entries}
}

type LogEntryInput struct {
	Category    string            `json:"category" binding:"required"`
	Date        string            `json:"date"` // "2006-01-02", defaults to today
	Record      models.FoodRecord `json:"record" binding:"required"`
	ServingSize float64           `json:"serving_size" binding:"required"`
}

// POST /entries
func (ec *EntryController) LogEntry(c *gin.Context) {
	var input LogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	userID := c.GetUint("userID")
	entry, err := ec.entries.LogFood(userID, input.Category, date, input.Record, input.ServingSize)
	if err != nil {
		if errors.Is(err, services.ErrInvalidServingSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GET /entries?date=2026-08-26
func (ec *EntryController) ListEntries(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	userID := c.GetUint("userID")
	entries, total, err := ec.entries.ListByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "total_protein": total})
}

// DELETE /entries/:id
func (ec *EntryController) DeleteEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	userID := c.GetUint("userID")
	if err := ec.entries.DeleteEntry(userID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
