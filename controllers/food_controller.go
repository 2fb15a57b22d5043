package controllers

import (
	"errors"
	"net/http"

	"github.com/evnalsb-cloud/protein-tracker/services"
	"github.com/evnalsb-cloud/protein-tracker/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	food *services.FoodService
}

func NewFoodController(food *services.FoodService) *FoodController {
	return &FoodController{food: food}
}

// GET /food/search?q=chicken
func (fc *FoodController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	results := fc.food.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GET /food/barcode/:code
func (fc *FoodController) Barcode(c *gin.Context) {
	record, err := fc.food.Barcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

type RecognizeRequest struct {
	ImageBase64   string  `json:"image_base64" binding:"required"`
	MinConfidence float64 `json:"min_confidence"`
	MaxResults    int     `json:"max_results"`
}

// POST /food/recognize
func (fc *FoodController) Recognize(c *gin.Context) {
	var req RecognizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.MinConfidence <= 0 {
		req.MinConfidence = services.DefaultMinConfidence
	}
	if req.MaxResults <= 0 {
		req.MaxResults = services.DefaultMaxResults
	}

	results, err := fc.food.Recognize(c.Request.Context(), req.ImageBase64, req.MinConfidence, req.MaxResults)
	if err != nil {
		if errors.Is(err, services.ErrClassifierUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Thumbnail is cosmetic: an upload failure degrades to no image.
	if len(results) > 0 {
		if url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "recognize"); err == nil {
			for i := range results {
				if results[i].Image == "" {
					results[i].Image = url
				}
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
