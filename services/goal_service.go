package services

import (
	"errors"
	"time"

	"github.com/evnalsb-cloud/protein-tracker/config"
	"github.com/evnalsb-cloud/protein-tracker/models"

	"gorm.io/gorm"
)

func UpsertGoal(userID uint, protein float64) error {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{UserID: userID, Protein: protein}
		return config.DB.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.Protein = protein
	return config.DB.Save(&goal).Error
}

// GetGoalAndProgress returns the user's goal plus consumed/goal/percent
// for the given day. A user without a stored goal gets a zero goal, not
// an error.
func GetGoalAndProgress(entrySvc *EntryService, userID uint, date time.Time) (*models.DailyGoal, map[string]float64, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			goal = models.DailyGoal{UserID: userID}
		} else {
			return nil, nil, err
		}
	}

	consumed, err := entrySvc.DailyTotal(userID, date)
	if err != nil {
		return &goal, nil, err
	}

	progress := map[string]float64{
		"consumed": consumed,
		"goal":     goal.Protein,
		"percent":  progressPercent(consumed, goal.Protein),
	}
	return &goal, progress, nil
}
