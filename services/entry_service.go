package services

import (
	"errors"
	"time"

	"github.com/evnalsb-cloud/protein-tracker/config"
	"github.com/evnalsb-cloud/protein-tracker/models"

	"gorm.io/gorm"
)

// ErrInvalidServingSize rejects non-positive serving sizes before a
// record reaches the scaler.
var ErrInvalidServingSize = errors.New("serving size must be positive")

type EntryService struct {
	hub *RealtimeHub
}

func NewEntryService(hub *RealtimeHub) *EntryService {
	return &EntryService{hub: hub}
}

// LogFood scales the resolved record to the chosen serving size and
// appends the finalized entry under the given category and day. The
// engine's ownership of the record ends here.
func (s *EntryService) LogFood(userID uint, category string, date time.Time, record models.FoodRecord, servingSize float64) (*models.LogEntry, error) {
	if servingSize <= 0 {
		return nil, ErrInvalidServingSize
	}

	unit := record.ServingUnit
	if unit == "" {
		unit = "g"
	}

	entry := &models.LogEntry{
		UserID:      userID,
		Date:        startOfDay(date),
		Category:    category,
		FoodName:    record.Name,
		Brand:       record.Brand,
		Protein:     ScaleProtein(record, servingSize),
		ServingSize: servingSize,
		ServingUnit: unit,
		FoodSource:  record.Source,
		Image:       record.Image,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}

	s.broadcastProgress(userID, entry.Date)
	return entry, nil
}

// ListByDate returns the day's entries, newest first, with the running
// protein total.
func (s *EntryService) ListByDate(userID uint, date time.Time) ([]models.LogEntry, float64, error) {
	var entries []models.LogEntry
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, startOfDay(date)).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, e := range entries {
		total += e.Protein
	}
	return entries, Round1(total), nil
}

func (s *EntryService) DeleteEntry(userID, entryID uint) error {
	var entry models.LogEntry
	if err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return err
	}
	if err := config.DB.Delete(&entry).Error; err != nil {
		return err
	}

	s.broadcastProgress(userID, entry.Date)
	return nil
}

// DailyTotal recomputes the protein sum for one calendar day.
func (s *EntryService) DailyTotal(userID uint, date time.Time) (float64, error) {
	var total float64
	err := config.DB.Model(&models.LogEntry{}).
		Where("user_id = ? AND date = ?", userID, startOfDay(date)).
		Select("COALESCE(SUM(protein), 0)").
		Scan(&total).Error
	return Round1(total), err
}

// ProgressUpdate is pushed to connected clients whenever the day's total
// changes.
type ProgressUpdate struct {
	Date    string  `json:"date"`
	Protein float64 `json:"protein"`
	Goal    float64 `json:"goal"`
	Percent float64 `json:"percent"`
}

func (s *EntryService) broadcastProgress(userID uint, day time.Time) {
	if s.hub == nil {
		return
	}

	total, err := s.DailyTotal(userID, day)
	if err != nil {
		return
	}

	var goal models.DailyGoal
	if err := config.DB.Where("user_id = ?", userID).First(&goal).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}

	s.hub.BroadcastProgress(userID, ProgressUpdate{
		Date:    day.Format("2006-01-02"),
		Protein: total,
		Goal:    goal.Protein,
		Percent: progressPercent(total, goal.Protein),
	})
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func progressPercent(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	return p
}
