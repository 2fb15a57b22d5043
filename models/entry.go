package models

import (
    "time"

    "gorm.io/gorm"
)

// LogEntry is one resolved, user-confirmed food logged under a calendar
// day. Protein is stored already scaled to ServingSize, so totals are a
// plain sum over the day.
type LogEntry struct {
    gorm.Model
    UserID uint      `gorm:"index;not null"`
    Date   time.Time `gorm:"index;not null"` // beginning of the day

    Category    string // "Breakfast"|"Lunch"|"Dinner"|"Snack"
    FoodName    string `gorm:"not null"`
    Brand       string
    Protein     float64 // grams, for exactly ServingSize units
    ServingSize float64
    ServingUnit string
    FoodSource  Source `gorm:"type:varchar(16)"`
    Image       string
}
