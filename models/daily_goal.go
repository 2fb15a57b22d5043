package models

import (
    "gorm.io/gorm"
)

// DailyGoal holds the user's daily protein target.
type DailyGoal struct {
    gorm.Model
    UserID  uint    `gorm:"index;not null"`
    Protein float64 // e.g. 120 g
}
