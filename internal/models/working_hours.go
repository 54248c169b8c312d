package models

import "time"

// WorkingHours holds one barber's configured window for one weekday
// (0 = Sunday). Clock strings are "HH:MM:SS".
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID  uint `gorm:"uniqueIndex:idx_barber_day;not null" json:"barber_id"`
	DayOfWeek int  `gorm:"uniqueIndex:idx_barber_day;not null" json:"day_of_week"`

	StartTime   string `gorm:"size:8" json:"start_time"`
	EndTime     string `gorm:"size:8" json:"end_time"`
	IsAvailable bool   `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
