package models

import "time"

// Barber is the professional profile of a user with role "barber".
type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Specialties     string  `gorm:"size:255" json:"specialties"`
	YearsExperience int     `json:"years_experience"`
	Bio             string  `gorm:"type:text" json:"bio"`
	Rating          float64 `gorm:"default:0" json:"rating"`
	TotalReviews    int     `gorm:"default:0" json:"total_reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
