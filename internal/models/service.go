package models

import "time"

type Service struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `gorm:"index;not null" json:"providerId"`

	Name        string   `gorm:"size:100;not null" json:"name"`
	Category    string   `gorm:"size:50" json:"category"`
	DurationMin int      `gorm:"not null" json:"durationMinutes"`
	PriceFrom   float64  `json:"priceFrom"`
	PriceTo     *float64 `json:"priceTo,omitempty"`
	Active      bool     `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
