package models

import "time"

// WorkingDay holds the opening hours of a provider for one weekday
// (0 = Sunday ... 6 = Saturday). Times are "HH:mm" in the provider timezone.
type WorkingDay struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `gorm:"uniqueIndex:idx_working_day_provider_weekday;not null" json:"providerId"`
	Weekday    int  `gorm:"uniqueIndex:idx_working_day_provider_weekday;not null" json:"weekday"`

	StartTime string `gorm:"size:5" json:"startTime"`
	EndTime   string `gorm:"size:5" json:"endTime"`
	IsOpen    bool   `json:"isOpen"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
