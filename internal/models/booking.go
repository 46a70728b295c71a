package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint `gorm:"index:idx_booking_queue,priority:1;not null" json:"providerId"`

	ServiceID uint    `gorm:"not null" json:"serviceId"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	CustomerID *uint `gorm:"index" json:"customerId"`
	Customer   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`

	GuestName  string `gorm:"size:100" json:"guestName,omitempty"`
	GuestPhone string `gorm:"size:20" json:"guestPhone,omitempty"`
	IsWalkIn   bool   `gorm:"default:false" json:"isWalkIn"`

	// Snapshot of Service.DurationMin taken at creation.
	DurationMin int `gorm:"not null" json:"duration"`
	Position    int `gorm:"not null" json:"position"`

	Status      string     `gorm:"size:20;default:'PENDING';index" json:"status"`
	EstimatedAt time.Time  `gorm:"index:idx_booking_queue,priority:2;not null" json:"estimatedAt"`
	StartedAt   *time.Time `json:"startedAt"`
	FinishedAt  *time.Time `json:"finishedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EndsAt is the projected end of the booking based on its duration snapshot.
func (b Booking) EndsAt() time.Time {
	return b.EstimatedAt.Add(time.Duration(b.DurationMin) * time.Minute)
}
