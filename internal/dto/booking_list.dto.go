package dto

import "time"

type BookingListDTO struct {
	ID           uint       `json:"id"`
	Position     int        `json:"position"`
	Status       string     `json:"status"`
	EstimatedAt  time.Time  `json:"estimatedAt"`
	EndsAt       time.Time  `json:"endsAt"`
	Duration     int        `json:"duration"`
	IsWalkIn     bool       `json:"isWalkIn"`
	CustomerName string     `json:"customerName"`
	ServiceName  string     `json:"serviceName"`
	StartedAt    *time.Time `json:"startedAt"`
	FinishedAt   *time.Time `json:"finishedAt"`
}
