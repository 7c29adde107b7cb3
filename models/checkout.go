package models

import "time"

// CheckoutEvent is published to Kafka after a checkout settles.
type CheckoutEvent struct {
	Event     string     `json:"event"` // e.g. "checkout.completed"
	Email     string     `json:"email"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Timestamp time.Time  `json:"timestamp"`
}
