package service

import (
	"context"
)

// ScanEvent represents a completed scan interpretation, published for async
// consumers (analytics, push campaigns). Repeat scans are published too, with
// PointsAwarded set to zero.
type ScanEvent struct {
	RequestID     string  `json:"request_id,omitempty"` // For distributed tracing
	UserID        string  `json:"user_id"`
	LocationID    string  `json:"location_id"`
	LocationName  string  `json:"location_name"`
	PointsAwarded int     `json:"points_awarded"`
	TotalPoints   int     `json:"total_points"`
	Level         int     `json:"level"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishScanEvent publishes a scan event for async processing
	PublishScanEvent(ctx context.Context, event *ScanEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
