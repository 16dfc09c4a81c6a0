package models

import "time"

// GamificationEvent is broadcast over WebSocket when progression changes.
type GamificationEvent struct {
	Type        string    `json:"type"` // "points_earned", "level_up", "achievement_unlocked"
	UserID      string    `json:"userId"`
	Action      string    `json:"action,omitempty"`
	Points      int       `json:"points,omitempty"`
	TotalPoints int       `json:"totalPoints,omitempty"`
	Level       int       `json:"level,omitempty"`
	Achievement string    `json:"achievement,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
