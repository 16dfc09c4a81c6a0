package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Player defines a player entity. One document per user; mutated only by
// the progression service's versioned update.
type Player struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string             `bson:"userId" json:"userId"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName" json:"displayName"`
	AvatarURL   string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`

	XP          int `bson:"xp" json:"xp"`
	Level       int `bson:"level" json:"level"`
	TotalPoints int `bson:"totalPoints" json:"totalPoints"`

	Achievements []string    `bson:"achievements" json:"achievements"`
	Stats        PlayerStats `bson:"stats" json:"stats"`

	// Version guards the read-modify-write cycle. Every successful update
	// increments it; an update whose filter misses the expected version lost
	// the race and must be retried from the read.
	Version int64 `bson:"version" json:"-"`

	JoinedAt  time.Time `bson:"joinedAt" json:"joinedAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PlayerStats holds the cumulative counters achievement predicates run over.
// All counters only grow; StreakDays never drops below 1 once set.
type PlayerStats struct {
	ScanCount    int       `bson:"scanCount" json:"scanCount"`
	RecycleCount int       `bson:"recycleCount" json:"recycleCount"`
	SellCount    int       `bson:"sellCount" json:"sellCount"`
	DonateCount  int       `bson:"donateCount" json:"donateCount"`
	ShareCount   int       `bson:"shareCount" json:"shareCount"`
	CarbonSaved  float64   `bson:"carbonSaved" json:"carbonSaved"`
	MoneyEarned  float64   `bson:"moneyEarned" json:"moneyEarned"`
	StreakDays   int       `bson:"streakDays" json:"streakDays"`
	LastActionAt time.Time `bson:"lastActionAt,omitempty" json:"lastActionAt,omitempty"`
}

// ActionOutcome is the delta returned to the caller after ApplyAction.
type ActionOutcome struct {
	PointsEarned    int                     `json:"pointsEarned"`
	LeveledUp       bool                    `json:"leveledUp"`
	NewAchievements []AchievementDefinition `json:"newAchievements"`
	Player          *Player                 `json:"player"`
}

// ScoreEvent records one applied action for the activity log.
type ScoreEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string             `bson:"userId" json:"userId"`
	Action      string             `bson:"action" json:"action"`
	ObjectClass string             `bson:"objectClass" json:"objectClass"`
	Points      int                `bson:"points" json:"points"`
	CarbonSaved float64            `bson:"carbonSaved" json:"carbonSaved"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
