package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"ecocycle/catalog"
	"ecocycle/db"
	"ecocycle/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// How many times a lost versioned write is re-run before the conflict is
// surfaced to the caller.
const maxApplyRetries = 3

// Streak window: acting again within 48h keeps the streak alive.
const streakWindowHours = 48

// ApplyAction is the single mutating operation of the progression engine.
// It validates the input, then runs a read-modify-write against the player
// document guarded by its version field. A lost race is retried from the
// read; after maxApplyRetries the conflict is returned and the caller may
// retry the whole call. Nothing is partially applied on conflict.
func ApplyAction(ctx context.Context, userID, email string, scan *models.ScanResult, actionKind string) (*models.ActionOutcome, error) {
	if !catalog.ValidActionKind(actionKind) {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidAction, actionKind)
	}
	if scan == nil || scan.ObjectClass == "" {
		return nil, models.ErrMissingScan
	}

	var lastErr error
	for attempt := 0; attempt < maxApplyRetries; attempt++ {
		outcome, err := applyActionOnce(ctx, userID, email, scan, actionKind)
		if errors.Is(err, models.ErrConflict) {
			lastErr = err
			continue
		}
		return outcome, err
	}
	return nil, lastErr
}

func applyActionOnce(ctx context.Context, userID, email string, scan *models.ScanResult, actionKind string) (*models.ActionOutcome, error) {
	player, err := loadOrCreatePlayer(ctx, userID, email)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	pointsEarned := computePoints(catalog.BasePoints(actionKind), player.Level, scan.Impact.CarbonSaved, player.Stats.StreakDays)

	// Every confirmed action counts as a scan-derived event.
	player.Stats.ScanCount++
	switch actionKind {
	case catalog.ActionRecycle:
		player.Stats.RecycleCount++
	case catalog.ActionSell:
		player.Stats.SellCount++
		player.Stats.MoneyEarned += scan.PriceEstimate.Amount
	case catalog.ActionDonate:
		player.Stats.DonateCount++
	case catalog.ActionShare:
		player.Stats.ShareCount++
	}
	player.Stats.CarbonSaved += scan.Impact.CarbonSaved
	player.Stats.StreakDays = streakAfterAction(player.Stats.LastActionAt, now)
	player.Stats.LastActionAt = now

	oldLevel := player.Level
	player.XP += pointsEarned
	player.TotalPoints += pointsEarned
	player.Level = LevelForXP(player.XP)

	newAchievements := unlockedNow(player)
	for _, def := range newAchievements {
		player.Achievements = append(player.Achievements, def.ID)
		player.XP += def.Points
		player.TotalPoints += def.Points
	}
	// Achievement rewards can push the level again.
	player.Level = LevelForXP(player.XP)

	player.UpdatedAt = now
	if err := storePlayer(ctx, player); err != nil {
		return nil, err
	}

	recordScoreEvent(userID, actionKind, scan, pointsEarned)

	return &models.ActionOutcome{
		PointsEarned:    pointsEarned,
		LeveledUp:       player.Level > oldLevel,
		NewAchievements: newAchievements,
		Player:          player,
	}, nil
}

// loadOrCreatePlayer fetches the player document, lazily creating it with
// defaults on first access. A duplicate-key failure on insert means another
// writer created it concurrently; that surfaces as a conflict so the retry
// loop re-reads.
func loadOrCreatePlayer(ctx context.Context, userID, email string) (*models.Player, error) {
	collection := db.GetCollection("players")

	var player models.Player
	err := collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&player)
	if err == nil {
		if player.Stats.StreakDays < 1 {
			player.Stats.StreakDays = 1
		}
		return &player, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("loading player: %w", err)
	}

	player = newPlayer(userID, email)
	if _, err := collection.InsertOne(ctx, player); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.ErrConflict
		}
		return nil, fmt.Errorf("creating player: %w", err)
	}
	if err := collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&player); err != nil {
		return nil, fmt.Errorf("reloading created player: %w", err)
	}
	return &player, nil
}

func newPlayer(userID, email string) models.Player {
	now := time.Now()
	return models.Player{
		UserID:       userID,
		Email:        email,
		Level:        1,
		Achievements: []string{},
		Stats:        models.PlayerStats{StreakDays: 1},
		Version:      0,
		JoinedAt:     now,
		UpdatedAt:    now,
	}
}

// storePlayer writes the full updated record, matching on the version read
// at the start of the cycle. A missed match means a concurrent writer won.
func storePlayer(ctx context.Context, player *models.Player) error {
	collection := db.GetCollection("players")

	expectedVersion := player.Version
	player.Version = expectedVersion + 1

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": player.ID, "version": expectedVersion},
		bson.M{"$set": bson.M{
			"email":        player.Email,
			"displayName":  player.DisplayName,
			"xp":           player.XP,
			"level":        player.Level,
			"totalPoints":  player.TotalPoints,
			"achievements": player.Achievements,
			"stats":        player.Stats,
			"version":      player.Version,
			"updatedAt":    player.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("storing player: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrConflict
	}
	return nil
}

// recordScoreEvent appends to the activity log. Best effort: a failed append
// never fails the action that earned the points.
func recordScoreEvent(userID, actionKind string, scan *models.ScanResult, points int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	event := models.ScoreEvent{
		UserID:      userID,
		Action:      actionKind,
		ObjectClass: scan.ObjectClass,
		Points:      points,
		CarbonSaved: scan.Impact.CarbonSaved,
		CreatedAt:   time.Now(),
	}
	if _, err := db.GetCollection("score_events").InsertOne(ctx, event); err != nil {
		log.Printf("Error recording score event: %v", err)
	}
}

// computePoints applies the reward formula: base points scaled by level,
// environmental impact and streak, floored to an int.
func computePoints(basePoints, level int, carbonSaved float64, streakDays int) int {
	levelMultiplier := 1 + float64(level)*0.1
	environmentalBonus := 1.0
	if carbonSaved > 1 {
		environmentalBonus = 1.5
	}
	streakBonus := 1 + float64(streakDays)*0.05
	return int(math.Floor(float64(basePoints) * levelMultiplier * environmentalBonus * streakBonus))
}

// streakAfterAction recomputes the streak from elapsed time. Within the 48h
// window the streak is floor(hours/24)+1; outside it, or on the first ever
// action, it resets to 1. Exactly 48h still counts.
func streakAfterAction(lastAction, now time.Time) int {
	if lastAction.IsZero() {
		return 1
	}
	hoursSince := now.Sub(lastAction).Hours()
	if hoursSince <= streakWindowHours {
		return int(math.Floor(hoursSince/24)) + 1
	}
	return 1
}

// LevelForXP maps experience to a level on the square-root curve. Level 1
// starts at 0 XP; reaching level n+1 takes n^2 * 100 XP.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Floor(math.Sqrt(float64(xp)/100))) + 1
}

// XPToNextLevel returns how much XP is missing to reach the next level.
func XPToNextLevel(xp int) int {
	level := LevelForXP(xp)
	needed := level*level*100 - xp
	if needed < 0 {
		return 0
	}
	return needed
}

// unlockedNow evaluates every locked achievement against the updated stats
// and returns the ones whose requirement just became satisfied. Already
// unlocked achievements are skipped, so re-qualifying is a no-op.
func unlockedNow(player *models.Player) []models.AchievementDefinition {
	unlocked := make(map[string]bool, len(player.Achievements))
	for _, id := range player.Achievements {
		unlocked[id] = true
	}

	var newly []models.AchievementDefinition
	for _, def := range catalog.Achievements() {
		if unlocked[def.ID] {
			continue
		}
		if def.Requirement.Met(player) {
			newly = append(newly, def)
		}
	}
	return newly
}

// AchievementProgress reports how far the player is toward an achievement,
// as a percentage capped at 100.
func AchievementProgress(player *models.Player, def models.AchievementDefinition) int {
	if def.Requirement.Threshold <= 0 {
		return 100
	}
	progress := int(math.Floor(models.MetricValue(def.Requirement.Metric, player) / def.Requirement.Threshold * 100))
	if progress > 100 {
		return 100
	}
	return progress
}
