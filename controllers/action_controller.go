package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"ecocycle/models"
	"ecocycle/services"
	"ecocycle/structs"
	"ecocycle/websocket"

	"github.com/gin-gonic/gin"
)

// ConfirmAction applies the player's chosen disposal action: the scan is
// re-evaluated for that action, then the progression engine updates the
// player record atomically and the delta is broadcast.
func ConfirmAction(c *gin.Context) {
	userEmail := currentUserEmail(c)
	if userEmail == "" {
		return
	}

	var req structs.ConfirmActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	// Recompute price and impact server side for the confirmed action; the
	// client's numbers are display-only.
	price := services.EstimatePrice(req.ObjectClass, req.Condition, req.AgeMonths)
	impact := services.EstimateImpact(req.ObjectClass, req.ActionKind)

	scan := &models.ScanResult{
		ScanID:        req.ScanID,
		ObjectClass:   req.ObjectClass,
		Confidence:    req.Confidence,
		PriceEstimate: price,
		Impact:        impact,
	}

	ctx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	outcome, err := services.ApplyAction(ctx, userEmail, userEmail, scan, req.ActionKind)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidAction), errors.Is(err, models.ErrMissingScan):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case models.IsRetryable(err):
			c.JSON(http.StatusConflict, gin.H{"error": "Concurrent update, please retry"})
		default:
			log.Printf("Error applying action: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply action"})
		}
		return
	}

	services.SyncLeaderboardCache(userEmail, outcome.Player.TotalPoints)
	broadcastOutcome(userEmail, req.ActionKind, outcome)

	c.JSON(http.StatusOK, gin.H{
		"pointsEarned":    outcome.PointsEarned,
		"leveledUp":       outcome.LeveledUp,
		"newAchievements": outcome.NewAchievements,
		"totalPoints":     outcome.Player.TotalPoints,
		"level":           outcome.Player.Level,
		"xp":              outcome.Player.XP,
		"xpToNextLevel":   services.XPToNextLevel(outcome.Player.XP),
		"streakDays":      outcome.Player.Stats.StreakDays,
	})
}

func broadcastOutcome(userEmail, actionKind string, outcome *models.ActionOutcome) {
	websocket.BroadcastGamificationEvent(models.GamificationEvent{
		Type:        "points_earned",
		UserID:      userEmail,
		Action:      actionKind,
		Points:      outcome.PointsEarned,
		TotalPoints: outcome.Player.TotalPoints,
		Timestamp:   time.Now(),
	})

	if outcome.LeveledUp {
		websocket.BroadcastGamificationEvent(models.GamificationEvent{
			Type:      "level_up",
			UserID:    userEmail,
			Level:     outcome.Player.Level,
			Timestamp: time.Now(),
		})
	}

	for _, achievement := range outcome.NewAchievements {
		websocket.BroadcastGamificationEvent(models.GamificationEvent{
			Type:        "achievement_unlocked",
			UserID:      userEmail,
			Achievement: achievement.ID,
			Points:      achievement.Points,
			Timestamp:   time.Now(),
		})
	}
}

// Helper function to parse int
func parseInt(s string) (int, error) {
	var result int
	_, err := fmt.Sscanf(s, "%d", &result)
	return result, err
}
