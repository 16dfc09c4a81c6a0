package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"ecocycle/catalog"
	"ecocycle/db"
	"ecocycle/services"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the player's progression state, creating nothing:
// players that never confirmed an action get a zeroed view.
func GetProfile(c *gin.Context) {
	userEmail := currentUserEmail(c)
	if userEmail == "" {
		return
	}

	ctx, cancel := context.WithTimeout(c, 5*time.Second)
	defer cancel()

	player, err := db.FindPlayerByUserID(ctx, userEmail)
	if err != nil {
		log.Printf("Failed to fetch player: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	if player == nil {
		c.JSON(http.StatusOK, gin.H{
			"userId":        userEmail,
			"xp":            0,
			"level":         1,
			"totalPoints":   0,
			"xpToNextLevel": services.XPToNextLevel(0),
			"achievements":  []string{},
		})
		return
	}

	rank, err := services.PlayerRank(ctx, userEmail)
	if err != nil {
		log.Printf("Failed to compute rank: %v", err)
		rank = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":        player.UserID,
		"displayName":   player.DisplayName,
		"xp":            player.XP,
		"level":         player.Level,
		"totalPoints":   player.TotalPoints,
		"xpToNextLevel": services.XPToNextLevel(player.XP),
		"achievements":  player.Achievements,
		"stats":         player.Stats,
		"rank":          rank,
		"joinedAt":      player.JoinedAt,
	})
}

// GetAchievements lists the full catalog with the player's unlock state and
// progress percentage per achievement.
func GetAchievements(c *gin.Context) {
	userEmail := currentUserEmail(c)
	if userEmail == "" {
		return
	}

	ctx, cancel := context.WithTimeout(c, 5*time.Second)
	defer cancel()

	player, err := db.FindPlayerByUserID(ctx, userEmail)
	if err != nil {
		log.Printf("Failed to fetch player: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}

	unlocked := make(map[string]bool)
	if player != nil {
		for _, id := range player.Achievements {
			unlocked[id] = true
		}
	}

	type achievementView struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Points      int    `json:"points"`
		Unlocked    bool   `json:"unlocked"`
		Progress    int    `json:"progress"`
	}

	var views []achievementView
	for _, def := range catalog.Achievements() {
		progress := 0
		if unlocked[def.ID] {
			progress = 100
		} else if player != nil {
			progress = services.AchievementProgress(player, def)
		}
		views = append(views, achievementView{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			Points:      def.Points,
			Unlocked:    unlocked[def.ID],
			Progress:    progress,
		})
	}

	c.JSON(http.StatusOK, gin.H{"achievements": views, "unlockedCount": len(unlocked), "total": len(views)})
}
