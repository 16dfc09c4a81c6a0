package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"ecocycle/services"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard fetches the ranked players plus campus-wide stats.
func GetLeaderboard(c *gin.Context) {
	userEmail := currentUserEmail(c)
	if userEmail == "" {
		return
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := parseInt(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	ctx, cancel := context.WithTimeout(c, 5*time.Second)
	defer cancel()

	entries, err := services.TopPlayers(ctx, limit)
	if err != nil {
		log.Printf("Failed to fetch leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
		return
	}

	for i := range entries {
		entries[i].CurrentUser = entries[i].UserID == userEmail
	}

	stats, err := services.GetCampusStats(ctx)
	if err != nil {
		log.Printf("Failed to fetch campus stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campus stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"players": entries,
		"stats":   stats,
		"total":   len(entries),
	})
}

// GetPlayerRank returns the requesting player's leaderboard position.
func GetPlayerRank(c *gin.Context) {
	userEmail := currentUserEmail(c)
	if userEmail == "" {
		return
	}

	ctx, cancel := context.WithTimeout(c, 5*time.Second)
	defer cancel()

	rank, err := services.PlayerRank(ctx, userEmail)
	if err != nil {
		log.Printf("Failed to compute rank: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute rank"})
		return
	}

	if rank == 0 {
		c.JSON(http.StatusOK, gin.H{"ranked": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ranked": true, "rank": rank})
}

// GetCampusStats returns the campus-wide aggregate alone.
func GetCampusStats(c *gin.Context) {
	if email := currentUserEmail(c); email == "" {
		return
	}

	ctx, cancel := context.WithTimeout(c, 5*time.Second)
	defer cancel()

	stats, err := services.GetCampusStats(ctx)
	if err != nil {
		log.Printf("Failed to fetch campus stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch campus stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
