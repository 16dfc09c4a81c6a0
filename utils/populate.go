package utils

import (
	"context"
	"time"

	"ecocycle/db"
	"ecocycle/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PopulateTestPlayers inserts sample players for local development. Skipped
// when the collection already has documents.
func PopulateTestPlayers() {
	collection := db.GetCollection("players")
	count, _ := collection.CountDocuments(context.Background(), bson.M{})
	if count > 0 {
		return
	}

	now := time.Now()
	testPlayers := []models.Player{
		{
			UserID:      "demo-maya",
			Email:       "maya@campus.edu",
			DisplayName: "Maya Green",
			XP:          2150,
			Level:       5,
			TotalPoints: 2150,
			Achievements: []string{
				"first_scan", "scans_10", "recycle_1", "recycle_25", "carbon_10", "points_1000",
			},
			Stats: models.PlayerStats{
				ScanCount: 48, RecycleCount: 31, SellCount: 4, DonateCount: 6,
				CarbonSaved: 42.7, MoneyEarned: 118.50, StreakDays: 4,
				LastActionAt: now.Add(-8 * time.Hour),
			},
			JoinedAt:  now.AddDate(0, -3, 0),
			UpdatedAt: now,
		},
		{
			UserID:      "demo-leo",
			Email:       "leo@campus.edu",
			DisplayName: "Leo Park",
			XP:          830,
			Level:       3,
			TotalPoints: 830,
			Achievements: []string{
				"first_scan", "scans_10", "recycle_1", "seller_1",
			},
			Stats: models.PlayerStats{
				ScanCount: 19, RecycleCount: 9, SellCount: 3, DonateCount: 1,
				CarbonSaved: 8.3, MoneyEarned: 64.00, StreakDays: 2,
				LastActionAt: now.Add(-20 * time.Hour),
			},
			JoinedAt:  now.AddDate(0, -1, -12),
			UpdatedAt: now,
		},
		{
			UserID:      "demo-ana",
			Email:       "ana@campus.edu",
			DisplayName: "Ana Silva",
			XP:          140,
			Level:       2,
			TotalPoints: 140,
			Achievements: []string{
				"first_scan", "recycle_1",
			},
			Stats: models.PlayerStats{
				ScanCount: 3, RecycleCount: 2, DonateCount: 1,
				CarbonSaved: 0.4, StreakDays: 1,
				LastActionAt: now.Add(-30 * time.Hour),
			},
			JoinedAt:  now.AddDate(0, 0, -9),
			UpdatedAt: now,
		},
	}

	var documents []interface{}
	for _, player := range testPlayers {
		documents = append(documents, player)
	}
	collection.InsertMany(context.Background(), documents)
}
