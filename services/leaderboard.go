package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"ecocycle/db"
	"ecocycle/internal/rank"
	"ecocycle/models"
	"ecocycle/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PlayerRank scans at most this many documents; beyond it a player reports
// as unranked. Bounded on purpose, campus cohorts are small.
const rankWindow = 500

// LeaderboardEntry is one row of the campus leaderboard.
type LeaderboardEntry struct {
	UserID      string  `json:"userId"`
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	AvatarURL   string  `json:"avatarUrl"`
	TotalPoints int     `json:"totalPoints"`
	Level       int     `json:"level"`
	CarbonSaved float64 `json:"carbonSaved"`
	CurrentUser bool    `json:"currentUser"`
}

// CampusStats aggregates the whole player collection. Point-in-time
// snapshot, may race with in-flight progression updates.
type CampusStats struct {
	ActivePlayers    int     `json:"activePlayers"`
	TotalScans       int     `json:"totalScans"`
	TotalItemsSaved  int     `json:"totalItemsSaved"`
	TotalPoints      int     `json:"totalPoints"`
	TotalCarbonSaved float64 `json:"totalCarbonSaved"`
	TotalMoneyEarned float64 `json:"totalMoneyEarned"`
	TreeEquivalent   float64 `json:"treeEquivalent"`
}

// TopPlayers returns the leaderboard ordered by totalPoints descending.
// Ties break in storage order.
func TopPlayers(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	collection := db.GetCollection("players")
	opts := options.Find().
		SetSort(bson.D{{Key: "totalPoints", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching leaderboard: %w", err)
	}
	defer cursor.Close(ctx)

	var players []models.Player
	if err := cursor.All(ctx, &players); err != nil {
		return nil, fmt.Errorf("decoding leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(players))
	for i, player := range players {
		entries = append(entries, leaderboardEntry(player, i+1))
	}
	return entries, nil
}

// PlayerRank returns the 1-based leaderboard position of a player, found
// within the bounded window. Returns 0 when unranked.
func PlayerRank(ctx context.Context, userID string) (int, error) {
	// The redis mirror answers ranks in O(log n) when it is warm.
	if r, ok := rank.Rank(ctx, userID); ok {
		return r, nil
	}

	collection := db.GetCollection("players")
	opts := options.Find().
		SetSort(bson.D{{Key: "totalPoints", Value: -1}}).
		SetLimit(rankWindow).
		SetProjection(bson.M{"userId": 1})

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return 0, fmt.Errorf("fetching rank window: %w", err)
	}
	defer cursor.Close(ctx)

	position := 0
	for cursor.Next(ctx) {
		position++
		var doc struct {
			UserID string `bson:"userId"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return 0, fmt.Errorf("decoding rank window: %w", err)
		}
		if doc.UserID == userID {
			return position, nil
		}
	}
	return 0, nil
}

// GetCampusStats sums the collection over players that have at least one
// recorded scan. Empty input yields zeroed stats, never an error.
func GetCampusStats(ctx context.Context) (*CampusStats, error) {
	collection := db.GetCollection("players")

	cursor, err := collection.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"stats.scanCount": bson.M{"$gt": 0}}},
		{"$group": bson.M{
			"_id":         nil,
			"players":     bson.M{"$sum": 1},
			"scans":       bson.M{"$sum": "$stats.scanCount"},
			"recycled":    bson.M{"$sum": "$stats.recycleCount"},
			"sold":        bson.M{"$sum": "$stats.sellCount"},
			"donated":     bson.M{"$sum": "$stats.donateCount"},
			"points":      bson.M{"$sum": "$totalPoints"},
			"carbonSaved": bson.M{"$sum": "$stats.carbonSaved"},
			"moneyEarned": bson.M{"$sum": "$stats.moneyEarned"},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregating campus stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Players     int     `bson:"players"`
		Scans       int     `bson:"scans"`
		Recycled    int     `bson:"recycled"`
		Sold        int     `bson:"sold"`
		Donated     int     `bson:"donated"`
		Points      int     `bson:"points"`
		CarbonSaved float64 `bson:"carbonSaved"`
		MoneyEarned float64 `bson:"moneyEarned"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decoding campus stats: %w", err)
	}
	if len(rows) == 0 {
		return &CampusStats{}, nil
	}

	row := rows[0]
	return &CampusStats{
		ActivePlayers:    row.Players,
		TotalScans:       row.Scans,
		TotalItemsSaved:  row.Recycled + row.Sold + row.Donated,
		TotalPoints:      row.Points,
		TotalCarbonSaved: round2(row.CarbonSaved),
		TotalMoneyEarned: round2(row.MoneyEarned),
		TreeEquivalent:   TreeEquivalent(row.CarbonSaved),
	}, nil
}

// TreeEquivalent converts kg of CO2 into yearly urban-tree equivalents.
func TreeEquivalent(carbonSavedKg float64) float64 {
	return round2(carbonSavedKg / kgCO2PerTreeYear)
}

// SyncLeaderboardCache mirrors a player's totalPoints into the redis ZSET.
// Best effort: the mirror only accelerates reads, mongo stays authoritative.
func SyncLeaderboardCache(userID string, totalPoints int) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rank.SetScore(ctx, userID, totalPoints); err != nil {
		log.Printf("Error syncing leaderboard cache: %v", err)
	}
}

func leaderboardEntry(player models.Player, position int) LeaderboardEntry {
	name := player.DisplayName
	if name == "" {
		name = utils.ExtractNameFromEmail(player.Email)
	}
	avatarURL := player.AvatarURL
	if avatarURL == "" {
		avatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + name
	}
	return LeaderboardEntry{
		UserID:      player.UserID,
		Rank:        position,
		Name:        name,
		AvatarURL:   avatarURL,
		TotalPoints: player.TotalPoints,
		Level:       player.Level,
		CarbonSaved: round2(player.Stats.CarbonSaved),
	}
}
