package models

// Achievement requirement metrics. Each definition targets one cumulative
// stat; progress toward the threshold is directly computable from it.
const (
	MetricScanCount    = "scanCount"
	MetricRecycleCount = "recycleCount"
	MetricSellCount    = "sellCount"
	MetricDonateCount  = "donateCount"
	MetricCarbonSaved  = "carbonSaved"
	MetricStreakDays   = "streakDays"
	MetricTotalPoints  = "totalPoints"
)

// AchievementRequirement is a single-metric threshold predicate.
type AchievementRequirement struct {
	Metric    string  `json:"metric"`
	Threshold float64 `json:"threshold"`
}

// AchievementDefinition is a static catalog entry. Unlocks are recorded on
// the player by ID and never removed.
type AchievementDefinition struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Icon        string                 `json:"icon"`
	Points      int                    `json:"points"`
	Requirement AchievementRequirement `json:"requirement"`
}

// MetricValue extracts the requirement metric from updated player state.
func MetricValue(metric string, player *Player) float64 {
	switch metric {
	case MetricScanCount:
		return float64(player.Stats.ScanCount)
	case MetricRecycleCount:
		return float64(player.Stats.RecycleCount)
	case MetricSellCount:
		return float64(player.Stats.SellCount)
	case MetricDonateCount:
		return float64(player.Stats.DonateCount)
	case MetricCarbonSaved:
		return player.Stats.CarbonSaved
	case MetricStreakDays:
		return float64(player.Stats.StreakDays)
	case MetricTotalPoints:
		return float64(player.TotalPoints)
	default:
		return 0
	}
}

// Met reports whether the requirement is satisfied by the player's stats.
func (r AchievementRequirement) Met(player *Player) bool {
	return MetricValue(r.Metric, player) >= r.Threshold
}
