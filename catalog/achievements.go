package catalog

import "ecocycle/models"

// achievementDefs is the full achievement catalog. Single-metric thresholds
// so progress toward each is directly displayable.
var achievementDefs = []models.AchievementDefinition{
	{
		ID: "first_scan", Name: "First Steps", Icon: "camera",
		Description: "Scan your first item",
		Points:      25,
		Requirement: models.AchievementRequirement{Metric: models.MetricScanCount, Threshold: 1},
	},
	{
		ID: "scans_10", Name: "Keen Eye", Icon: "magnifier",
		Description: "Scan 10 items",
		Points:      50,
		Requirement: models.AchievementRequirement{Metric: models.MetricScanCount, Threshold: 10},
	},
	{
		ID: "scans_100", Name: "Campus Scanner", Icon: "radar",
		Description: "Scan 100 items",
		Points:      250,
		Requirement: models.AchievementRequirement{Metric: models.MetricScanCount, Threshold: 100},
	},
	{
		ID: "recycle_1", Name: "Green Start", Icon: "leaf",
		Description: "Recycle your first item",
		Points:      30,
		Requirement: models.AchievementRequirement{Metric: models.MetricRecycleCount, Threshold: 1},
	},
	{
		ID: "recycle_25", Name: "Recycling Regular", Icon: "loop",
		Description: "Recycle 25 items",
		Points:      150,
		Requirement: models.AchievementRequirement{Metric: models.MetricRecycleCount, Threshold: 25},
	},
	{
		ID: "recycle_100", Name: "Recycling Hero", Icon: "trophy",
		Description: "Recycle 100 items",
		Points:      500,
		Requirement: models.AchievementRequirement{Metric: models.MetricRecycleCount, Threshold: 100},
	},
	{
		ID: "carbon_10", Name: "Carbon Cutter", Icon: "cloud",
		Description: "Save 10 kg of CO2",
		Points:      100,
		Requirement: models.AchievementRequirement{Metric: models.MetricCarbonSaved, Threshold: 10},
	},
	{
		ID: "carbon_100", Name: "Climate Champion", Icon: "globe",
		Description: "Save 100 kg of CO2",
		Points:      400,
		Requirement: models.AchievementRequirement{Metric: models.MetricCarbonSaved, Threshold: 100},
	},
	{
		ID: "seller_1", Name: "First Sale", Icon: "tag",
		Description: "Sell your first item",
		Points:      40,
		Requirement: models.AchievementRequirement{Metric: models.MetricSellCount, Threshold: 1},
	},
	{
		ID: "donor_5", Name: "Generous Spirit", Icon: "gift",
		Description: "Donate 5 items",
		Points:      120,
		Requirement: models.AchievementRequirement{Metric: models.MetricDonateCount, Threshold: 5},
	},
	{
		ID: "streak_7", Name: "Week Warrior", Icon: "fire",
		Description: "Keep a 7 day streak",
		Points:      200,
		Requirement: models.AchievementRequirement{Metric: models.MetricStreakDays, Threshold: 7},
	},
	{
		ID: "points_1000", Name: "Point Collector", Icon: "star",
		Description: "Earn 1000 lifetime points",
		Points:      150,
		Requirement: models.AchievementRequirement{Metric: models.MetricTotalPoints, Threshold: 1000},
	},
}

// Achievements returns all achievement definitions in catalog order.
func Achievements() []models.AchievementDefinition {
	return achievementDefs
}

// AchievementByID looks up one definition; ok is false for unknown ids.
func AchievementByID(id string) (models.AchievementDefinition, bool) {
	for _, def := range achievementDefs {
		if def.ID == id {
			return def, true
		}
	}
	return models.AchievementDefinition{}, false
}
