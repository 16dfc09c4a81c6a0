package services

import (
	"ecocycle/catalog"
	"ecocycle/models"
)

// Conversion factors for the derived equivalence figures: one urban tree
// absorbs ~21.77 kg CO2 per year; one liter of crude oil emits ~2.68 kg CO2
// when burned.
const (
	kgCO2PerTreeYear = 21.77
	kgCO2PerLiterOil = 2.68
)

// EstimateImpact derives the environmental effect of applying an action to
// an object. Pure and infallible: unknown classes degrade to the default
// catalog profile.
func EstimateImpact(objectClass, actionKind string) models.EnvironmentalImpact {
	entry := catalog.Impact(objectClass)

	actionMultiplier := catalog.ActionMultiplier(actionKind)

	recycleEfficiency := 0.1
	if entry.Recyclable {
		recycleEfficiency = entry.RecycleRate
	}

	carbonSaved := round2(entry.CarbonFootprint * actionMultiplier * recycleEfficiency)
	energySaved := round2(entry.EnergySaved * actionMultiplier * recycleEfficiency)
	waterSaved := round2(entry.WaterSaved * actionMultiplier * recycleEfficiency)

	return models.EnvironmentalImpact{
		CarbonFootprint: entry.CarbonFootprint,
		CarbonSaved:     carbonSaved,
		EnergySaved:     energySaved,
		WaterSaved:      waterSaved,
		TreeEquivalent:  round2(carbonSaved / kgCO2PerTreeYear),
		OilSaved:        round2(carbonSaved / kgCO2PerLiterOil),
		Recyclable:      entry.Recyclable,
		RecycleRate:     entry.RecycleRate,
		ActionScore:     actionScore(entry, actionKind),
		Recommendations: impactRecommendations(entry, actionKind),
		Flags: models.ImpactFlags{
			RareEarths:     entry.RareEarths,
			ToxicMaterials: entry.ToxicMaterials,
		},
	}
}

// actionScore rates the chosen action 0-100 for this object.
func actionScore(entry catalog.ImpactEntry, actionKind string) int {
	score := catalog.ActionBaseScore(actionKind)

	if entry.Recyclable && entry.RecycleRate > 0.8 {
		score += 10
	}
	if actionKind == catalog.ActionTrash && entry.ToxicMaterials {
		score -= 30
	}
	if actionKind == catalog.ActionRecycle && entry.CarbonFootprint > 50 {
		score += 15
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// impactRecommendations builds advisory strings from the flag combinations.
// Order follows the flag checks, it is not sorted.
func impactRecommendations(entry catalog.ImpactEntry, actionKind string) []string {
	var recs []string

	if entry.ToxicMaterials && actionKind != catalog.ActionRecycle {
		recs = append(recs, "This item contains toxic materials. Please use a certified recycling facility instead of regular disposal.")
	}
	if entry.RareEarths {
		recs = append(recs, "Contains rare earth elements that can be recovered through specialized e-waste recycling.")
	}
	if entry.CarbonFootprint > 50 && actionKind == catalog.ActionTrash {
		recs = append(recs, "Throwing this away wastes a large embodied carbon footprint. Consider selling, donating or recycling instead.")
	}
	if entry.Recyclable && entry.RecycleRate > 0.8 {
		recs = append(recs, "Highly recyclable material. Great choice for the recycling bin!")
	}

	return recs
}
