package services

import (
	"math"

	"ecocycle/catalog"
	"ecocycle/models"
)

// Depreciation never drops an item below 10% of its base value.
const minAgeDepreciation = 0.1

// Price floors keep zero or negative estimates out of the UI.
const (
	minPriceRecyclable = 0.01
	minPriceGeneral    = 0.50
)

// EstimatePrice derives a resale estimate from class, condition and age.
// It never fails: unknown classes use the default catalog entry and unknown
// conditions use the "good" multiplier.
func EstimatePrice(objectClass, condition string, ageMonths int) models.PriceEstimate {
	entry := catalog.Pricing(objectClass)

	ageDepreciation := 1 - float64(ageMonths)*entry.DepreciationRate
	if ageDepreciation < minAgeDepreciation {
		ageDepreciation = minAgeDepreciation
	}

	conditionMultiplier := catalog.ConditionMultiplier(condition)

	price := round2(entry.BasePrice * conditionMultiplier * ageDepreciation)
	floor := minPriceGeneral
	if entry.Category == "recyclable" {
		floor = minPriceRecyclable
	}
	if price < floor {
		price = floor
	}

	return models.PriceEstimate{
		Amount:         price,
		Currency:       "USD",
		ConfidenceTier: entry.ConfidenceTier,
		Breakdown: models.PriceBreakdown{
			BasePrice:           entry.BasePrice,
			ConditionMultiplier: conditionMultiplier,
			AgeDepreciation:     round2(ageDepreciation),
			Category:            entry.Category,
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
