package services

import (
	"testing"
)

func TestEstimatePriceLaptopExample(t *testing.T) {
	// 12 months at 0.12/month overshoots the floor, depreciation clamps to 0.1
	estimate := EstimatePrice("laptop", "good", 12)

	if estimate.Amount != 52.00 {
		t.Errorf("Expected laptop estimate 52.00, got %v", estimate.Amount)
	}
	if estimate.ConfidenceTier != "high" {
		t.Errorf("Expected high confidence tier, got %s", estimate.ConfidenceTier)
	}
	if estimate.Breakdown.AgeDepreciation != 0.1 {
		t.Errorf("Expected depreciation floored at 0.1, got %v", estimate.Breakdown.AgeDepreciation)
	}
}

func TestEstimatePriceUnknownClassUsesDefault(t *testing.T) {
	estimate := EstimatePrice("quantum flux capacitor", "good", 0)

	if estimate.Breakdown.Category != "general" {
		t.Errorf("Expected default category for unknown class, got %s", estimate.Breakdown.Category)
	}
	if estimate.Breakdown.BasePrice != 10 {
		t.Errorf("Expected default base price 10, got %v", estimate.Breakdown.BasePrice)
	}
}

func TestEstimatePriceUnknownConditionDefaultsToGood(t *testing.T) {
	known := EstimatePrice("laptop", "good", 0)
	unknown := EstimatePrice("laptop", "like new-ish", 0)

	if known.Amount != unknown.Amount {
		t.Errorf("Unknown condition should price like good: %v != %v", unknown.Amount, known.Amount)
	}
	if unknown.Breakdown.ConditionMultiplier != 0.65 {
		t.Errorf("Expected good multiplier 0.65, got %v", unknown.Breakdown.ConditionMultiplier)
	}
}

func TestEstimatePriceFloors(t *testing.T) {
	// Recyclables floor at a cent
	bottle := EstimatePrice("bottle", "poor", 600)
	if bottle.Amount < 0.01 {
		t.Errorf("Recyclable price below floor: %v", bottle.Amount)
	}

	// Everything else floors at fifty cents, even ancient junk
	chair := EstimatePrice("chair", "poor", 600)
	if chair.Amount < 0.50 {
		t.Errorf("Non-recyclable price below floor: %v", chair.Amount)
	}
}

func TestEstimatePriceNeverNegative(t *testing.T) {
	conditions := []string{"excellent", "good", "fair", "poor", ""}
	classes := []string{"laptop", "bottle", "chair", "book", "no-such-class"}
	ages := []int{0, 1, 12, 120, 1200}

	for _, class := range classes {
		for _, condition := range conditions {
			for _, age := range ages {
				if got := EstimatePrice(class, condition, age); got.Amount <= 0 {
					t.Errorf("estimatePrice(%q,%q,%d) = %v, want > 0", class, condition, age, got.Amount)
				}
			}
		}
	}
}
