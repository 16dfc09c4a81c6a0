package services

import (
	"strings"
	"testing"
)

func TestEstimateImpactBottleRecycleExample(t *testing.T) {
	impact := EstimateImpact("bottle", "recycle")

	// 0.08 footprint x 1.0 action multiplier x 0.75 recycle rate
	if impact.CarbonSaved != 0.06 {
		t.Errorf("Expected carbonSaved 0.06, got %v", impact.CarbonSaved)
	}
	if !impact.Recyclable {
		t.Errorf("Expected bottle to be recyclable")
	}
	if impact.RecycleRate != 0.75 {
		t.Errorf("Expected recycle rate 0.75, got %v", impact.RecycleRate)
	}
}

func TestEstimateImpactTrashIsNegative(t *testing.T) {
	impact := EstimateImpact("bottle", "trash")

	if impact.CarbonSaved >= 0 {
		t.Errorf("Trashing should contribute negatively, got carbonSaved %v", impact.CarbonSaved)
	}
}

func TestEstimateImpactNonRecyclableEfficiency(t *testing.T) {
	// backpack is non-recyclable, efficiency drops to 0.1
	impact := EstimateImpact("backpack", "recycle")

	// 25 x 1.0 x 0.1
	if impact.CarbonSaved != 2.5 {
		t.Errorf("Expected carbonSaved 2.5 at fallback efficiency, got %v", impact.CarbonSaved)
	}
}

func TestActionScoreBounds(t *testing.T) {
	classes := []string{"laptop", "cell phone", "bottle", "can", "backpack", "unknown thing"}
	actions := []string{"recycle", "sell", "donate", "share", "trash"}

	for _, class := range classes {
		for _, action := range actions {
			impact := EstimateImpact(class, action)
			if impact.ActionScore < 0 || impact.ActionScore > 100 {
				t.Errorf("actionScore(%q,%q) = %d out of [0,100]", class, action, impact.ActionScore)
			}
		}
	}
}

func TestActionScoreBonuses(t *testing.T) {
	// can: recyclable with rate 0.9 > 0.8 -> recycle 85 + 10
	can := EstimateImpact("can", "recycle")
	if can.ActionScore != 95 {
		t.Errorf("Expected can recycle score 95, got %d", can.ActionScore)
	}

	// laptop: footprint 250 > 50 -> recycle 85 + 15 = 100
	laptop := EstimateImpact("laptop", "recycle")
	if laptop.ActionScore != 100 {
		t.Errorf("Expected laptop recycle score 100, got %d", laptop.ActionScore)
	}

	// laptop trash: 10 - 30 toxic penalty clamps to 0
	trashed := EstimateImpact("laptop", "trash")
	if trashed.ActionScore != 0 {
		t.Errorf("Expected toxic trash score clamped to 0, got %d", trashed.ActionScore)
	}
}

func TestImpactRecommendationsFlagOrder(t *testing.T) {
	// laptop sold: toxic warning first, then rare earth note
	impact := EstimateImpact("laptop", "sell")

	if len(impact.Recommendations) < 2 {
		t.Fatalf("Expected at least 2 recommendations, got %d", len(impact.Recommendations))
	}
	if !strings.Contains(impact.Recommendations[0], "toxic") {
		t.Errorf("Expected toxic warning first, got %q", impact.Recommendations[0])
	}
	if !strings.Contains(impact.Recommendations[1], "rare earth") {
		t.Errorf("Expected rare earth note second, got %q", impact.Recommendations[1])
	}
}

func TestEstimateImpactUnknownClassDefaults(t *testing.T) {
	impact := EstimateImpact("mystery object", "recycle")

	if impact.CarbonFootprint != 5 {
		t.Errorf("Expected default footprint 5, got %v", impact.CarbonFootprint)
	}
	if impact.Recyclable {
		t.Errorf("Default profile should not be recyclable")
	}
}
