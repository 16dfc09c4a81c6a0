package services

import (
	"testing"

	"ecocycle/models"
)

func TestRecommendActionsCellPhoneExample(t *testing.T) {
	price := models.PriceEstimate{Amount: 52}
	impact := models.EnvironmentalImpact{
		Recyclable:  true,
		RecycleRate: 0.45,
		Flags:       models.ImpactFlags{ToxicMaterials: true, RareEarths: true},
	}

	actions := RecommendActions("cell phone", price, impact)

	if len(actions) != 4 {
		t.Fatalf("Expected 4 actions (e-waste, recycle, sell, share), got %d", len(actions))
	}

	// Both priority-1 recycle entries sort first, e-waste ahead by insertion order
	if actions[0].ActionKind != "recycle" || actions[0].Metadata["warning"] == "" {
		t.Errorf("Expected e-waste recycle entry first, got %+v", actions[0])
	}
	if actions[1].ActionKind != "recycle" || actions[1].Priority != 1 {
		t.Errorf("Expected generic recycle entry at priority 1 second, got %+v", actions[1])
	}
	if actions[2].ActionKind != "sell" || actions[2].Priority != 2 {
		t.Errorf("Expected sell at priority 2 third, got %+v", actions[2])
	}
	if actions[3].ActionKind != "share" || actions[3].Priority != 3 {
		t.Errorf("Expected share at priority 3 last, got %+v", actions[3])
	}
	for _, action := range actions {
		if action.ActionKind == "donate" {
			t.Errorf("Donate should be superseded by sell at this price, got %+v", actions)
		}
	}
}

func TestRecommendActionsSellSupersedesDonate(t *testing.T) {
	// 52 sits inside the donate window but above the sell threshold; only
	// the sell entry should come out.
	price := models.PriceEstimate{Amount: 52, Currency: "USD"}

	actions := RecommendActions("backpack", price, models.EnvironmentalImpact{})

	var sell *models.RecommendedAction
	for i, action := range actions {
		switch action.ActionKind {
		case "donate":
			t.Errorf("Expected no donate entry alongside sell, got %+v", actions)
		case "sell":
			sell = &actions[i]
		}
	}
	if sell == nil {
		t.Fatalf("Expected a sell entry for a 52 dollar item, got %+v", actions)
	}
	if sell.Metadata["estimatedValue"] != "52.00" {
		t.Errorf("Expected estimatedValue 52.00, got %q", sell.Metadata["estimatedValue"])
	}
	if sell.Metadata["currency"] != "USD" {
		t.Errorf("Expected currency USD, got %q", sell.Metadata["currency"])
	}
}

func TestRecommendActionsDonateWindow(t *testing.T) {
	price := models.PriceEstimate{Amount: 45}
	impact := models.EnvironmentalImpact{}

	actions := RecommendActions("backpack", price, impact)

	foundDonate := false
	for _, action := range actions {
		if action.ActionKind == "donate" {
			foundDonate = true
			if action.Priority != 2 {
				t.Errorf("Expected donate priority 2, got %d", action.Priority)
			}
		}
	}
	if !foundDonate {
		t.Errorf("Expected donate for a 45 dollar item, got %+v", actions)
	}
}

func TestRecommendActionsPlainContainerNoShare(t *testing.T) {
	price := models.PriceEstimate{Amount: 0.10}
	impact := models.EnvironmentalImpact{Recyclable: true, RecycleRate: 0.75}

	actions := RecommendActions("bottle", price, impact)

	for _, action := range actions {
		if action.ActionKind == "share" {
			t.Errorf("Bottles should not get a share recommendation")
		}
	}
	if len(actions) != 1 || actions[0].ActionKind != "recycle" {
		t.Errorf("Expected only recycle for a bottle, got %+v", actions)
	}
}

func TestRecommendActionsEmptyListIsValid(t *testing.T) {
	// cheap, non-recyclable container triggers nothing
	price := models.PriceEstimate{Amount: 0.05}
	impact := models.EnvironmentalImpact{Recyclable: false}

	actions := RecommendActions("cup", price, impact)

	if len(actions) != 0 {
		t.Errorf("Expected empty recommendation list, got %+v", actions)
	}
}

func TestRecommendActionsSortedByPriority(t *testing.T) {
	price := models.PriceEstimate{Amount: 80}
	impact := models.EnvironmentalImpact{Recyclable: true, Flags: models.ImpactFlags{ToxicMaterials: true}}

	actions := RecommendActions("monitor", price, impact)

	for i := 1; i < len(actions); i++ {
		if actions[i-1].Priority > actions[i].Priority {
			t.Errorf("Actions not sorted by priority: %+v", actions)
		}
	}
}
