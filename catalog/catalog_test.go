package catalog

import "testing"

func TestPricingFallback(t *testing.T) {
	entry := Pricing("definitely not in the table")
	if entry != pricingTable[DefaultKey] {
		t.Errorf("Unknown class should return the default pricing entry, got %+v", entry)
	}
}

func TestImpactFallback(t *testing.T) {
	entry := Impact("definitely not in the table")
	if entry != impactTable[DefaultKey] {
		t.Errorf("Unknown class should return the default impact entry, got %+v", entry)
	}
}

func TestConditionMultiplierDefault(t *testing.T) {
	if got := ConditionMultiplier("mint, still in box"); got != 0.65 {
		t.Errorf("Unknown condition should use the good multiplier, got %v", got)
	}
	if got := ConditionMultiplier("poor"); got != 0.25 {
		t.Errorf("Expected poor multiplier 0.25, got %v", got)
	}
}

func TestActionMultipliers(t *testing.T) {
	cases := map[string]float64{
		ActionRecycle: 1.0,
		ActionSell:    0.9,
		ActionDonate:  0.8,
		ActionShare:   0.7,
		ActionTrash:   -0.2,
	}
	for kind, want := range cases {
		if got := ActionMultiplier(kind); got != want {
			t.Errorf("ActionMultiplier(%q) = %v, want %v", kind, got, want)
		}
	}
	if got := ActionMultiplier("juggle"); got != 0 {
		t.Errorf("Unknown action should multiply to 0, got %v", got)
	}
}

func TestBasePointsFallback(t *testing.T) {
	if got := BasePoints("recycle"); got != 50 {
		t.Errorf("Expected recycle base 50, got %d", got)
	}
	if got := BasePoints("juggle"); got != 10 {
		t.Errorf("Unknown kinds should fall back to the scan base, got %d", got)
	}
}

func TestValidActionKind(t *testing.T) {
	for _, kind := range []string{ActionRecycle, ActionSell, ActionDonate, ActionShare} {
		if !ValidActionKind(kind) {
			t.Errorf("Expected %q to be a valid player action", kind)
		}
	}
	for _, kind := range []string{ActionScan, ActionTrash, "", "burn"} {
		if ValidActionKind(kind) {
			t.Errorf("Expected %q to be rejected", kind)
		}
	}
}

func TestEveryPricingClassHasImpactProfile(t *testing.T) {
	for class := range pricingTable {
		if _, ok := impactTable[class]; !ok {
			t.Errorf("Class %q has pricing but no impact profile", class)
		}
	}
}

func TestAchievementCatalogWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range Achievements() {
		if def.ID == "" || def.Name == "" {
			t.Errorf("Achievement missing id or name: %+v", def)
		}
		if seen[def.ID] {
			t.Errorf("Duplicate achievement id %q", def.ID)
		}
		seen[def.ID] = true
		if def.Requirement.Threshold <= 0 {
			t.Errorf("Achievement %q has non-positive threshold", def.ID)
		}
	}
}
