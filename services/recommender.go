package services

import (
	"sort"
	"strconv"

	"ecocycle/catalog"
	"ecocycle/models"
)

// RecommendActions ranks candidate disposal actions for a scanned object.
// The final list is stable-sorted by ascending priority (1 = most urgent).
// The list may contain two recycle entries for toxic electronics: the
// dedicated e-waste entry keeps its safety framing next to the generic one.
// An empty list is a valid outcome.
func RecommendActions(objectClass string, price models.PriceEstimate, impact models.EnvironmentalImpact) []models.RecommendedAction {
	var actions []models.RecommendedAction

	sellable := price.Amount > 50
	if sellable {
		actions = append(actions, models.RecommendedAction{
			ActionKind:     catalog.ActionSell,
			Title:          "Sell it - estimated value is worth the listing",
			Priority:       2,
			ExpectedPoints: catalog.BasePoints(catalog.ActionSell),
			Metadata: map[string]string{
				"estimatedValue": strconv.FormatFloat(price.Amount, 'f', 2, 64),
				"currency":       price.Currency,
			},
		})
	}

	if impact.Recyclable {
		priority := 2
		if impact.Flags.ToxicMaterials {
			priority = 1
		}
		actions = append(actions, models.RecommendedAction{
			ActionKind:     catalog.ActionRecycle,
			Title:          "Recycle through campus collection",
			Priority:       priority,
			ExpectedPoints: catalog.BasePoints(catalog.ActionRecycle),
		})
	}

	// Donate is the mid-value alternative; once the item is worth selling
	// the sell entry supersedes it.
	if !sellable && price.Amount > 10 && price.Amount < 100 {
		actions = append(actions, models.RecommendedAction{
			ActionKind:     catalog.ActionDonate,
			Title:          "Donate to the campus exchange",
			Priority:       2,
			ExpectedPoints: catalog.BasePoints(catalog.ActionDonate),
		})
	}

	if catalog.IsElectronics(objectClass) {
		// Unshift so the e-waste entry stays ahead of any other priority-1
		// entry after the stable sort.
		eWaste := models.RecommendedAction{
			ActionKind:     catalog.ActionRecycle,
			Title:          "E-waste: drop off at the certified e-waste point",
			Priority:       1,
			ExpectedPoints: catalog.BasePoints(catalog.ActionRecycle),
			Metadata:       map[string]string{"warning": "Never put electronics in regular bins"},
		}
		actions = append([]models.RecommendedAction{eWaste}, actions...)
	}

	if !catalog.IsPlainContainer(objectClass) {
		actions = append(actions, models.RecommendedAction{
			ActionKind:     catalog.ActionShare,
			Title:          "Share it with someone who needs it",
			Priority:       3,
			ExpectedPoints: catalog.BasePoints(catalog.ActionShare),
		})
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Priority < actions[j].Priority
	})

	return actions
}
