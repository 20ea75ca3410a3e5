package remediation

import (
	"sort"

	"repse-simulator/internal/model"
)

// rules run in this order; ties in priority keep it.
var rules = []Rule{
	ObtainRegistrationRule{},
	FormalizeContractsRule{},
	RegisterSocialSecurityRule{},
	UpdateFilingsRule{},
}

// Rules returns the registered rules in generation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Generate builds the action plan for result, sorted by priority. A nil
// result yields an empty plan.
func Generate(result *model.SimulationResult) []model.ActionItem {
	items := []model.ActionItem{}
	if result == nil {
		return items
	}
	for _, r := range rules {
		if r.Match(result) {
			items = append(items, r.Item())
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Priority.Rank() < items[j].Priority.Rank()
	})
	return items
}

// Toggle flips the completed flag of the item with id and reports whether
// one was found. No other item is touched.
func Toggle(items []model.ActionItem, id string) bool {
	for i := range items {
		if items[i].ID == id {
			items[i].Completed = !items[i].Completed
			return true
		}
	}
	return false
}
