package remediation

import "repse-simulator/internal/model"

// Rule is one independent remediation predicate. Match inspects a scored
// result; Item builds a fresh, uncompleted action for it.
type Rule interface {
	Match(result *model.SimulationResult) bool
	Item() model.ActionItem
}
