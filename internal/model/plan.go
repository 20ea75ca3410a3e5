package model

// Priority orders remediation actions.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort position of p; lower ranks come first. Unknown
// priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// MoneyRange is a currency range in MXN.
type MoneyRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// ActionItem is one remediation step generated from a SimulationResult.
// Completed is the only field that changes after generation.
type ActionItem struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Priority      Priority    `json:"priority"`
	Steps         []string    `json:"steps"`
	EstimatedTime string      `json:"estimatedTime"`
	EstimatedCost string      `json:"estimatedCost"`
	Points        int         `json:"points"`
	FineAvoided   *MoneyRange `json:"fineAvoided,omitempty"`
	Completed     bool        `json:"completed"`
}
