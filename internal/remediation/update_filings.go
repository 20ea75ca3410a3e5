package remediation

import (
	"repse-simulator/internal/catalog"
	"repse-simulator/internal/model"
)

// UpdateFilingsRule fires on any infraction recorded against the ICSOE/SISUB
// filings question, grave or not.
type UpdateFilingsRule struct{}

func (UpdateFilingsRule) Match(result *model.SimulationResult) bool {
	q, ok := result.Question(catalog.QuestionFilings)
	return ok && (q.IsInfraction || q.IsGraveInfraction)
}

func (UpdateFilingsRule) Item() model.ActionItem {
	return model.ActionItem{
		ID:          "update_icsoe_sisub",
		Title:       "Actualizar ICSOE y SISUB",
		Description: "Tus declaraciones informativas no están al corriente.",
		Priority:    model.PriorityHigh,
		Steps: []string{
			"Ingresa al portal REPSE",
			"Presenta ICSOE de períodos pendientes",
			"Actualiza información en SISUB",
			"Guarda acuses de presentación",
		},
		EstimatedTime: "1-2 días",
		EstimatedCost: "Gratuito",
		Points:        8,
		FineAvoided:   &model.MoneyRange{Min: 27000, Max: 271000},
	}
}
