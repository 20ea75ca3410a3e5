package remediation

import (
	"repse-simulator/internal/catalog"
	"repse-simulator/internal/model"
)

type RegisterSocialSecurityRule struct{}

func (RegisterSocialSecurityRule) Match(result *model.SimulationResult) bool {
	q, ok := result.Question(catalog.QuestionSocialSecurity)
	return ok && q.IsGraveInfraction
}

func (RegisterSocialSecurityRule) Item() model.ActionItem {
	return model.ActionItem{
		ID:          "register_imss",
		Title:       "Dar de Alta a Trabajadores en IMSS",
		Description: "Tienes trabajadores sin seguridad social. Esto es GRAVE.",
		Priority:    model.PriorityUrgent,
		Steps: []string{
			"Obtén tu registro patronal IMSS",
			"Reúne datos de trabajadores (CURP, RFC)",
			"Ingresa a IMSS Digital Patrón",
			"Registra movimientos de alta",
			"Genera cédula de determinación",
			"Paga cuotas obrero-patronales",
		},
		EstimatedTime: "1 semana",
		EstimatedCost: "~30% del salario mensual",
		Points:        15,
		FineAvoided:   &model.MoneyRange{Min: 27000, Max: 543000},
	}
}
