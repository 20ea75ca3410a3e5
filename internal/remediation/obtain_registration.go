package remediation

import (
	"repse-simulator/internal/catalog"
	"repse-simulator/internal/model"
)

type ObtainRegistrationRule struct{}

func (ObtainRegistrationRule) Match(result *model.SimulationResult) bool {
	if result.HasREPSECancellationRisk {
		return true
	}
	d, ok := result.Document(catalog.DocRegistration)
	return ok && !d.Presented
}

func (ObtainRegistrationRule) Item() model.ActionItem {
	return model.ActionItem{
		ID:          "get_repse",
		Title:       "Obtener/Renovar Registro REPSE",
		Description: "Sin registro REPSE no puedes operar legalmente. Es tu prioridad número 1.",
		Priority:    model.PriorityUrgent,
		Steps: []string{
			"Ingresa a https://repse.stps.gob.mx",
			"Crea una cuenta con tu RFC y e.firma",
			"Completa el formulario con datos de tu empresa",
			"Adjunta documentos requeridos",
			"Espera resolución (5-10 días hábiles)",
			"Descarga tu aviso de registro",
		},
		EstimatedTime: "2-3 semanas",
		EstimatedCost: "Gratuito",
		Points:        20,
		FineAvoided:   &model.MoneyRange{Min: 217000, Max: 5428000},
	}
}
