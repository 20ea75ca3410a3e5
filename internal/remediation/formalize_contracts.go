package remediation

import (
	"repse-simulator/internal/catalog"
	"repse-simulator/internal/model"
)

// FormalizeContractsRule fires when either side's service contract was not
// presented.
type FormalizeContractsRule struct{}

func (FormalizeContractsRule) Match(result *model.SimulationResult) bool {
	for _, id := range []string{catalog.DocContractorContracts, catalog.DocProviderContract} {
		if d, ok := result.Document(id); ok && !d.Presented {
			return true
		}
	}
	return false
}

func (FormalizeContractsRule) Item() model.ActionItem {
	return model.ActionItem{
		ID:          "formalize_contracts",
		Title:       "Formalizar Contratos por Escrito",
		Description: "Todos los contratos deben estar por escrito y firmados.",
		Priority:    model.PriorityHigh,
		Steps: []string{
			"Usa plantilla de contrato en sección Documentos",
			"Completa datos de ambas partes",
			"Especifica claramente el servicio",
			"Firma con tu cliente",
			"Guarda copias físicas y digitales",
		},
		EstimatedTime: "1-2 días por contrato",
		EstimatedCost: "Gratuito",
		Points:        12,
		FineAvoided:   &model.MoneyRange{Min: 27000, Max: 543000},
	}
}
