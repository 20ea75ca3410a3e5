package catalog

import (
	"math"

	"repse-simulator/internal/model"
)

// UnitValue is the MXN value of one UMA (Unidad de Medida y Actualización).
const UnitValue = 113.14

// Currency is the unit fines are reported in once converted.
const Currency = "MXN"

// Fixed fine bands, in UMAs, for infractions detected by questions and
// verification points.
var (
	GraveFine    = model.UnitRange{Min: 2000, Max: 50000, Unit: "UMAs"}
	StandardFine = model.UnitRange{Min: 250, Max: 5000, Unit: "UMAs"}
)

// ToCurrency converts an amount of UMAs to whole MXN.
func ToCurrency(units float64) int64 {
	return int64(math.Round(units * UnitValue))
}

// FineAmount converts a UMA range to an MXN range.
func FineAmount(r model.UnitRange) model.MoneyRange {
	return model.MoneyRange{Min: ToCurrency(r.Min), Max: ToCurrency(r.Max)}
}

// SeverityFine returns the fixed band for a grave or non-grave infraction.
func SeverityFine(grave bool) model.MoneyRange {
	if grave {
		return FineAmount(GraveFine)
	}
	return FineAmount(StandardFine)
}
