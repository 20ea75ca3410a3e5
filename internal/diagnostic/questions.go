package diagnostic

import "repse-simulator/internal/model"

// Question is one self-assessment question with a single chosen option.
type Question struct {
	ID       string              `json:"id" yaml:"id"`
	Text     string              `json:"text" yaml:"text"`
	Options  []Option            `json:"options" yaml:"options"`
	ForTypes []model.ProfileType `json:"forUserTypes" yaml:"forUserTypes"`
}

type Option struct {
	Value    string `json:"value" yaml:"value"`
	Label    string `json:"label" yaml:"label"`
	Score    int    `json:"score" yaml:"score"`
	Critical bool   `json:"isCritical,omitempty" yaml:"isCritical,omitempty"`
}

// MaxScore is the best score any option of q gives.
func (q Question) MaxScore() int {
	best := 0
	for i, o := range q.Options {
		if i == 0 || o.Score > best {
			best = o.Score
		}
	}
	return best
}

func (q Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Questions returns the questions for userType in display order.
func Questions(userType model.ProfileType) []Question {
	var out []Question
	for _, q := range questions {
		for _, t := range q.ForTypes {
			if t == userType {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

var (
	forContractor  = []model.ProfileType{model.ProfileContractor}
	forBeneficiary = []model.ProfileType{model.ProfileBeneficiary}
)

var questions = []Question{
	{
		ID:   "repse_registro",
		Text: "¿Tienes registro REPSE vigente?",
		Options: []Option{
			{Value: "si", Label: "Sí, vigente", Score: 20},
			{Value: "vencido", Label: "Sí, pero vencido", Score: 5, Critical: true},
			{Value: "no", Label: "No", Score: 0, Critical: true},
			{Value: "no_se", Label: "No sé qué es", Score: 0, Critical: true},
		},
		ForTypes: forContractor,
	},
	{
		ID:   "contratos_activos",
		Text: "¿Cuántos contratos activos tienes con clientes?",
		Options: []Option{
			{Value: "0", Label: "0", Score: 0},
			{Value: "1-5", Label: "1 a 5", Score: 10},
			{Value: "6-20", Label: "6 a 20", Score: 10},
			{Value: "+20", Label: "Más de 20", Score: 10},
		},
		ForTypes: forContractor,
	},
	{
		ID:   "imss_trabajadores",
		Text: "¿Tus trabajadores están dados de alta en el IMSS?",
		Options: []Option{
			{Value: "todos", Label: "Todos", Score: 20},
			{Value: "algunos", Label: "Algunos", Score: 5, Critical: true},
			{Value: "ninguno", Label: "Ninguno", Score: 0, Critical: true},
			{Value: "no_se", Label: "No sé", Score: 0, Critical: true},
		},
		ForTypes: forContractor,
	},
	{
		ID:   "contratos_escritos",
		Text: "¿Tienes contratos por escrito con tus clientes?",
		Options: []Option{
			{Value: "si_todos", Label: "Sí, con todos", Score: 15},
			{Value: "si_algunos", Label: "Sí, con algunos", Score: 5},
			{Value: "no", Label: "No", Score: 0, Critical: true},
		},
		ForTypes: forContractor,
	},
	{
		ID:   "icsoe_sisub",
		Text: "¿Tienes al día tus obligaciones ICSOE y SISUB?",
		Options: []Option{
			{Value: "si", Label: "Sí, actualizados", Score: 15},
			{Value: "parcial", Label: "Parcialmente", Score: 5},
			{Value: "no", Label: "No", Score: 0, Critical: true},
			{Value: "no_se", Label: "No sé qué son", Score: 0, Critical: true},
		},
		ForTypes: forContractor,
	},
	{
		ID:   "proveedor_repse",
		Text: "¿Verificaste que tu proveedor tenga REPSE vigente?",
		Options: []Option{
			{Value: "si", Label: "Sí, lo verifiqué", Score: 25},
			{Value: "no", Label: "No lo verifiqué", Score: 0, Critical: true},
			{Value: "no_se", Label: "No sé qué es REPSE", Score: 0, Critical: true},
		},
		ForTypes: forBeneficiary,
	},
	{
		ID:   "actividad_principal",
		Text: "¿Los servicios contratados forman parte de tu actividad principal?",
		Options: []Option{
			{Value: "no", Label: "No, son servicios complementarios", Score: 25},
			{Value: "si", Label: "Sí, son parte de mi giro", Score: 0, Critical: true},
			{Value: "no_seguro", Label: "No estoy seguro", Score: 5},
		},
		ForTypes: forBeneficiary,
	},
	{
		ID:   "documentacion_mensual",
		Text: "¿Recibes documentación mensual del contratista?",
		Options: []Option{
			{Value: "si", Label: "Sí, completa", Score: 25},
			{Value: "parcial", Label: "Sí, pero incompleta", Score: 10},
			{Value: "no", Label: "No", Score: 0, Critical: true},
			{Value: "que_docs", Label: "¿Qué documentación?", Score: 0, Critical: true},
		},
		ForTypes: forBeneficiary,
	},
	{
		ID:   "contratos_beneficiario",
		Text: "¿Tienes contratos por escrito con tus proveedores de servicios?",
		Options: []Option{
			{Value: "si", Label: "Sí, con todos", Score: 25},
			{Value: "algunos", Label: "Con algunos", Score: 10},
			{Value: "no", Label: "No", Score: 0, Critical: true},
		},
		ForTypes: forBeneficiary,
	},
}
