package catalog

import "repse-simulator/internal/model"

// Well-known rule ids referenced by the remediation rules.
const (
	DocRegistration        = "repse"
	DocContractorContracts = "contratos_servicios"
	DocProviderContract    = "contrato_proveedor"

	QuestionRegistration   = "q1"
	QuestionSocialSecurity = "q4"
	QuestionFilings        = "q5"
)

var (
	contractor  = []model.ProfileType{model.ProfileContractor}
	beneficiary = []model.ProfileType{model.ProfileBeneficiary}
	everyone    = []model.ProfileType{model.ProfileContractor, model.ProfileBeneficiary}

	allInspections = []model.InspectionType{model.InspectionExtraordinary, model.InspectionScheduled, model.InspectionRegistration}
	onSite         = []model.InspectionType{model.InspectionExtraordinary, model.InspectionScheduled}

	fullPhases = []model.Phase{
		model.PhaseSelection, model.PhaseProfile, model.PhaseIntro, model.PhaseDocuments,
		model.PhaseInterrogation, model.PhaseVerification, model.PhaseResults, model.PhaseActionPlan,
	}
	registrationPhases = []model.Phase{
		model.PhaseSelection, model.PhaseProfile, model.PhaseIntro, model.PhaseDocuments,
		model.PhaseInterrogation, model.PhaseResults, model.PhaseActionPlan,
	}
)

func tags(p []model.ProfileType, t []model.InspectionType) model.Applicability {
	return model.Applicability{Profiles: p, InspectionTypes: t}
}

func umas(min, max float64) model.UnitRange {
	return model.UnitRange{Min: min, Max: max, Unit: "UMAs"}
}

// Default returns the built-in catalog. Tag and phase slices are shared
// between calls and must not be modified.
func Default() *Catalog {
	return &Catalog{
		InspectionTypes:    inspectionTypes(),
		Documents:          documents(),
		Questions:          questions(),
		VerificationPoints: verificationPoints(),
		Dialogues:          dialogues(),
	}
}

func inspectionTypes() []model.InspectionTypeConfig {
	return []model.InspectionTypeConfig{
		{
			ID:                 model.InspectionExtraordinary,
			Name:               "EXTRAORDINARIA",
			Subtitle:           "Sin previo aviso",
			Description:        "La más exigente. El inspector llega sin previo aviso y debes tener toda la documentación lista.",
			Difficulty:         5,
			DurationMinutes:    60,
			Color:              "#EF4444",
			Phases:             fullPhases,
			PreparationMinutes: 0,
		},
		{
			ID:                 model.InspectionScheduled,
			Name:               "ORDINARIA",
			Subtitle:           "Con citatorio 24h antes",
			Description:        "Recibes notificación 24 horas antes. Tienes tiempo para preparar documentación.",
			Difficulty:         3,
			DurationMinutes:    45,
			Color:              "#F59E0B",
			Phases:             fullPhases,
			PreparationMinutes: 1440,
		},
		{
			ID:                 model.InspectionRegistration,
			Name:               "CONSTATACIÓN REPSE",
			Subtitle:           "Visita programada",
			Description:        "Visita de verificación para registro o renovación REPSE. Más enfocada en documentación.",
			Difficulty:         2,
			DurationMinutes:    30,
			Color:              "#10B981",
			Phases:             registrationPhases,
			PreparationMinutes: 2880,
		},
	}
}

func documents() []model.DocumentRule {
	return []model.DocumentRule{
		{
			ID:                DocRegistration,
			Name:              "Aviso de Registro REPSE",
			Category:          "Registro",
			Obligatory:        true,
			LegalBasis:        "Art. 15 LFT",
			Verifications:     []string{"Vigencia no vencida", "Código QR legible", "Actividades registradas", "Folio visible"},
			Points:            15,
			FineIfMissing:     umas(2000, 50000),
			RegistrationProof: true,
			Applicability:     tags(contractor, allInspections),
		},
		{
			ID:            DocContractorContracts,
			Name:          "Contratos con Beneficiarios",
			Category:      "Contratos",
			Obligatory:    true,
			LegalBasis:    "Art. 12-15 LFT",
			Verifications: []string{"Por escrito", "Nombre de beneficiario", "Número de trabajadores", "Vigencia clara", "Objeto del servicio", "Firmado por ambas partes"},
			Points:        12,
			FineIfMissing: umas(250, 5000),
			Applicability: tags(contractor, allInspections),
		},
		{
			ID:            "altas_imss",
			Name:          "Altas IMSS de Trabajadores",
			Category:      "Seguridad Social",
			Obligatory:    true,
			LegalBasis:    "Art. 132 fracc. XXIV LFT",
			Verifications: []string{"Todos los trabajadores dados de alta", "Salarios correctos", "Fechas de alta correspondientes"},
			Points:        15,
			FineIfMissing: model.UnitRange{Min: 250, Max: 5000, Unit: "UMAs", PerWorker: true},
			Applicability: tags(contractor, allInspections),
		},
		{
			ID:            "nomina",
			Name:          "Recibos de Nómina",
			Category:      "Pagos",
			Obligatory:    true,
			LegalBasis:    "Art. 132 LFT",
			Verifications: []string{"Último mes completo", "Firmas o comprobante digital", "Deducciones legales", "Salario igual o superior a contrato"},
			Points:        10,
			FineIfMissing: umas(250, 2500),
			Applicability: tags(contractor, onSite),
		},
		{
			ID:            "icsoe",
			Name:          "Acuses ICSOE (últimos 3)",
			Category:      "Información",
			Obligatory:    true,
			LegalBasis:    "Art. Quinto Disposiciones REPSE",
			Verifications: []string{"Últimos 3 períodos cuatrimestrales", "Número de contratos declarados", "Número de trabajadores coincide"},
			Points:        8,
			FineIfMissing: umas(250, 2500),
			Applicability: tags(contractor, allInspections),
		},
		{
			ID:            "sisub",
			Name:          "Declaraciones SISUB",
			Category:      "Información",
			Obligatory:    true,
			LegalBasis:    "Art. Quinto Disposiciones REPSE",
			Verifications: []string{"Actualizado al período actual", "Contratos vigentes declarados"},
			Points:        8,
			FineIfMissing: umas(250, 2500),
			Applicability: tags(contractor, onSite),
		},
		{
			ID:            "contratos_individuales",
			Name:          "Contratos Individuales de Trabajo",
			Category:      "Contratos",
			Obligatory:    true,
			LegalBasis:    "Art. 24-26 LFT",
			Verifications: []string{"Por escrito", "Nombre del trabajador", "Puesto y funciones", "Salario especificado", "Vigencia", "Firmado por ambas partes"},
			Points:        10,
			FineIfMissing: umas(250, 5000),
			Applicability: tags(contractor, onSite),
		},
		{
			ID:            "capacitacion",
			Name:          "Constancias de Capacitación",
			Category:      "Capacitación",
			Obligatory:    false,
			LegalBasis:    "Art. 132 fracc. XV LFT",
			Verifications: []string{"Acorde a actividad especializada", "Fecha reciente (último año)", "Firmadas por capacitador"},
			Points:        5,
			FineIfMissing: umas(250, 2500),
			Applicability: tags(contractor, onSite),
		},
		{
			ID:            "rfc",
			Name:          "RFC Activo",
			Category:      "Fiscal",
			Obligatory:    true,
			LegalBasis:    "Disposiciones REPSE",
			Verifications: []string{"Constancia de situación fiscal", "Activo (no suspendido)", "Coincide con razón social"},
			Points:        5,
			FineIfMissing: umas(2000, 10000),
			Applicability: tags(everyone, allInspections),
		},
		{
			ID:            "cedula_sua",
			Name:          "Cédula de Determinación SUA",
			Category:      "Seguridad Social",
			Obligatory:    true,
			LegalBasis:    "LSS Art. 15-A",
			Verifications: []string{"Período actual", "Número de trabajadores coincide", "Pagos al corriente"},
			Points:        7,
			FineIfMissing: umas(250, 2500),
			Applicability: tags(contractor, onSite),
		},
		{
			ID:            "verificacion_repse_proveedor",
			Name:          "Verificación REPSE del Proveedor",
			Category:      "Verificación",
			Obligatory:    true,
			LegalBasis:    "Art. 15 LFT",
			Verifications: []string{"Consulta en portal REPSE", "Vigencia verificada", "Actividades corresponden al servicio"},
			Points:        15,
			FineIfMissing: umas(2000, 50000),
			Applicability: tags(beneficiary, allInspections),
		},
		{
			ID:            DocProviderContract,
			Name:          "Contrato con Proveedor",
			Category:      "Contratos",
			Obligatory:    true,
			LegalBasis:    "Art. 15 LFT",
			Verifications: []string{"Por escrito", "Objeto del servicio claro", "Número de trabajadores", "Firmado por ambas partes"},
			Points:        12,
			FineIfMissing: umas(250, 5000),
			Applicability: tags(beneficiary, allInspections),
		},
		{
			ID:            "documentacion_mensual",
			Name:          "Documentación Mensual del Contratista",
			Category:      "Verificación",
			Obligatory:    true,
			LegalBasis:    "Art. Décimo Tercero-C Disposiciones REPSE",
			Verifications: []string{"CFDI de nómina", "Comprobantes IMSS", "Comprobantes INFONAVIT", "Declaración ISR"},
			Points:        10,
			FineIfMissing: umas(250, 5000),
			Applicability: tags(beneficiary, onSite),
		},
	}
}

func questions() []model.QuestionRule {
	return []model.QuestionRule{
		{
			ID:         QuestionRegistration,
			Category:   "Identificación",
			Obligatory: true,
			Text:       "¿Cuenta con registro REPSE vigente?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Sí, está vigente", Correct: model.Correct, Points: 10},
				{ID: "b", Text: "Sí, pero está vencido", Points: -15, Observation: "CRÍTICO: REPSE vencido - Multa 2,000-50,000 UMAs", IsGraveInfraction: true},
				{ID: "c", Text: "No tengo registro REPSE", Points: -20, Observation: "CRÍTICO: Sin REPSE - Subcontratación ilegal", IsGraveInfraction: true, IsCrime: true},
				{ID: "d", Text: "No sé qué es eso", Points: -20, Observation: "CRÍTICO: Opera sin registro", IsGraveInfraction: true},
			},
			LegalBasis:         "Art. 15 LFT",
			RegistrationStatus: true,
			Applicability:      tags(contractor, allInspections),
		},
		{
			ID:         "q2",
			Category:   "Trabajadores",
			Obligatory: true,
			Text:       "¿Cuántos contratos activos tiene con empresas beneficiarias?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Ninguno", Points: -15, Observation: "Sin contratos pero presta servicios - Irregular", IsInfraction: true},
				{ID: "b", Text: "1-5 contratos", Correct: model.Correct, Points: 5},
				{ID: "c", Text: "6-20 contratos", Correct: model.Correct, Points: 5},
				{ID: "d", Text: "Más de 20 contratos", Correct: model.Correct, Points: 5},
			},
			LegalBasis:    "Art. 15 LFT - Contratos por escrito",
			Applicability: tags(contractor, allInspections),
		},
		{
			ID:         "q3",
			Category:   "Contratos",
			Obligatory: true,
			Text:       "¿Sus contratos con beneficiarios están por escrito y firmados por ambas partes?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Sí, todos están por escrito y firmados", Correct: model.Correct, Points: 10},
				{ID: "b", Text: "Algunos sí, otros no", Points: -5, Observation: "Contratos incompletos", IsInfraction: true},
				{ID: "c", Text: "Solo son acuerdos verbales", Points: -15, Observation: "CRÍTICO: Sin contratos escritos", IsGraveInfraction: true},
				{ID: "d", Text: "Tengo contratos pero sin firmar", Points: -8, Observation: "Contratos sin formalizar", IsInfraction: true},
			},
			LegalBasis:    "Art. 15 LFT - Requisito de contrato escrito",
			Applicability: tags(contractor, allInspections),
		},
		{
			ID:         QuestionSocialSecurity,
			Category:   "Seguridad Social",
			Obligatory: true,
			Text:       "¿Todos sus trabajadores están dados de alta en el IMSS?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Sí, todos están dados de alta", Correct: model.Correct, Points: 10},
				{ID: "b", Text: "La mayoría sí, algunos no", Points: -12, Observation: "GRAVE: Trabajadores sin seguridad social", IsGraveInfraction: true},
				{ID: "c", Text: "Solo algunos están dados de alta", Points: -15, Observation: "GRAVE: Mayoría sin IMSS - Multa por c/trabajador", IsGraveInfraction: true},
				{ID: "d", Text: "No, ninguno está en IMSS", Points: -20, Observation: "CRÍTICO: Ningún trabajador asegurado - Delito", IsGraveInfraction: true, IsCrime: true},
			},
			LegalBasis:    "Art. 132 fracc. XXIV LFT",
			Applicability: tags(contractor, allInspections),
		},
		{
			ID:         QuestionFilings,
			Category:   "Información",
			Obligatory: true,
			Text:       "¿Ha presentado las declaraciones ICSOE y SISUB correspondientes?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Sí, estoy al corriente", Correct: model.Correct, Points: 8},
				{ID: "b", Text: "Tengo algunas pendientes", Points: -5, Observation: "Declaraciones atrasadas", IsInfraction: true},
				{ID: "c", Text: "No sé qué son esas declaraciones", Points: -10, Observation: "GRAVE: Incumplimiento obligaciones informativas", IsGraveInfraction: true},
				{ID: "d", Text: "No he presentado ninguna", Points: -12, Observation: "CRÍTICO: Sin declaraciones informativas", IsGraveInfraction: true},
			},
			LegalBasis:    "Art. Quinto Disposiciones REPSE",
			Applicability: tags(contractor, allInspections),
		},
		{
			ID:         "q6",
			Category:   "Actividades",
			Obligatory: true,
			Text:       "¿Las actividades que realizan sus trabajadores corresponden a las registradas en su REPSE?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Sí, corresponden exactamente", Correct: model.Correct, Points: 10},
				{ID: "b", Text: "Algunas sí, otras no", Points: -10, Observation: "INCONSISTENCIA: Presta servicios no registrados", IsInfraction: true},
				{ID: "c", Text: "No estoy seguro", Points: -8, Observation: "Desconoce actividades registradas", IsInfraction: true},
			},
			LegalBasis:    "Verificación de objeto social",
			Applicability: tags(contractor, allInspections),
		},
		{
			ID:       "q7",
			Category: "Identificación",
			Text:     "¿Sus trabajadores portan identificación visible de su empresa?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Sí, todos portan gafete/uniforme", Correct: model.Correct, Points: 5},
				{ID: "b", Text: "Algunos sí, otros no", Correct: model.PartiallyCorrect, Points: 2, Observation: "Identificación irregular"},
				{ID: "c", Text: "No portan identificación", Points: -5, Observation: "Sin identificación de trabajadores", IsInfraction: true},
			},
			LegalBasis:    "Art. Octavo Disposiciones REPSE",
			Applicability: tags(contractor, onSite),
		},
		{
			ID:       "q8",
			Category: "Capacitación",
			Text:     "¿Proporciona capacitación a sus trabajadores acorde a los servicios especializados?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Sí, capacitación regular documentada", Correct: model.Correct, Points: 5},
				{ID: "b", Text: "Sí, pero sin documentación", Correct: model.PartiallyCorrect, Points: 2, Observation: "Capacitación sin constancias"},
				{ID: "c", Text: "Capacitación ocasional", Correct: model.PartiallyCorrect, Points: 1},
				{ID: "d", Text: "No proporciono capacitación", Points: -5, Observation: "Sin programa de capacitación", IsInfraction: true},
			},
			LegalBasis:    "Art. 132 fracc. XV LFT",
			Applicability: tags(contractor, onSite),
		},
		{
			ID:         "q9",
			Category:   "Subcontratación",
			Obligatory: true,
			Text:       "¿Usted a su vez subcontrata personal de otras empresas para prestar sus servicios?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "No, todos mis trabajadores son empleados directos", Correct: model.Correct, Points: 10},
				{ID: "b", Text: "Sí, subcontrato algunos servicios especializados", Correct: model.PartiallyCorrect, Points: 0},
				{ID: "c", Text: "Sí, subcontrato la mayoría de mi personal", Points: -15, Observation: "GRAVE: Cascada de subcontratación prohibida", IsGraveInfraction: true},
			},
			LegalBasis:    "Prohibición de subcontratación en cascada",
			Applicability: tags(contractor, allInspections),
		},
		{
			ID:         "q10",
			Category:   "Nómina",
			Obligatory: true,
			Text:       "¿Los salarios pagados a sus trabajadores coinciden con lo declarado ante el IMSS?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Sí, coinciden exactamente", Correct: model.Correct, Points: 10},
				{ID: "b", Text: "Hay pequeñas diferencias", Points: -5, Observation: "Discrepancia salarial", IsInfraction: true},
				{ID: "c", Text: "No coinciden", Points: -15, Observation: "GRAVE: Salarios no coinciden - Posible evasión", IsGraveInfraction: true, IsCrime: true},
			},
			LegalBasis:    "LSS Art. 27-30",
			Applicability: tags(contractor, onSite),
		},
		{
			ID:         "b1",
			Category:   "Verificación",
			Obligatory: true,
			Text:       "¿Verificó que su proveedor cuente con registro REPSE vigente antes de contratarlo?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Sí, verifiqué su REPSE vigente", Correct: model.Correct, Points: 10},
				{ID: "b", Text: "No verifiqué", Points: -15, Observation: "GRAVE: No verificó REPSE - Responsabilidad solidaria", IsGraveInfraction: true},
				{ID: "c", Text: "No sé si tiene REPSE", Points: -15, Observation: "CRÍTICO: Contrata sin verificar legalidad", IsGraveInfraction: true},
			},
			LegalBasis:    "Art. 15 LFT - Obligación de verificar REPSE",
			Applicability: tags(beneficiary, allInspections),
		},
		{
			ID:         "b2",
			Category:   "Actividad",
			Obligatory: true,
			Text:       "¿Los servicios contratados forman parte de su actividad económica principal?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "No, es servicio especializado ajeno a mi actividad", Correct: model.Correct, Points: 10},
				{ID: "b", Text: "Sí, forma parte de mi actividad principal", Points: -20, Observation: "CRÍTICO: Subcontratación prohibida de actividad core", IsGraveInfraction: true, IsCrime: true},
				{ID: "c", Text: "No estoy seguro", Points: -10, Observation: "Desconoce naturaleza de la relación", IsInfraction: true},
			},
			LegalBasis:    "Art. 13 LFT - Prohibición de subcontratar actividad preponderante",
			Applicability: tags(beneficiary, allInspections),
		},
		{
			ID:         "b3",
			Category:   "Documentación",
			Obligatory: true,
			Text:       "¿Recibe mensualmente la documentación obligatoria de su proveedor (CFDI, comprobantes IMSS/INFONAVIT)?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Sí, recibo todo mensualmente", Correct: model.Correct, Points: 10},
				{ID: "b", Text: "Recibo algunos documentos", Correct: model.PartiallyCorrect, Points: 3, Observation: "Documentación incompleta"},
				{ID: "c", Text: "No recibo documentación", Points: -12, Observation: "GRAVE: Sin documentación de respaldo fiscal", IsGraveInfraction: true},
				{ID: "d", Text: "No sabía que debía recibirla", Points: -10, Observation: "Desconoce obligaciones como beneficiario", IsInfraction: true},
			},
			LegalBasis:    "Art. Décimo Tercero-C Disposiciones REPSE",
			Applicability: tags(beneficiary, onSite),
		},
		{
			ID:         "b4",
			Category:   "Contratos",
			Obligatory: true,
			Text:       "¿Tiene contrato por escrito con su proveedor de servicios?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Sí, contrato completo y firmado", Correct: model.Correct, Points: 8},
				{ID: "b", Text: "Tengo contrato pero incompleto", Correct: model.PartiallyCorrect, Points: 3, Observation: "Contrato sin requisitos completos"},
				{ID: "c", Text: "Solo acuerdo verbal", Points: -12, Observation: "GRAVE: Sin contrato escrito", IsGraveInfraction: true},
			},
			LegalBasis:    "Art. 15 LFT - Contrato por escrito obligatorio",
			Applicability: tags(beneficiary, allInspections),
		},
		{
			ID:       "b5",
			Category: "Identificación",
			Text:     "¿Los trabajadores del contratista están identificados visiblemente en su centro de trabajo?",
			Options: []model.QuestionOption{
				{ID: "a", Text: "Sí, portan identificación distintiva", Correct: model.Correct, Points: 5},
				{ID: "b", Text: "Algunos sí, otros no", Correct: model.PartiallyCorrect, Points: 2},
				{ID: "c", Text: "No portan identificación", Points: -5, Observation: "Trabajadores sin identificación del contratista", IsInfraction: true},
			},
			LegalBasis:    "Art. Octavo Disposiciones REPSE",
			Applicability: tags(beneficiary, onSite),
		},
	}
}

// Verification points only matter for inspection types with a verification
// phase; they are tagged for every type and gated by the phase list.
func verificationPoints() []model.VerificationPointRule {
	return []model.VerificationPointRule{
		{
			ID:                       "r1",
			Title:                    "Trabajadores identificados",
			Question:                 "¿Los trabajadores del contratista portan gafete/uniforme que los identifique?",
			Points:                   model.OutcomePoints{Complies: 5, NotComplies: -5},
			ObservationIfNotComplies: "Trabajadores sin identificación visible del contratista",
			LegalBasis:               "Art. Octavo Disposiciones REPSE",
			IsInfraction:             true,
			Applicability:            tags(everyone, allInspections),
		},
		{
			ID:                       "r2",
			Title:                    "Número de trabajadores",
			Question:                 "¿El número de trabajadores presentes coincide con lo declarado?",
			Points:                   model.OutcomePoints{Complies: 8, NotComplies: -10},
			ObservationIfNotComplies: "INCONSISTENCIA: Número de trabajadores no coincide",
			LegalBasis:               "Verificación de consistencia",
			IsInfraction:             true,
			IsGraveInfraction:        true,
			Applicability:            tags(everyone, allInspections),
		},
		{
			ID:                       "r3",
			Title:                    "Actividades realizadas",
			Question:                 "¿Las actividades corresponden a las descritas en el contrato?",
			Points:                   model.OutcomePoints{Complies: 10, NotComplies: -15},
			ObservationIfNotComplies: "GRAVE: Trabajadores realizan actividades diferentes",
			LegalBasis:               "Art. 13-15 LFT",
			IsInfraction:             true,
			IsGraveInfraction:        true,
			Applicability:            tags(everyone, allInspections),
		},
		{
			ID:                       "r4",
			Title:                    "Actividad principal",
			Question:                 "¿Los trabajadores NO realizan actividades de la actividad principal del beneficiario?",
			Points:                   model.OutcomePoints{Complies: 10, NotComplies: -20},
			ObservationIfNotComplies: "CRÍTICO: Subcontratación prohibida - Actividad core",
			LegalBasis:               "Art. 13 LFT",
			IsInfraction:             true,
			IsGraveInfraction:        true,
			IsCrime:                  true,
			Applicability:            tags(beneficiary, allInspections),
		},
		{
			ID:                       "r5",
			Title:                    "Condiciones de seguridad",
			Question:                 "¿Los trabajadores cuentan con equipo de protección personal adecuado?",
			Points:                   model.OutcomePoints{Complies: 5, NotComplies: -8},
			ObservationIfNotComplies: "Sin equipo de protección personal",
			LegalBasis:               "Art. 132 fracc. XVI LFT",
			IsInfraction:             true,
			Applicability:            tags(everyone, allInspections),
		},
	}
}

func dialogues() []model.Dialogue {
	ex, sc, rg := model.InspectionExtraordinary, model.InspectionScheduled, model.InspectionRegistration
	return []model.Dialogue{
		{Phase: model.PhaseIntro, Type: ex, Messages: []string{
			"Buenos días. Soy inspector federal del trabajo.",
			"Vengo a realizar una inspección EXTRAORDINARIA en materia de subcontratación.",
			"Favor de mostrarme su identificación oficial y la de la persona que atenderá la inspección.",
			"¿Es usted el patrón, representante legal o persona autorizada para atender esta diligencia?",
		}},
		{Phase: model.PhaseIntro, Type: sc, Messages: []string{
			"Buenos días. Soy inspector federal del trabajo.",
			"Vengo a realizar la inspección ORDINARIA programada mediante citatorio.",
			"¿Recibieron el citatorio con 24 horas de anticipación?",
			"Procedemos a iniciar la inspección. Favor de identificarse.",
		}},
		{Phase: model.PhaseIntro, Type: rg, Messages: []string{
			"Buenos días. Soy inspector federal del trabajo.",
			"Vengo a realizar la visita de CONSTATACIÓN REPSE.",
			"Procedemos a verificar la información de su registro.",
		}},
		{Phase: model.PhaseDocuments, Type: ex, Messages: []string{
			"Ahora procederé a solicitar la documentación requerida.",
			"Deberá presentar los documentos de manera inmediata.",
			"Cualquier documento faltante será registrado en el acta.",
		}},
		{Phase: model.PhaseDocuments, Type: sc, Messages: []string{
			"Procedamos con la revisión documental.",
			"Confío en que tuvieron tiempo para preparar la documentación.",
		}},
		{Phase: model.PhaseDocuments, Type: rg, Messages: []string{
			"Verificaremos la documentación relacionada con su registro REPSE.",
		}},
		{Phase: model.PhaseInterrogation, Type: ex, Messages: []string{
			"Ahora realizaré algunas preguntas.",
			"Responda con la verdad. Proporcionar información falsa es una falta grave.",
		}},
		{Phase: model.PhaseInterrogation, Type: sc, Messages: []string{
			"Procedamos con el interrogatorio.",
			"Responda con la verdad para que todo quede debidamente asentado.",
		}},
		{Phase: model.PhaseInterrogation, Type: rg, Messages: []string{
			"Tengo algunas preguntas sobre su operación.",
		}},
		{Phase: model.PhaseVerification, Type: ex, Messages: []string{
			"Realizaré un recorrido por las instalaciones.",
			"Verificaré las condiciones reales de trabajo.",
		}},
		{Phase: model.PhaseVerification, Type: sc, Messages: []string{
			"Procederé a constatar físicamente algunos aspectos.",
		}},
		{Phase: model.PhaseCloseOK, Type: ex, Messages: []string{
			"La inspección ha concluido sin observaciones graves.",
			"Se emitirá acta en los próximos días hábiles.",
		}},
		{Phase: model.PhaseCloseOK, Type: sc, Messages: []string{
			"La inspección ha concluido satisfactoriamente.",
			"Recibirá copia del acta.",
		}},
		{Phase: model.PhaseCloseOK, Type: rg, Messages: []string{
			"La visita de constatación ha concluido.",
			"Su registro REPSE se encuentra en orden.",
		}},
		{Phase: model.PhaseCloseInfractions, Type: ex, Messages: []string{
			"Se detectaron infracciones durante la inspección.",
			"Se emitirá acta circunstanciada con las observaciones y posibles sanciones.",
			"Tiene derecho a presentar pruebas en los plazos establecidos.",
		}},
		{Phase: model.PhaseCloseInfractions, Type: sc, Messages: []string{
			"Se detectaron algunas irregularidades.",
			"Se asentarán en el acta correspondiente.",
		}},
		{Phase: model.PhaseCloseInfractions, Type: rg, Messages: []string{
			"Se detectaron observaciones que deberá corregir.",
			"Recibirá notificación con los plazos para subsanar.",
		}},
	}
}
