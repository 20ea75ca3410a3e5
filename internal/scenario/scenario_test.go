package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repse-simulator/internal/catalog"
	"repse-simulator/internal/model"
	"repse-simulator/internal/simulator"
)

func TestRunMissingRegistration(t *testing.T) {
	script, err := Load("testdata/missing_registration.yaml")
	require.NoError(t, err)

	sim := simulator.New(catalog.Default(), nil, nil)
	out, err := Run(sim, script)
	require.NoError(t, err)

	res := out.Result
	require.NotNil(t, res)
	assert.Equal(t, model.InspectionRegistration, res.InspectionType)
	assert.True(t, res.HasREPSECancellationRisk)
	assert.True(t, res.HasCrimeRisk, "q1 option c is a crime")
	assert.Empty(t, res.VerificationResults)
	assert.Equal(t, 1, res.QuestionsSkipped)

	r, ok := res.Document("contratos_servicios")
	require.True(t, ok)
	assert.True(t, r.Presented)
	assert.Equal(t, 6, r.Points)

	require.NotEmpty(t, out.ActionPlan)
	assert.Equal(t, "get_repse", out.ActionPlan[0].ID)
	assert.True(t, out.ActionPlan[0].Completed)

	name, workers := sim.Company()
	assert.Equal(t, "Servicios Especializados del Norte", name)
	assert.Equal(t, "11-50", workers)
}

func TestRunCleanBeneficiary(t *testing.T) {
	script, err := Load("testdata/clean_beneficiary.yaml")
	require.NoError(t, err)

	out, err := Run(simulator.New(catalog.Default(), nil, nil), script)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Result.Score)
	assert.Empty(t, out.Result.Infractions)
	assert.Empty(t, out.ActionPlan)
	assert.Len(t, out.Result.VerificationResults, 5)
}

func TestRunSkipAll(t *testing.T) {
	script, err := Parse([]byte(`
inspectionType: extraordinaria
profile: contratista
defaultAnswer: skip
defaultVerification: notApplicable
`))
	require.NoError(t, err)

	sim := simulator.New(catalog.Default(), nil, nil)
	out, err := Run(sim, script)
	require.NoError(t, err)
	assert.Equal(t, len(sim.RelevantQuestions()), out.Result.QuestionsSkipped)
	assert.Equal(t, 0, out.Result.VerificationComplied)
}

func TestRunUnknownOption(t *testing.T) {
	script, err := Parse([]byte(`
inspectionType: ordinaria
profile: contratista
answers:
  q1: z
`))
	require.NoError(t, err)
	_, err = Run(simulator.New(catalog.Default(), nil, nil), script)
	assert.ErrorIs(t, err, ErrInvalidScript)
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"bad type":         "inspectionType: sorpresa\nprofile: contratista\n",
		"bad profile":      "inspectionType: ordinaria\nprofile: trabajador\n",
		"bad document":     "inspectionType: ordinaria\nprofile: contratista\ndocuments: {repse: lost}\n",
		"bad verification": "inspectionType: ordinaria\nprofile: contratista\nverification: {r1: maybe}\n",
		"bad default":      "inspectionType: ordinaria\nprofile: contratista\ndefaultAnswer: random\n",
		"not yaml":         "inspectionType: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidScript)
		})
	}
}

func TestBestOptionPrefersFullyCorrect(t *testing.T) {
	q := model.QuestionRule{Options: []model.QuestionOption{
		{ID: "a", Points: -15},
		{ID: "b", Correct: model.PartiallyCorrect, Points: 3},
		{ID: "c", Correct: model.Correct, Points: 5},
		{ID: "d", Correct: model.Correct, Points: 8},
	}}
	assert.Equal(t, "d", *bestOption(q))
}
