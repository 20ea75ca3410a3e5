package engine

import (
	"testing"

	"repse-simulator/internal/catalog"
	"repse-simulator/internal/model"
)

func answer(id string) *string { return &id }

// perfectSubmission presents every document, picks the best fully-correct
// option and complies at every point.
func perfectSubmission(cat *catalog.Catalog, p model.ProfileType, it model.InspectionType) *Submission {
	sub := &Submission{InspectionType: it, Profile: p}
	for _, d := range cat.RelevantDocuments(p, it) {
		sub.DocumentResults = append(sub.DocumentResults, model.DocumentResult{
			DocumentID: d.ID, Presented: true, Valid: true, Points: d.Points,
		})
	}
	for _, q := range cat.RelevantQuestions(p, it) {
		best := q.Options[0]
		for _, o := range q.Options {
			if o.Correct == model.Correct && o.Points > best.Points {
				best = o
			}
		}
		sub.QuestionResults = append(sub.QuestionResults, model.QuestionResult{
			QuestionID: q.ID, AnswerID: answer(best.ID), Correct: best.Correct, Points: best.Points,
		})
	}
	for _, v := range cat.RelevantVerificationPoints(p, it) {
		sub.VerificationResults = append(sub.VerificationResults, model.VerificationResult{
			PointID: v.ID, Status: model.StatusComplies, Points: v.Points.Complies,
		})
	}
	return sub
}

func TestScoreMissingRegistrationDocument(t *testing.T) {
	cat := catalog.Default()
	sub := perfectSubmission(cat, model.ProfileContractor, model.InspectionRegistration)
	sub.DocumentResults[0] = model.DocumentResult{
		DocumentID: catalog.DocRegistration, Points: -15,
		Observation: "Falta documento obligatorio: Aviso de Registro REPSE",
	}

	res := Score(cat, sub)

	if len(res.Infractions) != 1 {
		t.Fatalf("expected 1 infraction, got %d", len(res.Infractions))
	}
	inf := res.Infractions[0]
	if inf.ID != "doc_repse" {
		t.Fatalf("expected doc_repse, got %s", inf.ID)
	}
	if !inf.IsGrave {
		t.Fatal("expected missing obligatory document to be grave")
	}
	if inf.FineMin != 226280 || inf.FineMax != 5657000 {
		t.Fatalf("unexpected fine band %d-%d", inf.FineMin, inf.FineMax)
	}
	if !res.HasREPSECancellationRisk {
		t.Fatal("expected cancellation risk")
	}
	if res.HasCrimeRisk {
		t.Fatal("expected no crime risk")
	}
	if res.DocumentsMissing != 1 {
		t.Fatalf("expected 1 missing document, got %d", res.DocumentsMissing)
	}
	if len(res.VerificationResults) != 0 || res.VerificationComplied != 0 {
		t.Fatal("registration visit must not carry verification results")
	}
}

func TestScoreCrimeRiskFromSocialSecurityAnswer(t *testing.T) {
	cat := catalog.Default()
	sub := perfectSubmission(cat, model.ProfileContractor, model.InspectionExtraordinary)
	for i, q := range sub.QuestionResults {
		if q.QuestionID == catalog.QuestionSocialSecurity {
			sub.QuestionResults[i] = model.QuestionResult{
				QuestionID:        q.QuestionID,
				AnswerID:          answer("d"),
				Points:            -20,
				Observation:       "CRÍTICO: Ningún trabajador asegurado - Delito",
				IsGraveInfraction: true,
				IsCrime:           true,
			}
		}
	}

	res := Score(cat, sub)

	if !res.HasCrimeRisk {
		t.Fatal("expected crime risk")
	}
	if res.HasREPSECancellationRisk {
		t.Fatal("social security answer must not flag cancellation risk")
	}
	if len(res.Infractions) != 1 {
		t.Fatalf("expected 1 infraction, got %d", len(res.Infractions))
	}
	inf := res.Infractions[0]
	if inf.ID != "q_q4" || !inf.IsGrave || !inf.IsCrime {
		t.Fatalf("unexpected infraction %+v", inf)
	}
	if inf.FineMin != 226280 || inf.FineMax != 5657000 {
		t.Fatalf("expected grave band, got %d-%d", inf.FineMin, inf.FineMax)
	}
	if inf.Description != "CRÍTICO: Ningún trabajador asegurado - Delito" {
		t.Fatalf("unexpected description %q", inf.Description)
	}
	if res.QuestionsIncorrect != 1 {
		t.Fatalf("expected 1 incorrect answer, got %d", res.QuestionsIncorrect)
	}
}

func TestScoreAllQuestionsSkipped(t *testing.T) {
	cat := catalog.Default()
	p, it := model.ProfileBeneficiary, model.InspectionScheduled
	sub := perfectSubmission(cat, p, it)
	relevant := cat.RelevantQuestions(p, it)
	sub.QuestionResults = nil
	for _, q := range relevant {
		sub.QuestionResults = append(sub.QuestionResults, model.QuestionResult{
			QuestionID: q.ID, Points: -2, Observation: "Pregunta no respondida",
		})
	}

	res := Score(cat, sub)

	if res.QuestionsSkipped != len(relevant) {
		t.Fatalf("expected %d skipped, got %d", len(relevant), res.QuestionsSkipped)
	}
	if res.QuestionsCorrect != 0 || res.QuestionsIncorrect != 0 {
		t.Fatalf("expected no graded answers, got %d correct %d incorrect", res.QuestionsCorrect, res.QuestionsIncorrect)
	}
	for _, q := range res.QuestionResults {
		if q.Points != -2 {
			t.Fatalf("question %s: expected -2, got %d", q.QuestionID, q.Points)
		}
	}
	if len(res.Infractions) != 0 {
		t.Fatalf("skips are not infractions, got %d", len(res.Infractions))
	}
	if res.Score >= 100 {
		t.Fatalf("expected score below 100, got %d", res.Score)
	}
}

func TestScorePerfectRun(t *testing.T) {
	cat := catalog.Default()
	for _, p := range []model.ProfileType{model.ProfileContractor, model.ProfileBeneficiary} {
		for _, it := range []model.InspectionType{model.InspectionExtraordinary, model.InspectionScheduled, model.InspectionRegistration} {
			res := Score(cat, perfectSubmission(cat, p, it))
			if res.Score != 100 {
				t.Errorf("%s/%s: expected 100, got %d", p, it, res.Score)
			}
			if len(res.Infractions) != 0 {
				t.Errorf("%s/%s: expected no infractions, got %d", p, it, len(res.Infractions))
			}
			if res.HasCrimeRisk || res.HasREPSECancellationRisk {
				t.Errorf("%s/%s: unexpected risk flags", p, it)
			}
			if res.Level != "alto" {
				t.Errorf("%s/%s: expected level alto, got %s", p, it, res.Level)
			}
			if res.TotalFineMin != 0 || res.TotalFineMax != 0 {
				t.Errorf("%s/%s: expected no fines", p, it)
			}
		}
	}
}

func TestScoreClampsToZero(t *testing.T) {
	cat := catalog.Default()
	p, it := model.ProfileContractor, model.InspectionExtraordinary
	sub := &Submission{InspectionType: it, Profile: p}
	for _, d := range cat.RelevantDocuments(p, it) {
		sub.DocumentResults = append(sub.DocumentResults, model.DocumentResult{DocumentID: d.ID, Points: -d.Points})
	}

	res := Score(cat, sub)

	if res.Score != 0 {
		t.Fatalf("expected clamped score 0, got %d", res.Score)
	}
	if res.Level != "bajo" {
		t.Fatalf("expected level bajo, got %s", res.Level)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	cat := catalog.Default()
	sub := perfectSubmission(cat, model.ProfileContractor, model.InspectionScheduled)
	sub.VerificationResults[1] = model.VerificationResult{PointID: "r2", Status: model.StatusNotComplies, Points: -10}

	a := Score(cat, sub)
	b := Score(cat, sub)

	if a.ID == b.ID {
		t.Fatal("expected distinct result ids")
	}
	if a.Score != b.Score || a.TotalFineMin != b.TotalFineMin || a.TotalFineMax != b.TotalFineMax {
		t.Fatal("expected identical scoring")
	}
	if len(a.Infractions) != len(b.Infractions) {
		t.Fatal("expected identical infractions")
	}
	for i := range a.Infractions {
		if a.Infractions[i] != b.Infractions[i] {
			t.Fatalf("infraction %d differs: %+v vs %+v", i, a.Infractions[i], b.Infractions[i])
		}
	}
}

func TestScoreFinesAreAdditive(t *testing.T) {
	cat := catalog.Default()
	sub := perfectSubmission(cat, model.ProfileContractor, model.InspectionExtraordinary)
	for i, v := range sub.VerificationResults {
		sub.VerificationResults[i] = model.VerificationResult{PointID: v.PointID, Status: model.StatusNotComplies, Points: -1}
	}

	res := Score(cat, sub)

	var min, max int64
	for _, inf := range res.Infractions {
		min += inf.FineMin
		max += inf.FineMax
	}
	if res.TotalFineMin != min || res.TotalFineMax != max {
		t.Fatalf("totals %d-%d do not match infractions %d-%d", res.TotalFineMin, res.TotalFineMax, min, max)
	}
	if res.VerificationNotComplied != len(sub.VerificationResults) {
		t.Fatalf("expected %d not complied, got %d", len(sub.VerificationResults), res.VerificationNotComplied)
	}
	// r1 and r5 are standard, r2 and r3 grave.
	want := 2*catalog.SeverityFine(false).Min + 2*catalog.SeverityFine(true).Min
	if res.TotalFineMin != want {
		t.Fatalf("expected min fine %d, got %d", want, res.TotalFineMin)
	}
}

func TestQuestionMaxFallback(t *testing.T) {
	q := model.QuestionRule{Options: []model.QuestionOption{
		{ID: "a", Correct: model.PartiallyCorrect, Points: 3},
		{ID: "b", Points: -5},
	}}
	if got := questionMax(q); got != FallbackQuestionMax {
		t.Fatalf("expected fallback %d, got %d", FallbackQuestionMax, got)
	}
	q.Options = append(q.Options, model.QuestionOption{ID: "c", Correct: model.Correct, Points: 7})
	if got := questionMax(q); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		total, max, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{50, 100, 50},
		{2, 3, 67},
		{150, 100, 100},
		{-20, 100, 0},
	}
	for _, tt := range tests {
		if got := Normalize(tt.total, tt.max); got != tt.want {
			t.Errorf("Normalize(%d, %d) = %d, want %d", tt.total, tt.max, got, tt.want)
		}
	}
}

func TestLevelBreakpoints(t *testing.T) {
	if Level(80) != LevelHigh || Level(79) != LevelMedium || Level(60) != LevelMedium || Level(59) != LevelLow {
		t.Fatal("unexpected level breakpoints")
	}
}
