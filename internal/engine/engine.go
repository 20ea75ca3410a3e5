package engine

import (
	"math"
	"time"

	"github.com/google/uuid"

	"repse-simulator/internal/catalog"
	"repse-simulator/internal/model"
)

// FallbackQuestionMax is the max score credited to a question that has no
// option graded fully correct with positive points.
const FallbackQuestionMax = 10

// Compliance bands. Breakpoints are inclusive lower bounds, checked in order.
var (
	LevelHigh   = model.ComplianceLevel{Level: "alto", Color: "#10B981", Text: "Excelente cumplimiento"}
	LevelMedium = model.ComplianceLevel{Level: "medio", Color: "#F59E0B", Text: "Cumplimiento regular"}
	LevelLow    = model.ComplianceLevel{Level: "bajo", Color: "#EF4444", Text: "Cumplimiento deficiente"}
)

// Submission is everything recorded during one run.
type Submission struct {
	InspectionType      model.InspectionType
	Profile             model.ProfileType
	DocumentResults     []model.DocumentResult
	QuestionResults     []model.QuestionResult
	VerificationResults []model.VerificationResult
}

// Score folds the recorded results against the relevant rules of cat and
// returns a new SimulationResult. Results for rules outside the relevant
// subsets are carried in the snapshot but contribute nothing; relevant
// rules without a result contribute zero.
func Score(cat *catalog.Catalog, sub *Submission) *model.SimulationResult {
	var (
		totalScore  int
		maxScore    int
		infractions []model.Infraction
		crimeRisk   bool
		cancelRisk  bool
	)

	docs := indexDocuments(sub.DocumentResults)
	for _, doc := range cat.RelevantDocuments(sub.Profile, sub.InspectionType) {
		maxScore += doc.Points
		r, ok := docs[doc.ID]
		if !ok {
			continue
		}
		totalScore += r.Points
		if r.Presented || !doc.Obligatory {
			continue
		}
		fine := catalog.FineAmount(doc.FineIfMissing)
		infractions = append(infractions, model.Infraction{
			ID:          "doc_" + doc.ID,
			Description: "Falta documento: " + doc.Name,
			LegalBasis:  doc.LegalBasis,
			IsGrave:     doc.Obligatory,
			FineMin:     fine.Min,
			FineMax:     fine.Max,
			FineUnit:    doc.FineIfMissing.Unit,
		})
		if doc.RegistrationProof {
			cancelRisk = true
		}
	}

	questions := indexQuestions(sub.QuestionResults)
	relevantQuestions := cat.RelevantQuestions(sub.Profile, sub.InspectionType)
	for _, q := range relevantQuestions {
		maxScore += questionMax(q)
		r, ok := questions[q.ID]
		if !ok {
			continue
		}
		totalScore += r.Points
		if !r.IsInfraction && !r.IsGraveInfraction {
			continue
		}
		description := r.Observation
		if description == "" {
			description = "Infracción detectada"
		}
		infractions = append(infractions, severityInfraction("q_"+q.ID, description, q.LegalBasis, r.IsGraveInfraction, r.IsCrime))
		if r.IsCrime {
			crimeRisk = true
		}
		if r.IsGraveInfraction && q.RegistrationStatus {
			cancelRisk = true
		}
	}

	verifications := indexVerifications(sub.VerificationResults)
	for _, vp := range cat.RelevantVerificationPoints(sub.Profile, sub.InspectionType) {
		maxScore += vp.Points.Complies
		r, ok := verifications[vp.ID]
		if !ok {
			continue
		}
		totalScore += r.Points
		if r.Status != model.StatusNotComplies {
			continue
		}
		description := r.Observation
		if description == "" {
			description = vp.ObservationIfNotComplies
		}
		infractions = append(infractions, severityInfraction("v_"+vp.ID, description, vp.LegalBasis, vp.IsGraveInfraction, vp.IsCrime))
		if vp.IsCrime {
			crimeRisk = true
		}
	}

	score := Normalize(totalScore, maxScore)

	result := &model.SimulationResult{
		ID:                       uuid.New().String(),
		Date:                     time.Now().UTC(),
		InspectionType:           sub.InspectionType,
		Profile:                  sub.Profile,
		Score:                    score,
		ComplianceLevel:          Level(score),
		DocumentResults:          cloneSlice(sub.DocumentResults),
		QuestionResults:          cloneQuestionResults(sub.QuestionResults),
		VerificationResults:      cloneSlice(sub.VerificationResults),
		Infractions:              infractions,
		HasCrimeRisk:             crimeRisk,
		HasREPSECancellationRisk: cancelRisk,
	}
	if result.Infractions == nil {
		result.Infractions = []model.Infraction{}
	}
	for _, inf := range infractions {
		result.TotalFineMin += inf.FineMin
		result.TotalFineMax += inf.FineMax
	}
	countOutcomes(result, len(relevantQuestions))
	return result
}

// Normalize maps total/max to a 0..100 integer. A non-positive max yields 0.
func Normalize(total, max int) int {
	if max <= 0 {
		return 0
	}
	score := int(math.Round(100 * float64(total) / float64(max)))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Level returns the compliance band for a normalized score.
func Level(score int) model.ComplianceLevel {
	switch {
	case score >= 80:
		return LevelHigh
	case score >= 60:
		return LevelMedium
	default:
		return LevelLow
	}
}

func questionMax(q model.QuestionRule) int {
	best := 0
	found := false
	for _, o := range q.Options {
		if o.Correct != model.Correct {
			continue
		}
		if !found || o.Points > best {
			best = o.Points
			found = true
		}
	}
	if !found || best <= 0 {
		return FallbackQuestionMax
	}
	return best
}

func severityInfraction(id, description, legalBasis string, grave, crime bool) model.Infraction {
	fine := catalog.SeverityFine(grave)
	return model.Infraction{
		ID:          id,
		Description: description,
		LegalBasis:  legalBasis,
		IsGrave:     grave,
		IsCrime:     crime,
		FineMin:     fine.Min,
		FineMax:     fine.Max,
		FineUnit:    catalog.Currency,
	}
}

func countOutcomes(r *model.SimulationResult, relevantQuestions int) {
	for _, d := range r.DocumentResults {
		if d.Presented {
			r.DocumentsPresented++
		} else {
			r.DocumentsMissing++
		}
	}
	answered := 0
	for _, q := range r.QuestionResults {
		if q.Skipped() {
			continue
		}
		answered++
		switch {
		case q.Points > 0:
			r.QuestionsCorrect++
		case q.Points < 0:
			r.QuestionsIncorrect++
		}
	}
	if skipped := relevantQuestions - answered; skipped > 0 {
		r.QuestionsSkipped = skipped
	}
	for _, v := range r.VerificationResults {
		switch v.Status {
		case model.StatusComplies:
			r.VerificationComplied++
		case model.StatusNotComplies:
			r.VerificationNotComplied++
		}
	}
}

func indexDocuments(results []model.DocumentResult) map[string]model.DocumentResult {
	m := make(map[string]model.DocumentResult, len(results))
	for _, r := range results {
		m[r.DocumentID] = r
	}
	return m
}

func indexQuestions(results []model.QuestionResult) map[string]model.QuestionResult {
	m := make(map[string]model.QuestionResult, len(results))
	for _, r := range results {
		m[r.QuestionID] = r
	}
	return m
}

func indexVerifications(results []model.VerificationResult) map[string]model.VerificationResult {
	m := make(map[string]model.VerificationResult, len(results))
	for _, r := range results {
		m[r.PointID] = r
	}
	return m
}

func cloneSlice[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// cloneQuestionResults also copies AnswerID so the snapshot shares no
// pointers with the collector.
func cloneQuestionResults(s []model.QuestionResult) []model.QuestionResult {
	out := cloneSlice(s)
	for i := range out {
		if out[i].AnswerID != nil {
			id := *out[i].AnswerID
			out[i].AnswerID = &id
		}
	}
	return out
}
