package model

import "time"

// DocumentResult records how one requested document was handled.
type DocumentResult struct {
	DocumentID  string `json:"documentId"`
	Presented   bool   `json:"presented"`
	Valid       bool   `json:"valid"`
	Points      int    `json:"points"`
	Observation string `json:"observation,omitempty"`
}

// QuestionResult records the answer to one interrogation question. The
// infraction flags are copied from the chosen option at recording time.
type QuestionResult struct {
	QuestionID string `json:"questionId"`
	// AnswerID is nil when the question was skipped.
	AnswerID          *string     `json:"answerId"`
	Correct           Correctness `json:"correct"`
	Points            int         `json:"points"`
	Observation       string      `json:"observation,omitempty"`
	IsInfraction      bool        `json:"isInfraction"`
	IsGraveInfraction bool        `json:"isGraveInfraction"`
	IsCrime           bool        `json:"isCrime"`
}

// Skipped reports whether the question was left unanswered.
func (r QuestionResult) Skipped() bool {
	return r.AnswerID == nil
}

// VerificationResult records the outcome of one verification point.
type VerificationResult struct {
	PointID     string             `json:"pointId"`
	Status      VerificationStatus `json:"status"`
	Points      int                `json:"points"`
	Observation string             `json:"observation,omitempty"`
}

// Infraction is a legal infraction detected while scoring. Fines are in
// currency units (MXN), already converted from legal units.
type Infraction struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	LegalBasis  string `json:"legalBasis"`
	IsGrave     bool   `json:"isGrave"`
	IsCrime     bool   `json:"isCrime"`
	FineMin     int64  `json:"fineMin"`
	FineMax     int64  `json:"fineMax"`
	FineUnit    string `json:"fineUnit"`
}

// ComplianceLevel is the band a normalized score falls in.
type ComplianceLevel struct {
	Level string `json:"level"`
	Color string `json:"levelColor"`
	Text  string `json:"levelText"`
}

// SimulationResult is the immutable outcome of one simulation run.
type SimulationResult struct {
	ID             string         `json:"id"`
	Date           time.Time      `json:"date"`
	InspectionType InspectionType `json:"inspectionType"`
	Profile        ProfileType    `json:"profile"`
	// Score is normalized to 0..100.
	Score int `json:"score"`
	ComplianceLevel

	DocumentResults     []DocumentResult     `json:"documentResults"`
	QuestionResults     []QuestionResult     `json:"questionResults"`
	VerificationResults []VerificationResult `json:"verificationResults"`
	Infractions         []Infraction         `json:"infractions"`

	TotalFineMin int64 `json:"totalFineMin"`
	TotalFineMax int64 `json:"totalFineMax"`

	DocumentsPresented      int `json:"documentsPresented"`
	DocumentsMissing        int `json:"documentsMissing"`
	QuestionsCorrect        int `json:"questionsCorrect"`
	QuestionsIncorrect      int `json:"questionsIncorrect"`
	QuestionsSkipped        int `json:"questionsSkipped"`
	VerificationComplied    int `json:"verificationComplied"`
	VerificationNotComplied int `json:"verificationNotComplied"`

	HasCrimeRisk             bool `json:"hasCrimeRisk"`
	HasREPSECancellationRisk bool `json:"hasREPSECancellationRisk"`
}

// Document returns the recorded result for a document id.
func (r *SimulationResult) Document(id string) (DocumentResult, bool) {
	for _, d := range r.DocumentResults {
		if d.DocumentID == id {
			return d, true
		}
	}
	return DocumentResult{}, false
}

// Question returns the recorded result for a question id.
func (r *SimulationResult) Question(id string) (QuestionResult, bool) {
	for _, q := range r.QuestionResults {
		if q.QuestionID == id {
			return q, true
		}
	}
	return QuestionResult{}, false
}
