package simulator

import (
	"go.uber.org/zap"

	"repse-simulator/internal/model"
)

const (
	skipPenalty = -2

	obsInvalidDocument = "Documento con observaciones"
	obsMissingPrefix   = "Falta documento obligatorio: "
	obsOptionalMissing = "Documento recomendado no presentado"
	obsQuestionSkipped = "Pregunta no respondida"
)

// RecordDocument records whether a relevant document was presented and, if
// so, whether it was valid. It replaces any earlier response for id and
// reports false when the call was ignored.
func (s *Simulator) RecordDocument(id string, presented, valid bool) bool {
	if s.phase != model.PhaseDocuments {
		s.ignored("document", id)
		return false
	}
	var doc *model.DocumentRule
	for i := range s.documents {
		if s.documents[i].ID == id {
			doc = &s.documents[i]
			break
		}
	}
	if doc == nil {
		s.ignored("document", id)
		return false
	}

	r := model.DocumentResult{DocumentID: id, Presented: presented, Valid: valid}
	switch {
	case presented && valid:
		r.Points = doc.Points
	case presented:
		r.Points = doc.Points / 2
		r.Observation = obsInvalidDocument
	case doc.Obligatory:
		r.Points = -doc.Points
		r.Observation = obsMissingPrefix + doc.Name
	default:
		r.Observation = obsOptionalMissing
	}
	if !presented {
		r.Valid = false
	}
	s.documentResults = replaceDocument(s.documentResults, r)
	return true
}

// RecordQuestionAnswer answers the current question. A nil answerID skips
// it. An option id the question does not offer is ignored and the cursor
// stays put. Answering the last question ends the interrogation.
func (s *Simulator) RecordQuestionAnswer(answerID *string) bool {
	q, ok := s.CurrentQuestion()
	if s.phase != model.PhaseInterrogation || !ok {
		s.ignored("question", "")
		return false
	}

	r := model.QuestionResult{QuestionID: q.ID}
	if answerID == nil {
		r.Points = skipPenalty
		r.Observation = obsQuestionSkipped
	} else {
		opt, ok := q.Option(*answerID)
		if !ok {
			s.ignored("answer", q.ID+"/"+*answerID)
			return false
		}
		id := *answerID
		r.AnswerID = &id
		r.Correct = opt.Correct
		r.Points = opt.Points
		r.Observation = opt.Observation
		r.IsInfraction = opt.IsInfraction
		r.IsGraveInfraction = opt.IsGraveInfraction
		r.IsCrime = opt.IsCrime
	}
	s.questionResults = replaceQuestion(s.questionResults, r)

	if s.questionIndex < len(s.questions)-1 {
		s.questionIndex++
		return true
	}
	s.questionIndex = len(s.questions)
	s.finishInterrogation()
	return true
}

// RecordVerification records the on-site outcome for a relevant point.
func (s *Simulator) RecordVerification(id string, status model.VerificationStatus) bool {
	if s.phase != model.PhaseVerification || !status.IsValid() {
		s.ignored("verification", id)
		return false
	}
	var vp *model.VerificationPointRule
	for i := range s.verifications {
		if s.verifications[i].ID == id {
			vp = &s.verifications[i]
			break
		}
	}
	if vp == nil {
		s.ignored("verification", id)
		return false
	}

	r := model.VerificationResult{PointID: id, Status: status, Points: vp.Points.For(status)}
	if status == model.StatusNotComplies {
		r.Observation = vp.ObservationIfNotComplies
	}
	s.verificationResults = replaceVerification(s.verificationResults, r)
	return true
}

func (s *Simulator) ignored(kind, id string) {
	s.logger.Debug("Ignored response",
		zap.String("kind", kind),
		zap.String("id", id),
		zap.String("phase", string(s.phase)))
}

// DocumentsComplete reports whether every relevant document has a response.
func (s *Simulator) DocumentsComplete() bool {
	for _, d := range s.documents {
		if _, ok := s.DocumentResult(d.ID); !ok {
			return false
		}
	}
	return true
}

// VerificationComplete reports whether every relevant point has a response.
func (s *Simulator) VerificationComplete() bool {
	for _, v := range s.verifications {
		if _, ok := s.VerificationResult(v.ID); !ok {
			return false
		}
	}
	return true
}

func replaceDocument(list []model.DocumentResult, r model.DocumentResult) []model.DocumentResult {
	out := list[:0:0]
	for _, x := range list {
		if x.DocumentID != r.DocumentID {
			out = append(out, x)
		}
	}
	return append(out, r)
}

func replaceQuestion(list []model.QuestionResult, r model.QuestionResult) []model.QuestionResult {
	out := list[:0:0]
	for _, x := range list {
		if x.QuestionID != r.QuestionID {
			out = append(out, x)
		}
	}
	return append(out, r)
}

func replaceVerification(list []model.VerificationResult, r model.VerificationResult) []model.VerificationResult {
	out := list[:0:0]
	for _, x := range list {
		if x.PointID != r.PointID {
			out = append(out, x)
		}
	}
	return append(out, r)
}
