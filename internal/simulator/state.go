package simulator

import (
	"context"
	"time"

	"repse-simulator/internal/model"
)

func (s *Simulator) Phase() model.Phase                   { return s.phase }
func (s *Simulator) InspectionType() model.InspectionType { return s.inspectionType }
func (s *Simulator) Profile() model.ProfileType           { return s.profile }

// InspectionConfig returns the selected inspection type, if any.
func (s *Simulator) InspectionConfig() (model.InspectionTypeConfig, bool) {
	if s.config == nil {
		return model.InspectionTypeConfig{}, false
	}
	return *s.config, true
}

// Company returns the display-only company name and worker range.
func (s *Simulator) Company() (name, workerRange string) {
	return s.companyName, s.workerRange
}

// Elapsed is the time since the profile was selected, or zero before that.
func (s *Simulator) Elapsed() time.Duration {
	if s.startedAt.IsZero() {
		return 0
	}
	return s.now().Sub(s.startedAt)
}

func (s *Simulator) RelevantDocuments() []model.DocumentRule {
	return append([]model.DocumentRule(nil), s.documents...)
}

func (s *Simulator) RelevantQuestions() []model.QuestionRule {
	return append([]model.QuestionRule(nil), s.questions...)
}

func (s *Simulator) RelevantVerificationPoints() []model.VerificationPointRule {
	return append([]model.VerificationPointRule(nil), s.verifications...)
}

func (s *Simulator) DocumentResults() []model.DocumentResult {
	return append([]model.DocumentResult(nil), s.documentResults...)
}

func (s *Simulator) QuestionResults() []model.QuestionResult {
	return append([]model.QuestionResult(nil), s.questionResults...)
}

func (s *Simulator) VerificationResults() []model.VerificationResult {
	return append([]model.VerificationResult(nil), s.verificationResults...)
}

func (s *Simulator) DocumentResult(id string) (model.DocumentResult, bool) {
	for _, r := range s.documentResults {
		if r.DocumentID == id {
			return r, true
		}
	}
	return model.DocumentResult{}, false
}

func (s *Simulator) VerificationResult(id string) (model.VerificationResult, bool) {
	for _, r := range s.verificationResults {
		if r.PointID == id {
			return r, true
		}
	}
	return model.VerificationResult{}, false
}

// CurrentQuestion is the question at the interrogation cursor.
func (s *Simulator) CurrentQuestion() (model.QuestionRule, bool) {
	if s.questionIndex >= len(s.questions) {
		return model.QuestionRule{}, false
	}
	return s.questions[s.questionIndex], true
}

// QuestionIndex is the zero-based interrogation cursor.
func (s *Simulator) QuestionIndex() int { return s.questionIndex }

// Result is the scored result of the run, nil until results.
func (s *Simulator) Result() *model.SimulationResult { return s.result }

// ActionItems returns a copy of the action plan.
func (s *Simulator) ActionItems() []model.ActionItem {
	if s.actionItems == nil {
		return nil
	}
	out := make([]model.ActionItem, len(s.actionItems))
	copy(out, s.actionItems)
	return out
}

// History returns stored results, newest first. It is empty without a
// history store.
func (s *Simulator) History(ctx context.Context) []model.SimulationResult {
	if s.history == nil {
		return []model.SimulationResult{}
	}
	return s.history.Load(ctx)
}

func (s *Simulator) dialoguePhase() model.Phase {
	switch s.phase {
	case model.PhaseResults, model.PhaseActionPlan:
		if s.result != nil && len(s.result.Infractions) > 0 {
			return model.PhaseCloseInfractions
		}
		return model.PhaseCloseOK
	default:
		return s.phase
	}
}

// DialogueLines is the inspector's script for the current phase. Results
// and action plan use the closing script.
func (s *Simulator) DialogueLines() []string {
	if s.inspectionType == "" {
		return nil
	}
	return s.cat.Dialogue(s.dialoguePhase(), s.inspectionType)
}

// DialogueIndex is the cursor into DialogueLines.
func (s *Simulator) DialogueIndex() int { return s.dialogueIndex }

// CurrentLine returns the dialogue line at the cursor.
func (s *Simulator) CurrentLine() (string, bool) {
	lines := s.DialogueLines()
	if s.dialogueIndex >= len(lines) {
		return "", false
	}
	return lines[s.dialogueIndex], true
}

// AdvanceDialogue moves to the next line and reports false once the cursor
// is already on the last one.
func (s *Simulator) AdvanceDialogue() bool {
	if s.dialogueIndex >= len(s.DialogueLines())-1 {
		return false
	}
	s.dialogueIndex++
	return true
}

// DialogueDone reports whether the last line has been reached.
func (s *Simulator) DialogueDone() bool {
	return s.dialogueIndex >= len(s.DialogueLines())-1
}
