// Package simulator runs one inspection at a time: it walks the phase state
// machine, collects document, question and verification responses, and hands
// the collected results to the scoring engine and the remediation rules.
//
// A Simulator is not safe for concurrent use. Result persistence is the only
// background work; Flush waits for it.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"repse-simulator/internal/catalog"
	"repse-simulator/internal/engine"
	"repse-simulator/internal/history"
	"repse-simulator/internal/model"
	"repse-simulator/internal/remediation"
)

var (
	ErrWrongPhase            = errors.New("operation not available in current phase")
	ErrIncomplete            = errors.New("not every item has a recorded response")
	ErrUnknownInspectionType = errors.New("unknown inspection type")
	ErrUnknownProfile        = errors.New("unknown profile")
)

// DefaultWorkerRange is the worker count shown until the user picks one.
const DefaultWorkerRange = "1-10"

const saveTimeout = 5 * time.Second

// Simulator holds the state of the active run.
type Simulator struct {
	cat     *catalog.Catalog
	history *history.Store
	logger  *zap.Logger
	now     func() time.Time

	phase          model.Phase
	inspectionType model.InspectionType
	config         *model.InspectionTypeConfig
	profile        model.ProfileType
	companyName    string
	workerRange    string
	startedAt      time.Time

	documents     []model.DocumentRule
	questions     []model.QuestionRule
	verifications []model.VerificationPointRule

	dialogueIndex int
	questionIndex int

	documentResults     []model.DocumentResult
	questionResults     []model.QuestionResult
	verificationResults []model.VerificationResult

	result        *model.SimulationResult
	actionItems   []model.ActionItem
	planGenerated bool

	pending sync.WaitGroup
}

// New returns a Simulator in the selection phase. hist may be nil, in which
// case results are not persisted.
func New(cat *catalog.Catalog, hist *history.Store, logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Simulator{
		cat:     cat,
		history: hist,
		logger:  logger,
		now:     time.Now,
	}
	s.clear()
	return s
}

func (s *Simulator) clear() {
	s.phase = model.PhaseSelection
	s.inspectionType = ""
	s.config = nil
	s.profile = ""
	s.companyName = ""
	s.workerRange = DefaultWorkerRange
	s.startedAt = time.Time{}
	s.documents = nil
	s.questions = nil
	s.verifications = nil
	s.dialogueIndex = 0
	s.questionIndex = 0
	s.documentResults = nil
	s.questionResults = nil
	s.verificationResults = nil
	s.result = nil
	s.actionItems = nil
	s.planGenerated = false
}

// Reset discards the active run and returns to selection. Pending history
// writes are not cancelled.
func (s *Simulator) Reset() {
	if s.phase != model.PhaseSelection {
		s.logger.Info("Simulation reset",
			zap.String("phase", string(s.phase)),
			zap.String("inspection_type", string(s.inspectionType)))
	}
	s.clear()
}

// Flush blocks until every background history write has finished.
func (s *Simulator) Flush() {
	s.pending.Wait()
}

func (s *Simulator) setPhase(p model.Phase) {
	s.phase = p
	s.dialogueIndex = 0
}

func (s *Simulator) require(op string, want model.Phase) error {
	if s.phase != want {
		return fmt.Errorf("%w: %s needs %s, current phase is %s", ErrWrongPhase, op, want, s.phase)
	}
	return nil
}

// SelectInspectionType starts a run for t.
func (s *Simulator) SelectInspectionType(t model.InspectionType) error {
	if err := s.require("select inspection type", model.PhaseSelection); err != nil {
		return err
	}
	cfg, ok := s.cat.InspectionType(t)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownInspectionType, t)
	}
	s.inspectionType = t
	s.config = cfg
	s.setPhase(model.PhaseProfile)
	s.logger.Info("Inspection type selected", zap.String("inspection_type", string(t)))
	return nil
}

// SelectProfile fixes the relevant rule subsets and starts the clock.
func (s *Simulator) SelectProfile(p model.ProfileType) error {
	if err := s.require("select profile", model.PhaseProfile); err != nil {
		return err
	}
	if !p.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownProfile, p)
	}
	s.profile = p
	s.documents = s.cat.RelevantDocuments(p, s.inspectionType)
	s.questions = s.cat.RelevantQuestions(p, s.inspectionType)
	s.verifications = s.cat.RelevantVerificationPoints(p, s.inspectionType)
	s.startedAt = s.now()
	s.setPhase(model.PhaseIntro)
	s.logger.Info("Profile selected",
		zap.String("profile", string(p)),
		zap.Int("documents", len(s.documents)),
		zap.Int("questions", len(s.questions)),
		zap.Int("verification_points", len(s.verifications)))
	return nil
}

// SetCompany records display-only company details while the run is being
// introduced. An empty workerRange keeps the current one.
func (s *Simulator) SetCompany(name, workerRange string) error {
	if s.phase != model.PhaseProfile && s.phase != model.PhaseIntro {
		return fmt.Errorf("%w: set company needs %s or %s, current phase is %s",
			ErrWrongPhase, model.PhaseProfile, model.PhaseIntro, s.phase)
	}
	s.companyName = name
	if workerRange != "" {
		s.workerRange = workerRange
	}
	return nil
}

// StartDocumentPhase leaves the introduction. The intro script does not
// have to be read to the end.
func (s *Simulator) StartDocumentPhase() error {
	if err := s.require("start document phase", model.PhaseIntro); err != nil {
		return err
	}
	s.setPhase(model.PhaseDocuments)
	return nil
}

// StartInterrogationPhase needs a response for every relevant document.
// With no relevant questions the interrogation finishes immediately.
func (s *Simulator) StartInterrogationPhase() error {
	if err := s.require("start interrogation", model.PhaseDocuments); err != nil {
		return err
	}
	if !s.DocumentsComplete() {
		return fmt.Errorf("%w: %d of %d documents recorded", ErrIncomplete, len(s.documentResults), len(s.documents))
	}
	s.setPhase(model.PhaseInterrogation)
	s.questionIndex = 0
	if len(s.questions) == 0 {
		s.finishInterrogation()
	}
	return nil
}

func (s *Simulator) finishInterrogation() {
	if s.config.HasPhase(model.PhaseVerification) {
		s.setPhase(model.PhaseVerification)
		return
	}
	s.score()
}

// ShowResults scores a run whose verification is complete.
func (s *Simulator) ShowResults() (*model.SimulationResult, error) {
	if err := s.require("show results", model.PhaseVerification); err != nil {
		return nil, err
	}
	if !s.VerificationComplete() {
		return nil, fmt.Errorf("%w: %d of %d verification points recorded",
			ErrIncomplete, len(s.verificationResults), len(s.verifications))
	}
	s.score()
	return s.result, nil
}

func (s *Simulator) score() {
	s.result = engine.Score(s.cat, &engine.Submission{
		InspectionType:      s.inspectionType,
		Profile:             s.profile,
		DocumentResults:     s.documentResults,
		QuestionResults:     s.questionResults,
		VerificationResults: s.verificationResults,
	})
	s.setPhase(model.PhaseResults)
	s.logger.Info("Simulation scored",
		zap.String("id", s.result.ID),
		zap.Int("score", s.result.Score),
		zap.String("level", s.result.Level),
		zap.Int("infractions", len(s.result.Infractions)),
		zap.Bool("crime_risk", s.result.HasCrimeRisk),
		zap.Bool("cancellation_risk", s.result.HasREPSECancellationRisk))
	s.persist(*s.result)
}

func (s *Simulator) persist(result model.SimulationResult) {
	if s.history == nil {
		return
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := s.history.Append(ctx, &result); err != nil {
			s.logger.Error("Failed to save simulation result", zap.String("id", result.ID), zap.Error(err))
		}
	}()
}

// ShowActionPlan moves to the action plan, generating it on first entry.
// Calling it again returns the same items with their completed flags.
func (s *Simulator) ShowActionPlan() ([]model.ActionItem, error) {
	if s.phase != model.PhaseResults && s.phase != model.PhaseActionPlan {
		return nil, fmt.Errorf("%w: show action plan needs %s, current phase is %s",
			ErrWrongPhase, model.PhaseResults, s.phase)
	}
	if !s.planGenerated {
		s.actionItems = remediation.Generate(s.result)
		s.planGenerated = true
		s.logger.Info("Action plan generated", zap.Int("items", len(s.actionItems)))
	}
	if s.phase != model.PhaseActionPlan {
		s.setPhase(model.PhaseActionPlan)
	}
	return s.ActionItems(), nil
}

// ToggleActionComplete flips one action item's completed flag.
func (s *Simulator) ToggleActionComplete(id string) bool {
	return remediation.Toggle(s.actionItems, id)
}
