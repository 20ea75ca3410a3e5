// Package scenario drives a simulator through a whole inspection from a
// YAML script, for non-interactive runs and regression fixtures.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"repse-simulator/internal/model"
	"repse-simulator/internal/simulator"
)

// Document outcomes accepted in scripts.
const (
	DocPresented = "presented"
	DocInvalid   = "invalid"
	DocMissing   = "missing"
)

// Default answer strategies.
const (
	AnswerBest = "best"
	AnswerSkip = "skip"
)

var ErrInvalidScript = errors.New("invalid scenario script")

// Script describes one run. Items the script does not mention fall back to
// the Default* fields. A null answer skips the question.
type Script struct {
	Name           string               `yaml:"name"`
	InspectionType model.InspectionType `yaml:"inspectionType"`
	Profile        model.ProfileType    `yaml:"profile"`
	Company        Company              `yaml:"company"`

	Documents       map[string]string `yaml:"documents"`
	DefaultDocument string            `yaml:"defaultDocument"`

	Answers       map[string]*string `yaml:"answers"`
	DefaultAnswer string             `yaml:"defaultAnswer"`

	Verification        map[string]model.VerificationStatus `yaml:"verification"`
	DefaultVerification model.VerificationStatus            `yaml:"defaultVerification"`

	// Completed lists action item ids to mark done after the plan is built.
	Completed []string `yaml:"completed"`
}

type Company struct {
	Name    string `yaml:"name"`
	Workers string `yaml:"workers"`
}

// Outcome is what a run produced.
type Outcome struct {
	Name       string                  `json:"name,omitempty"`
	Result     *model.SimulationResult `json:"result"`
	ActionPlan []model.ActionItem      `json:"actionPlan"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML script and fills defaults.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if s.DefaultDocument == "" {
		s.DefaultDocument = DocPresented
	}
	if s.DefaultAnswer == "" {
		s.DefaultAnswer = AnswerBest
	}
	if s.DefaultVerification == "" {
		s.DefaultVerification = model.StatusComplies
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) validate() error {
	if !s.InspectionType.IsValid() {
		return fmt.Errorf("%w: inspectionType %q", ErrInvalidScript, s.InspectionType)
	}
	if !s.Profile.IsValid() {
		return fmt.Errorf("%w: profile %q", ErrInvalidScript, s.Profile)
	}
	if !validDocument(s.DefaultDocument) {
		return fmt.Errorf("%w: defaultDocument %q", ErrInvalidScript, s.DefaultDocument)
	}
	for id, v := range s.Documents {
		if !validDocument(v) {
			return fmt.Errorf("%w: document %s: %q", ErrInvalidScript, id, v)
		}
	}
	if s.DefaultAnswer != AnswerBest && s.DefaultAnswer != AnswerSkip {
		return fmt.Errorf("%w: defaultAnswer %q", ErrInvalidScript, s.DefaultAnswer)
	}
	if !s.DefaultVerification.IsValid() {
		return fmt.Errorf("%w: defaultVerification %q", ErrInvalidScript, s.DefaultVerification)
	}
	for id, v := range s.Verification {
		if !v.IsValid() {
			return fmt.Errorf("%w: verification %s: %q", ErrInvalidScript, id, v)
		}
	}
	return nil
}

func validDocument(v string) bool {
	return v == DocPresented || v == DocInvalid || v == DocMissing
}

// Run resets sim and plays the script through to the action plan.
func Run(sim *simulator.Simulator, s *Script) (*Outcome, error) {
	sim.Reset()
	if err := sim.SelectInspectionType(s.InspectionType); err != nil {
		return nil, err
	}
	if err := sim.SelectProfile(s.Profile); err != nil {
		return nil, err
	}
	if s.Company.Name != "" || s.Company.Workers != "" {
		if err := sim.SetCompany(s.Company.Name, s.Company.Workers); err != nil {
			return nil, err
		}
	}
	if err := sim.StartDocumentPhase(); err != nil {
		return nil, err
	}

	for _, d := range sim.RelevantDocuments() {
		outcome, ok := s.Documents[d.ID]
		if !ok {
			outcome = s.DefaultDocument
		}
		sim.RecordDocument(d.ID, outcome != DocMissing, outcome == DocPresented)
	}
	if err := sim.StartInterrogationPhase(); err != nil {
		return nil, err
	}

	for sim.Phase() == model.PhaseInterrogation {
		q, ok := sim.CurrentQuestion()
		if !ok {
			break
		}
		answer := s.answerFor(q)
		if !sim.RecordQuestionAnswer(answer) {
			if answer == nil {
				return nil, fmt.Errorf("%w: question %s was not accepted", ErrInvalidScript, q.ID)
			}
			return nil, fmt.Errorf("%w: question %s has no option %q", ErrInvalidScript, q.ID, *answer)
		}
	}

	if sim.Phase() == model.PhaseVerification {
		for _, v := range sim.RelevantVerificationPoints() {
			status, ok := s.Verification[v.ID]
			if !ok {
				status = s.DefaultVerification
			}
			sim.RecordVerification(v.ID, status)
		}
		if _, err := sim.ShowResults(); err != nil {
			return nil, err
		}
	}

	if _, err := sim.ShowActionPlan(); err != nil {
		return nil, err
	}
	for _, id := range s.Completed {
		sim.ToggleActionComplete(id)
	}
	return &Outcome{Name: s.Name, Result: sim.Result(), ActionPlan: sim.ActionItems()}, nil
}

func (s *Script) answerFor(q model.QuestionRule) *string {
	if a, ok := s.Answers[q.ID]; ok {
		return a
	}
	if s.DefaultAnswer == AnswerSkip {
		return nil
	}
	return bestOption(q)
}

// bestOption is the highest-scoring fully correct option, else the
// highest-scoring option overall.
func bestOption(q model.QuestionRule) *string {
	var best *model.QuestionOption
	for i := range q.Options {
		o := &q.Options[i]
		switch {
		case best == nil:
			best = o
		case o.Correct == model.Correct && best.Correct != model.Correct:
			best = o
		case o.Correct == best.Correct && o.Points > best.Points:
			best = o
		}
	}
	if best == nil {
		return nil
	}
	id := best.ID
	return &id
}
