// Package catalog holds the read-only rule catalogs the simulator scores
// against: inspection types, requested documents, interrogation questions,
// physical verification points and inspector dialogue scripts.
//
// A Catalog is loaded once at startup (built-in, from a file, or from a
// remote bundle) and never mutated afterwards. Relevance filters return
// fresh slices so callers cannot alias catalog storage.
package catalog

import (
	"errors"
	"fmt"

	"repse-simulator/internal/model"
)

// ErrInvalidCatalog is returned when a catalog fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the full set of simulator rules.
type Catalog struct {
	InspectionTypes    []model.InspectionTypeConfig  `json:"inspectionTypes" yaml:"inspectionTypes"`
	Documents          []model.DocumentRule          `json:"documents" yaml:"documents"`
	Questions          []model.QuestionRule          `json:"questions" yaml:"questions"`
	VerificationPoints []model.VerificationPointRule `json:"verificationPoints" yaml:"verificationPoints"`
	Dialogues          []model.Dialogue              `json:"dialogues" yaml:"dialogues"`
}

// InspectionType returns the configuration for id.
func (c *Catalog) InspectionType(id model.InspectionType) (*model.InspectionTypeConfig, bool) {
	for i := range c.InspectionTypes {
		if c.InspectionTypes[i].ID == id {
			return &c.InspectionTypes[i], true
		}
	}
	return nil, false
}

// RelevantDocuments returns the documents tagged for both p and t, in
// catalog order.
func (c *Catalog) RelevantDocuments(p model.ProfileType, t model.InspectionType) []model.DocumentRule {
	var out []model.DocumentRule
	for _, d := range c.Documents {
		if d.Applies(p, t) {
			out = append(out, d)
		}
	}
	return out
}

// RelevantQuestions returns the questions tagged for both p and t, in
// catalog order.
func (c *Catalog) RelevantQuestions(p model.ProfileType, t model.InspectionType) []model.QuestionRule {
	var out []model.QuestionRule
	for _, q := range c.Questions {
		if q.Applies(p, t) {
			out = append(out, q)
		}
	}
	return out
}

// RelevantVerificationPoints returns the verification points tagged for both
// p and t. It is empty when the inspection type has no verification phase.
func (c *Catalog) RelevantVerificationPoints(p model.ProfileType, t model.InspectionType) []model.VerificationPointRule {
	cfg, ok := c.InspectionType(t)
	if !ok || !cfg.HasPhase(model.PhaseVerification) {
		return nil
	}
	var out []model.VerificationPointRule
	for _, v := range c.VerificationPoints {
		if v.Applies(p, t) {
			out = append(out, v)
		}
	}
	return out
}

// Dialogue returns the inspector lines for a phase of inspection type t.
func (c *Catalog) Dialogue(phase model.Phase, t model.InspectionType) []string {
	for _, d := range c.Dialogues {
		if d.Phase == phase && d.Type == t {
			return d.Messages
		}
	}
	return nil
}

// Validate checks ids are unique per rule kind, tags reference known values
// and every question can be answered.
func (c *Catalog) Validate() error {
	if len(c.InspectionTypes) == 0 {
		return fmt.Errorf("%w: no inspection types", ErrInvalidCatalog)
	}
	seen := make(map[string]bool)
	for _, it := range c.InspectionTypes {
		if !it.ID.IsValid() {
			return fmt.Errorf("%w: unknown inspection type %q", ErrInvalidCatalog, it.ID)
		}
		if seen[string(it.ID)] {
			return fmt.Errorf("%w: duplicate inspection type %q", ErrInvalidCatalog, it.ID)
		}
		seen[string(it.ID)] = true
	}

	seen = make(map[string]bool)
	for _, d := range c.Documents {
		if err := checkRule("document", d.ID, d.Applicability, seen); err != nil {
			return err
		}
	}

	seen = make(map[string]bool)
	for _, q := range c.Questions {
		if err := checkRule("question", q.ID, q.Applicability, seen); err != nil {
			return err
		}
		if len(q.Options) == 0 {
			return fmt.Errorf("%w: question %q has no options", ErrInvalidCatalog, q.ID)
		}
		opts := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if opts[o.ID] {
				return fmt.Errorf("%w: question %q has duplicate option %q", ErrInvalidCatalog, q.ID, o.ID)
			}
			opts[o.ID] = true
		}
	}

	seen = make(map[string]bool)
	for _, v := range c.VerificationPoints {
		if err := checkRule("verification point", v.ID, v.Applicability, seen); err != nil {
			return err
		}
	}

	for _, d := range c.Dialogues {
		if !d.Type.IsValid() {
			return fmt.Errorf("%w: dialogue for unknown inspection type %q", ErrInvalidCatalog, d.Type)
		}
	}
	return nil
}

func checkRule(kind, id string, a model.Applicability, seen map[string]bool) error {
	if id == "" {
		return fmt.Errorf("%w: %s without id", ErrInvalidCatalog, kind)
	}
	if seen[id] {
		return fmt.Errorf("%w: duplicate %s %q", ErrInvalidCatalog, kind, id)
	}
	seen[id] = true
	if len(a.Profiles) == 0 || len(a.InspectionTypes) == 0 {
		return fmt.Errorf("%w: %s %q has no applicability tags", ErrInvalidCatalog, kind, id)
	}
	for _, p := range a.Profiles {
		if !p.IsValid() {
			return fmt.Errorf("%w: %s %q tagged with unknown profile %q", ErrInvalidCatalog, kind, id, p)
		}
	}
	for _, t := range a.InspectionTypes {
		if !t.IsValid() {
			return fmt.Errorf("%w: %s %q tagged with unknown inspection type %q", ErrInvalidCatalog, kind, id, t)
		}
	}
	return nil
}
