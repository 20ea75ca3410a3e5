package model

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Applicability tags a rule row with the profiles and inspection types it
// applies to.
type Applicability struct {
	Profiles        []ProfileType    `json:"forProfiles" yaml:"forProfiles"`
	InspectionTypes []InspectionType `json:"forInspectionTypes" yaml:"forInspectionTypes"`
}

// Applies reports whether both the profile and the inspection type are tagged.
func (a Applicability) Applies(p ProfileType, t InspectionType) bool {
	return containsProfile(a.Profiles, p) && containsInspection(a.InspectionTypes, t)
}

func containsProfile(list []ProfileType, p ProfileType) bool {
	for _, v := range list {
		if v == p {
			return true
		}
	}
	return false
}

func containsInspection(list []InspectionType, t InspectionType) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

// UnitRange is a fine range expressed in legal units (UMAs).
type UnitRange struct {
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
	Unit string  `json:"unit" yaml:"unit"`
	// PerWorker marks fines applied once per affected worker. Display only.
	PerWorker bool `json:"perWorker,omitempty" yaml:"perWorker,omitempty"`
}

// DocumentRule is a document the inspector may request.
type DocumentRule struct {
	ID            string    `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	Category      string    `json:"category" yaml:"category"`
	Obligatory    bool      `json:"obligatory" yaml:"obligatory"`
	LegalBasis    string    `json:"legalBasis" yaml:"legalBasis"`
	Verifications []string  `json:"verifications" yaml:"verifications"`
	Points        int       `json:"points" yaml:"points"`
	FineIfMissing UnitRange `json:"fineIfMissing" yaml:"fineIfMissing"`
	// RegistrationProof marks the REPSE registration notice. Missing it puts
	// the registration itself at risk.
	RegistrationProof bool `json:"registrationProof,omitempty" yaml:"registrationProof,omitempty"`
	Applicability     `yaml:",inline"`
}

// Correctness is the tri-state grading of a quiz option. Partial credit is a
// distinct outcome, never folded into either boolean.
type Correctness int

const (
	Incorrect Correctness = iota
	Correct
	PartiallyCorrect
)

const partialLiteral = "partial"

func (c Correctness) String() string {
	switch c {
	case Correct:
		return "true"
	case PartiallyCorrect:
		return partialLiteral
	default:
		return "false"
	}
}

// MarshalJSON encodes Correct/Incorrect as booleans and PartiallyCorrect as
// the string "partial".
func (c Correctness) MarshalJSON() ([]byte, error) {
	if c == PartiallyCorrect {
		return []byte(`"partial"`), nil
	}
	return []byte(c.String()), nil
}

func (c *Correctness) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("true")):
		*c = Correct
	case bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("null")):
		*c = Incorrect
	default:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("correctness: %w", err)
		}
		return c.parse(s)
	}
	return nil
}

func (c Correctness) MarshalYAML() (interface{}, error) {
	switch c {
	case Correct:
		return true, nil
	case PartiallyCorrect:
		return partialLiteral, nil
	default:
		return false, nil
	}
}

func (c *Correctness) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		if b {
			*c = Correct
		} else {
			*c = Incorrect
		}
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("correctness: %w", err)
	}
	return c.parse(s)
}

func (c *Correctness) parse(s string) error {
	switch s {
	case partialLiteral:
		*c = PartiallyCorrect
	case "true":
		*c = Correct
	case "false", "":
		*c = Incorrect
	default:
		return fmt.Errorf("correctness: unknown value %q", s)
	}
	return nil
}

// QuestionOption is one answer to a QuestionRule. Points may be negative.
type QuestionOption struct {
	ID                string      `json:"id" yaml:"id"`
	Text              string      `json:"text" yaml:"text"`
	Correct           Correctness `json:"correct" yaml:"correct"`
	Points            int         `json:"points" yaml:"points"`
	Observation       string      `json:"observation,omitempty" yaml:"observation,omitempty"`
	IsInfraction      bool        `json:"isInfraction,omitempty" yaml:"isInfraction,omitempty"`
	IsGraveInfraction bool        `json:"isGraveInfraction,omitempty" yaml:"isGraveInfraction,omitempty"`
	IsCrime           bool        `json:"isCrime,omitempty" yaml:"isCrime,omitempty"`
}

// QuestionRule is one question the inspector asks during interrogation.
type QuestionRule struct {
	ID         string           `json:"id" yaml:"id"`
	Category   string           `json:"category" yaml:"category"`
	Obligatory bool             `json:"obligatory" yaml:"obligatory"`
	Text       string           `json:"text" yaml:"text"`
	Options    []QuestionOption `json:"options" yaml:"options"`
	LegalBasis string           `json:"legalBasis" yaml:"legalBasis"`
	// RegistrationStatus marks the question about the REPSE registration
	// itself; a grave answer puts the registration at risk.
	RegistrationStatus bool `json:"registrationStatus,omitempty" yaml:"registrationStatus,omitempty"`
	Applicability      `yaml:",inline"`
}

// Option returns the option with the given id.
func (q *QuestionRule) Option(id string) (QuestionOption, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return QuestionOption{}, false
}

// VerificationStatus is the outcome of one physical verification point.
type VerificationStatus string

const (
	StatusComplies      VerificationStatus = "complies"
	StatusNotComplies   VerificationStatus = "notComplies"
	StatusNotApplicable VerificationStatus = "notApplicable"
)

func (s VerificationStatus) IsValid() bool {
	switch s {
	case StatusComplies, StatusNotComplies, StatusNotApplicable:
		return true
	}
	return false
}

// OutcomePoints holds the point delta for each verification outcome.
type OutcomePoints struct {
	Complies      int `json:"complies" yaml:"complies"`
	NotComplies   int `json:"notComplies" yaml:"notComplies"`
	NotApplicable int `json:"notApplicable" yaml:"notApplicable"`
}

// For returns the delta for status s.
func (p OutcomePoints) For(s VerificationStatus) int {
	switch s {
	case StatusComplies:
		return p.Complies
	case StatusNotComplies:
		return p.NotComplies
	default:
		return p.NotApplicable
	}
}

// VerificationPointRule is one aspect the inspector checks on site.
type VerificationPointRule struct {
	ID                       string        `json:"id" yaml:"id"`
	Title                    string        `json:"title" yaml:"title"`
	Question                 string        `json:"question" yaml:"question"`
	Points                   OutcomePoints `json:"points" yaml:"points"`
	ObservationIfNotComplies string        `json:"observationIfNotComplies" yaml:"observationIfNotComplies"`
	LegalBasis               string        `json:"legalBasis" yaml:"legalBasis"`
	IsInfraction             bool          `json:"isInfraction" yaml:"isInfraction"`
	IsGraveInfraction        bool          `json:"isGraveInfraction,omitempty" yaml:"isGraveInfraction,omitempty"`
	IsCrime                  bool          `json:"isCrime,omitempty" yaml:"isCrime,omitempty"`
	Applicability            `yaml:",inline"`
}
