package model

// InspectionType identifies the kind of labor inspection being simulated.
type InspectionType string

const (
	InspectionExtraordinary InspectionType = "extraordinaria"
	InspectionScheduled     InspectionType = "ordinaria"
	// InspectionRegistration is the REPSE registration verification visit. It
	// has no physical verification phase.
	InspectionRegistration InspectionType = "constatacion"
)

// IsValid reports whether t is a known inspection type.
func (t InspectionType) IsValid() bool {
	switch t {
	case InspectionExtraordinary, InspectionScheduled, InspectionRegistration:
		return true
	}
	return false
}

// ProfileType is the role the user plays during the inspection.
type ProfileType string

const (
	ProfileContractor  ProfileType = "contratista"
	ProfileBeneficiary ProfileType = "beneficiario"
)

func (p ProfileType) IsValid() bool {
	return p == ProfileContractor || p == ProfileBeneficiary
}

// Phase is a state of the simulator.
type Phase string

const (
	PhaseSelection     Phase = "selection"
	PhaseProfile       Phase = "profile"
	PhaseIntro         Phase = "intro"
	PhaseDocuments     Phase = "documents"
	PhaseInterrogation Phase = "interrogation"
	PhaseVerification  Phase = "verification"
	PhaseResults       Phase = "results"
	PhaseActionPlan    Phase = "action-plan"
)

// Dialogue-only phases used to pick the inspector's closing lines.
const (
	PhaseCloseOK          Phase = "close_ok"
	PhaseCloseInfractions Phase = "close_infractions"
)

// InspectionTypeConfig describes one inspection type. Everything except ID
// and Phases is display metadata.
type InspectionTypeConfig struct {
	ID              InspectionType `json:"id" yaml:"id"`
	Name            string         `json:"name" yaml:"name"`
	Subtitle        string         `json:"subtitle" yaml:"subtitle"`
	Description     string         `json:"description" yaml:"description"`
	Difficulty      int            `json:"difficulty" yaml:"difficulty"`
	DurationMinutes int            `json:"duration" yaml:"duration"`
	Color           string         `json:"color" yaml:"color"`
	Phases          []Phase        `json:"phases" yaml:"phases"`
	// PreparationMinutes is the notice the company receives before the visit.
	PreparationMinutes int `json:"preparationTime" yaml:"preparationTime"`
}

// HasPhase reports whether the inspection type goes through phase p.
func (c *InspectionTypeConfig) HasPhase(p Phase) bool {
	for _, ph := range c.Phases {
		if ph == p {
			return true
		}
	}
	return false
}

// Dialogue is a scripted sequence of inspector lines for one phase of one
// inspection type.
type Dialogue struct {
	Phase    Phase          `json:"phase" yaml:"phase"`
	Type     InspectionType `json:"type" yaml:"type"`
	Messages []string       `json:"messages" yaml:"messages"`
}
