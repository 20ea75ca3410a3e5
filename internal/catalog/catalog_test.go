package catalog

import (
	"errors"
	"testing"

	"repse-simulator/internal/model"
)

var (
	allProfiles = []model.ProfileType{model.ProfileContractor, model.ProfileBeneficiary}
	allTypes    = []model.InspectionType{model.InspectionExtraordinary, model.InspectionScheduled, model.InspectionRegistration}
)

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("built-in catalog invalid: %v", err)
	}
}

func TestRelevantSubsetsMatchTags(t *testing.T) {
	c := Default()
	for _, p := range allProfiles {
		for _, it := range allTypes {
			t.Run(string(p)+"/"+string(it), func(t *testing.T) {
				docs := c.RelevantDocuments(p, it)
				if len(docs) == 0 {
					t.Fatal("expected at least one relevant document")
				}
				want := 0
				for _, d := range c.Documents {
					if d.Applies(p, it) {
						want++
					}
				}
				if len(docs) != want {
					t.Fatalf("expected %d documents, got %d", want, len(docs))
				}
				for _, d := range docs {
					if !d.Applies(p, it) {
						t.Errorf("document %s not tagged for %s/%s", d.ID, p, it)
					}
				}
				for _, q := range c.RelevantQuestions(p, it) {
					if !q.Applies(p, it) {
						t.Errorf("question %s not tagged for %s/%s", q.ID, p, it)
					}
				}
				for _, v := range c.RelevantVerificationPoints(p, it) {
					if !v.Applies(p, it) {
						t.Errorf("verification point %s not tagged for %s/%s", v.ID, p, it)
					}
				}
			})
		}
	}
}

func TestVerificationPointsGatedByPhase(t *testing.T) {
	c := Default()
	if got := c.RelevantVerificationPoints(model.ProfileContractor, model.InspectionRegistration); len(got) != 0 {
		t.Fatalf("registration visit has no verification phase, got %d points", len(got))
	}
	if got := c.RelevantVerificationPoints(model.ProfileContractor, model.InspectionExtraordinary); len(got) != 4 {
		t.Fatalf("expected 4 contractor points, got %d", len(got))
	}
	if got := c.RelevantVerificationPoints(model.ProfileBeneficiary, model.InspectionScheduled); len(got) != 5 {
		t.Fatalf("expected 5 beneficiary points, got %d", len(got))
	}
}

func TestRelevantCounts(t *testing.T) {
	c := Default()
	tests := []struct {
		profile  model.ProfileType
		it       model.InspectionType
		docs, qs int
	}{
		{model.ProfileContractor, model.InspectionExtraordinary, 10, 10},
		{model.ProfileContractor, model.InspectionRegistration, 5, 7},
		{model.ProfileBeneficiary, model.InspectionScheduled, 4, 5},
		{model.ProfileBeneficiary, model.InspectionRegistration, 3, 3},
	}
	for _, tt := range tests {
		if got := len(c.RelevantDocuments(tt.profile, tt.it)); got != tt.docs {
			t.Errorf("%s/%s documents = %d, want %d", tt.profile, tt.it, got, tt.docs)
		}
		if got := len(c.RelevantQuestions(tt.profile, tt.it)); got != tt.qs {
			t.Errorf("%s/%s questions = %d, want %d", tt.profile, tt.it, got, tt.qs)
		}
	}
}

func TestDialogue(t *testing.T) {
	c := Default()
	lines := c.Dialogue(model.PhaseIntro, model.InspectionRegistration)
	if len(lines) != 3 {
		t.Fatalf("expected 3 intro lines, got %d", len(lines))
	}
	if c.Dialogue(model.PhaseVerification, model.InspectionRegistration) != nil {
		t.Fatal("registration visit has no verification dialogue")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Catalog)
	}{
		{"duplicate document", func(c *Catalog) { c.Documents = append(c.Documents, c.Documents[0]) }},
		{"question without options", func(c *Catalog) { c.Questions[0].Options = nil }},
		{"duplicate option", func(c *Catalog) {
			c.Questions[1].Options = append(c.Questions[1].Options, c.Questions[1].Options[0])
		}},
		{"unknown profile tag", func(c *Catalog) {
			c.VerificationPoints[0].Applicability = model.Applicability{
				Profiles:        []model.ProfileType{"trabajador"},
				InspectionTypes: allTypes,
			}
		}},
		{"untagged rule", func(c *Catalog) { c.Documents[2].Applicability = model.Applicability{} }},
		{"no inspection types", func(c *Catalog) { c.InspectionTypes = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestFineAmount(t *testing.T) {
	got := FineAmount(model.UnitRange{Min: 2000, Max: 50000})
	if got.Min != 226280 || got.Max != 5657000 {
		t.Fatalf("unexpected grave band %+v", got)
	}
	if got := SeverityFine(false); got.Min != 28285 || got.Max != 565700 {
		t.Fatalf("unexpected standard band %+v", got)
	}
}
