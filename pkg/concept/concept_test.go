package concept

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAllergyConceptDefaultType(t *testing.T) {
	a := NewAllergyConcept()

	require.NotNil(t, a.AllergyType)
	assert.Equal(t, "420134006", *a.AllergyType.Code)
	assert.Equal(t, "2.16.840.1.113883.6.96", *a.AllergyType.CodeSystem)
	assert.Equal(t, "SNOMED CT", *a.AllergyType.CodeSystemName)
	assert.Equal(t, "Propensity to adverse reactions", *a.AllergyType.DisplayName)
	assert.Nil(t, a.Severity)
	assert.Nil(t, a.Reaction)
	assert.Nil(t, a.Code)
}

func TestDefaultAllergyTypeIsNotShared(t *testing.T) {
	first := NewAllergyConcept()
	second := NewAllergyConcept()

	*first.AllergyType.DisplayName = "changed"
	first.AllergyType.Code = Ptr("other")

	assert.Equal(t, "Propensity to adverse reactions", *second.AllergyType.DisplayName)
	assert.Equal(t, "420134006", *second.AllergyType.Code)
	assert.Equal(t, "420134006", *DefaultAllergyType().Code)
}

func TestProblemConceptPartialFields(t *testing.T) {
	p := ProblemConcept{
		Concept:       Concept{Code: Ptr("38341003"), DisplayName: Ptr("Hypertension")},
		OnsetDate:     Ptr("2024-05-01"),
		AbatementDate: Ptr("2020-01-01"),
	}

	assert.Equal(t, "38341003", *p.Code)
	assert.Nil(t, p.CodeSystem)
	assert.Nil(t, p.CodeSystemName)
	assert.Nil(t, p.Status)
	assert.Nil(t, p.RecordedDate)
	assert.Equal(t, "2020-01-01", *p.AbatementDate)
}

func TestMedicationConceptComposition(t *testing.T) {
	m := MedicationConcept{
		Concept: Concept{Code: Ptr("314076"), DisplayName: Ptr("lisinopril 10 MG Oral Tablet")},
		Dosage:  MustQuantity(Number(10), Ptr("mg")),
		Route:   &Concept{Code: Ptr("26643006"), DisplayName: Ptr("Oral route")},
	}

	assert.Equal(t, "Oral route", *m.Route.DisplayName)
	assert.Nil(t, m.Frequency)
	assert.Nil(t, m.Duration)
	assert.Nil(t, m.Precondition)
}

func TestCodedPolymorphism(t *testing.T) {
	terms := []Coded{
		&Concept{Code: Ptr("a")},
		&ProblemConcept{Concept: Concept{Code: Ptr("b")}},
		&MedicationConcept{Concept: Concept{Code: Ptr("c")}},
		&AllergyConcept{Concept: Concept{Code: Ptr("d")}},
	}

	var codes []string
	for _, term := range terms {
		codes = append(codes, *term.BaseConcept().Code)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, codes)
}

func TestConceptStandard(t *testing.T) {
	c := &ProblemConcept{}
	_, ok := c.Standard()
	assert.False(t, ok)

	c.SetStandard(StandardFHIR)
	s, ok := c.Standard()
	require.True(t, ok)
	assert.Equal(t, StandardFHIR, s)

	c.ClearStandard()
	_, ok = c.Standard()
	assert.False(t, ok)
}

func TestParseStandard(t *testing.T) {
	s, err := ParseStandard("cda")
	require.NoError(t, err)
	assert.Equal(t, StandardCDA, s)
	assert.Equal(t, "cda", s.String())

	s, err = ParseStandard("fhir")
	require.NoError(t, err)
	assert.Equal(t, StandardFHIR, s)

	_, err = ParseStandard("hl7v2")
	assert.True(t, errors.Is(err, ErrUnknownStandard))
}
