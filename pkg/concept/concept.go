package concept

// SNOMED CT identifiers used by the allergy type default
const (
	SystemSNOMEDCT     = "2.16.840.1.113883.6.96"
	SystemNameSNOMEDCT = "SNOMED CT"

	CodePropensityToAdverseReactions    = "420134006"
	DisplayPropensityToAdverseReactions = "Propensity to adverse reactions"
)

// Coded is implemented by Concept and every specialization embedding it
type Coded interface {
	BaseConcept() *Concept
}

// Concept is a system-agnostic identified clinical term
type Concept struct {
	Code           *string `mapstructure:"code"`
	CodeSystem     *string `mapstructure:"code_system"`
	CodeSystemName *string `mapstructure:"code_system_name"`
	DisplayName    *string `mapstructure:"display_name"`

	standard *Standard
}

// BaseConcept returns the identifying fields shared by all concepts
func (c *Concept) BaseConcept() *Concept { return c }

// Standard returns the standard the concept originated from or targets, if recorded
func (c *Concept) Standard() (Standard, bool) {
	if c.standard == nil {
		return "", false
	}
	return *c.standard, true
}

// SetStandard records provenance
func (c *Concept) SetStandard(s Standard) { c.standard = &s }

// ClearStandard removes recorded provenance
func (c *Concept) ClearStandard() { c.standard = nil }

// ProblemConcept holds problem/condition fields. Dates are stored as given.
type ProblemConcept struct {
	Concept       `mapstructure:",squash"`
	OnsetDate     *string `mapstructure:"onset_date"`
	AbatementDate *string `mapstructure:"abatement_date"`
	Status        *string `mapstructure:"status"`
	RecordedDate  *string `mapstructure:"recorded_date"`
}

// MedicationConcept holds medication fields
type MedicationConcept struct {
	Concept      `mapstructure:",squash"`
	Dosage       *Quantity      `mapstructure:"dosage"`
	Route        *Concept       `mapstructure:"route"`
	Frequency    *TimeInterval  `mapstructure:"frequency"`
	Duration     *Range         `mapstructure:"duration"`
	Precondition map[string]any `mapstructure:"precondition"`
}

// AllergyConcept holds allergy fields.
// Build it with NewAllergyConcept or DecodeAllergyConcept to get the allergy type default.
type AllergyConcept struct {
	Concept     `mapstructure:",squash"`
	AllergyType *Concept `mapstructure:"allergy_type"`
	Severity    *Concept `mapstructure:"severity"`
	Reaction    *Concept `mapstructure:"reaction"`
}

// NewAllergyConcept returns an AllergyConcept whose type is the SNOMED CT default
func NewAllergyConcept() *AllergyConcept {
	return &AllergyConcept{AllergyType: DefaultAllergyType()}
}

// DefaultAllergyType returns a fresh "Propensity to adverse reactions" concept
func DefaultAllergyType() *Concept {
	return &Concept{
		Code:           Ptr(CodePropensityToAdverseReactions),
		CodeSystem:     Ptr(SystemSNOMEDCT),
		CodeSystemName: Ptr(SystemNameSNOMEDCT),
		DisplayName:    Ptr(DisplayPropensityToAdverseReactions),
	}
}

// Ptr returns a pointer to v, for populating optional fields
func Ptr[T any](v T) *T { return &v }
