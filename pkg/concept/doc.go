// Package concept provides a system-agnostic intermediate representation of clinical
// concepts (problems, medications, allergies) that rendering collaborators convert to
// CDA documents or FHIR resources.
//
// Instances are built in a single step, either from Go values or from a Fields mapping.
// Quantity content is coerced to a float64 at construction time; invalid input aborts
// construction and is never replaced by a substitute value.
package concept
