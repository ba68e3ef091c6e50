package concept

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

// Fields maps snake_case field names to raw values
type Fields map[string]any

// ParseFields decodes a JSON object into Fields. Numbers become float64.
func ParseFields(data []byte) (Fields, error) {
	var f Fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fields: %w", err)
	}
	return f, nil
}

var (
	quantityType     = reflect.TypeOf(Quantity{})
	rangeType        = reflect.TypeOf(Range{})
	timeIntervalType = reflect.TypeOf(TimeInterval{})
)

type quantityFields struct {
	Content any     `mapstructure:"content"`
	Scale   *string `mapstructure:"scale"`
}

type rangeFields struct {
	Low  *Quantity `mapstructure:"low"`
	High *Quantity `mapstructure:"high"`
}

type timeIntervalFields struct {
	Period               *Quantity `mapstructure:"period"`
	Phase                *Range    `mapstructure:"phase"`
	InstitutionSpecified *bool     `mapstructure:"institution_specified"`
}

// decoder runs mapstructure with a hook that builds value types through their
// constructors. mapstructure flattens hook errors to strings, so the first coercion
// failure is kept aside and returned as is.
type decoder struct {
	coerceErr error
}

func (d *decoder) decode(fields Fields, out any) error {
	md, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(d.hook),
		Result:     out,
	})
	if err != nil {
		return err
	}
	err = md.Decode(map[string]any(fields))
	if d.coerceErr != nil {
		return d.coerceErr
	}
	return err
}

func (d *decoder) hook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	fields, ok := asFields(data)
	if !ok {
		return data, nil
	}
	switch to {
	case quantityType:
		q, err := d.quantity(fields)
		if err != nil {
			return nil, err
		}
		return *q, nil
	case rangeType:
		r, err := d.rangeOf(fields)
		if err != nil {
			return nil, err
		}
		return *r, nil
	case timeIntervalType:
		ti, err := d.timeInterval(fields)
		if err != nil {
			return nil, err
		}
		return *ti, nil
	}
	return data, nil
}

func (d *decoder) quantity(fields Fields) (*Quantity, error) {
	var raw quantityFields
	if err := d.decode(fields, &raw); err != nil {
		return nil, err
	}
	q, err := NewQuantity(RawFrom(raw.Content), raw.Scale)
	if err != nil {
		if d.coerceErr == nil {
			d.coerceErr = err
		}
		return nil, err
	}
	return q, nil
}

func (d *decoder) rangeOf(fields Fields) (*Range, error) {
	var raw rangeFields
	if err := d.decode(fields, &raw); err != nil {
		return nil, err
	}
	return &Range{DataType: DataType{source: fields}, Low: raw.Low, High: raw.High}, nil
}

func (d *decoder) timeInterval(fields Fields) (*TimeInterval, error) {
	var raw timeIntervalFields
	if err := d.decode(fields, &raw); err != nil {
		return nil, err
	}
	return &TimeInterval{
		DataType:             DataType{source: fields},
		Period:               raw.Period,
		Phase:                raw.Phase,
		InstitutionSpecified: raw.InstitutionSpecified,
	}, nil
}

func asFields(data any) (Fields, bool) {
	switch m := data.(type) {
	case Fields:
		return m, true
	case map[string]any:
		return Fields(m), true
	}
	return nil, false
}

// DecodeQuantity builds a Quantity from content and scale fields
func DecodeQuantity(fields Fields) (*Quantity, error) {
	q, err := (&decoder{}).quantity(fields)
	if err != nil {
		return nil, wrapDecode("quantity", err)
	}
	return q, nil
}

// DecodeRange builds a Range from low and high fields
func DecodeRange(fields Fields) (*Range, error) {
	r, err := (&decoder{}).rangeOf(fields)
	if err != nil {
		return nil, wrapDecode("range", err)
	}
	return r, nil
}

// DecodeTimeInterval builds a TimeInterval from period, phase and institution_specified fields
func DecodeTimeInterval(fields Fields) (*TimeInterval, error) {
	ti, err := (&decoder{}).timeInterval(fields)
	if err != nil {
		return nil, wrapDecode("time interval", err)
	}
	return ti, nil
}

// DecodeConcept builds a Concept from its identifying fields
func DecodeConcept(fields Fields) (*Concept, error) {
	var c Concept
	if err := (&decoder{}).decode(fields, &c); err != nil {
		return nil, wrapDecode("concept", err)
	}
	return &c, nil
}

// DecodeProblemConcept builds a ProblemConcept
func DecodeProblemConcept(fields Fields) (*ProblemConcept, error) {
	var p ProblemConcept
	if err := (&decoder{}).decode(fields, &p); err != nil {
		return nil, wrapDecode("problem concept", err)
	}
	return &p, nil
}

// DecodeMedicationConcept builds a MedicationConcept, coercing every nested quantity
func DecodeMedicationConcept(fields Fields) (*MedicationConcept, error) {
	var m MedicationConcept
	if err := (&decoder{}).decode(fields, &m); err != nil {
		return nil, wrapDecode("medication concept", err)
	}
	return &m, nil
}

// DecodeAllergyConcept builds an AllergyConcept. A missing allergy_type key takes the
// SNOMED CT default; an explicit nil leaves it unset.
func DecodeAllergyConcept(fields Fields) (*AllergyConcept, error) {
	var a AllergyConcept
	if err := (&decoder{}).decode(fields, &a); err != nil {
		return nil, wrapDecode("allergy concept", err)
	}
	if _, ok := fields["allergy_type"]; !ok {
		a.AllergyType = DefaultAllergyType()
	}
	return &a, nil
}

// wrapDecode leaves coercion failures untouched so callers see the exact payload
func wrapDecode(what string, err error) error {
	var ce *CoercionError
	if errors.As(err, &ce) {
		return err
	}
	return fmt.Errorf("failed to decode %s: %w", what, err)
}
