package concept

// DataType carries the raw record a value type was decoded from. It is never rendered.
type DataType struct {
	source Fields
}

// Source returns the mapping the value was decoded from, or nil when built directly
func (d *DataType) Source() Fields { return d.source }

// Quantity represents a measured value with an optional unit or scale label
type Quantity struct {
	content *float64
	Scale   *string `mapstructure:"scale"`
}

// NewQuantity coerces content and returns a Quantity holding it
func NewQuantity(content RawContent, scale *string) (*Quantity, error) {
	q := &Quantity{Scale: scale}
	if err := q.SetContent(content); err != nil {
		return nil, err
	}
	return q, nil
}

// MustQuantity is NewQuantity for content known to be valid. It panics otherwise.
func MustQuantity(content RawContent, scale *string) *Quantity {
	q, err := NewQuantity(content, scale)
	if err != nil {
		panic(err)
	}
	return q
}

// Content returns the coerced value and whether one is set
func (q *Quantity) Content() (float64, bool) {
	if q.content == nil {
		return 0, false
	}
	return *q.content, true
}

// SetContent reassigns content under the same coercion rule as construction.
// On failure the previous content is kept.
func (q *Quantity) SetContent(raw RawContent) error {
	v, err := CoerceQuantityContent(raw)
	if err != nil {
		return err
	}
	q.content = v
	return nil
}

// Range is a low/high pair of quantities. low <= high is not enforced.
type Range struct {
	DataType `mapstructure:"-"`
	Low      *Quantity `mapstructure:"low"`
	High     *Quantity `mapstructure:"high"`
}

// TimeInterval describes a repeating period, an optional phase, and whether the
// interval is set by institution policy rather than a fixed value
type TimeInterval struct {
	DataType             `mapstructure:"-"`
	Period               *Quantity `mapstructure:"period"`
	Phase                *Range    `mapstructure:"phase"`
	InstitutionSpecified *bool     `mapstructure:"institution_specified"`
}
