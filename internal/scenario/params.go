package scenario

// Field names one user-supplied input. The names match the long CLI flags.
type Field string

// Input fields.
const (
	FieldYears        Field = "years"
	FieldAPR          Field = "apr"
	FieldTaxes        Field = "taxes"
	FieldPrice        Field = "price"
	FieldFunds        Field = "funds"
	FieldClosingCosts Field = "closing-costs"
	FieldInsurance    Field = "insurance"
	FieldDownpayment  Field = "downpayment"
	FieldRenovations  Field = "renovations"
)

// Fields lists every input in declaration order. When several fields carry
// multiple values the cross-product varies the first field slowest.
var Fields = []Field{
	FieldYears,
	FieldAPR,
	FieldTaxes,
	FieldPrice,
	FieldFunds,
	FieldClosingCosts,
	FieldInsurance,
	FieldDownpayment,
	FieldRenovations,
}

// RawParameters holds the unparsed textual values supplied for each field.
// A field may have no values, one value, or several.
type RawParameters struct {
	values map[Field][]string
}

// NewRawParameters returns an empty parameter set.
func NewRawParameters() *RawParameters {
	return &RawParameters{values: make(map[Field][]string)}
}

// Add appends values to a field and returns the receiver for chaining.
func (p *RawParameters) Add(field Field, values ...string) *RawParameters {
	if len(values) == 0 {
		return p
	}
	p.values[field] = append(p.values[field], values...)
	return p
}

// Values returns a copy of the values supplied for a field.
func (p *RawParameters) Values(field Field) []string {
	if p == nil || len(p.values[field]) == 0 {
		return nil
	}
	out := make([]string, len(p.values[field]))
	copy(out, p.values[field])
	return out
}

// Has reports whether any value was supplied for a field.
func (p *RawParameters) Has(field Field) bool {
	return p != nil && len(p.values[field]) > 0
}
