package scenario

import (
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Defaults are the values assumed for inputs the user left out.
type Defaults struct {
	AnnualRate      float64
	ClosingCostRate float64
	InsuranceRate   float64
	// LoanTermYears is used when no term is given; zero makes the term mandatory.
	LoanTermYears int
}

// Policy toggles the cross-field checks applied to every scenario.
type Policy struct {
	AllowDownpaymentAbovePrice bool
	RejectNegativeDownpayment  bool
}

// Options configure a Resolver.
type Options struct {
	Defaults Defaults
	Policy   Policy
}

// StandardOptions returns the stock defaults and the default policy.
func StandardOptions() Options {
	return Options{
		Defaults: Defaults{
			AnnualRate:      constants.DefaultAnnualRate,
			ClosingCostRate: constants.DefaultClosingCostRate,
			InsuranceRate:   constants.DefaultInsuranceRate,
			LoanTermYears:   constants.DefaultLoanTermYears,
		},
	}
}

// Resolution is the outcome of a successful Resolve.
type Resolution struct {
	Scenarios []Scenario
	// Notices explain each assumed or derived value, without duplicates.
	Notices []string
}

// Resolver produces scenarios from raw parameters.
type Resolver struct {
	logger *zap.Logger
	opts   Options
}

// NewResolver creates a resolver with the given options.
func NewResolver(logger *zap.Logger, opts Options) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{logger: logger, opts: opts}
}

type valueKind int

const (
	integerValue valueKind = iota
	rateValue
)

type fieldRule struct {
	field    Field
	kind     valueKind
	min      int64
	max      int64
	required bool
}

// resolutionOrder is the order in which fields are parsed and therefore the
// order in which their errors are reported.
var resolutionOrder = []fieldRule{
	{field: FieldPrice, kind: integerValue, min: 1, max: math.MaxInt64, required: true},
	{field: FieldTaxes, kind: integerValue, min: 0, max: math.MaxInt64, required: true},
	{field: FieldFunds, kind: integerValue, min: 0, max: math.MaxInt64, required: true},
	{field: FieldAPR, kind: rateValue},
	{field: FieldClosingCosts, kind: integerValue, min: 0, max: math.MaxInt64},
	{field: FieldInsurance, kind: integerValue, min: 0, max: math.MaxInt64},
	{field: FieldRenovations, kind: integerValue, min: 0, max: math.MaxInt64},
	{field: FieldDownpayment, kind: integerValue, min: 0, max: math.MaxInt64},
	{field: FieldYears, kind: integerValue, min: 1, max: constants.MaxLoanTermYears, required: true},
}

// Bounds on decimal exponents. Comparing a decimal rescales it to the other
// operand's exponent, so values outside these bounds are rejected first.
const (
	maxIntegerExponent = 18
	minRateExponent    = -30
)

var (
	minAmount = decimal.NewFromInt(math.MinInt64)
	maxAmount = decimal.NewFromInt(math.MaxInt64)
)

// value is one parsed entry on an axis; set is false when the field was absent.
type value struct {
	integer int64
	rate    float64
	set     bool
}

// Resolve parses, defaults, derives and validates raw parameters. Every
// field is an axis; the result is the cross-product of all axes with the
// first declared field varying slowest. Resolution is all-or-nothing.
func (r *Resolver) Resolve(raw *RawParameters) (*Resolution, error) {
	axes := make(map[Field][]value, len(Fields))
	for _, rule := range resolutionOrder {
		values, err := r.parseAxis(raw, rule)
		if err != nil {
			return nil, err
		}
		axes[rule.field] = values
	}

	resolution := &Resolution{}
	seen := make(map[string]bool)
	err := expand(axes, func(pick map[Field]value) error {
		s, notices, err := r.build(pick)
		if err != nil {
			return err
		}
		resolution.Scenarios = append(resolution.Scenarios, s)
		for _, notice := range notices {
			if seen[notice] {
				continue
			}
			seen[notice] = true
			resolution.Notices = append(resolution.Notices, notice)
			r.logger.Info(notice, zap.String("op", "scenario.Resolve"))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Debug(fmt.Sprintf("resolved %d scenarios", len(resolution.Scenarios)),
		zap.String("op", "scenario.Resolve"),
	)
	return resolution, nil
}

func (r *Resolver) parseAxis(raw *RawParameters, rule fieldRule) ([]value, error) {
	if !raw.Has(rule.field) {
		required := rule.required
		if rule.field == FieldYears && r.opts.Defaults.LoanTermYears > 0 {
			required = false
		}
		if required {
			return nil, missingInput(rule.field)
		}
		return []value{{}}, nil
	}

	var values []value
	for _, text := range raw.Values(rule.field) {
		var v value
		var err error
		switch rule.kind {
		case rateValue:
			v.rate, err = parseRate(rule.field, text)
		default:
			v.integer, err = parseInteger(rule.field, text, rule.min, rule.max)
		}
		if err != nil {
			return nil, err
		}
		v.set = true
		if !containsValue(values, v) {
			values = append(values, v)
		}
	}
	return values, nil
}

func containsValue(values []value, v value) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

// parseInteger accepts whole numbers only: no fractional digits and no
// trailing characters.
func parseInteger(field Field, text string, min, max int64) (int64, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, invalidFormat(field, text, "must be an integer")
	}
	if d.Exponent() < 0 {
		return 0, invalidFormat(field, text, "must be an integer without a fractional part")
	}
	if d.IsZero() {
		d = decimal.NewFromInt(0)
	}
	if d.Exponent() > maxIntegerExponent {
		if d.IsNegative() {
			return 0, invalidFormat(field, text, fmt.Sprintf("must be at least %d", min))
		}
		return 0, invalidFormat(field, text, fmt.Sprintf("must be at most %d", max))
	}
	if d.LessThan(decimal.NewFromInt(min)) {
		return 0, invalidFormat(field, text, fmt.Sprintf("must be at least %d", min))
	}
	if d.GreaterThan(decimal.NewFromInt(max)) {
		return 0, invalidFormat(field, text, fmt.Sprintf("must be at most %d", max))
	}
	return d.IntPart(), nil
}

// parseRate accepts a decimal fraction in [0, 1), e.g. 0.045 for 4.5%.
func parseRate(field Field, text string) (float64, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, invalidFormat(field, text, "must be a decimal fraction such as 0.045")
	}
	if d.IsZero() {
		return 0, nil
	}
	// Any nonzero value with a non-negative exponent is at least 1 in magnitude.
	if d.IsNegative() || d.Exponent() >= 0 {
		return 0, invalidFormat(field, text, "must be at least 0 and below 1")
	}
	if d.Exponent() < minRateExponent {
		return 0, invalidFormat(field, text, fmt.Sprintf("must have at most %d decimal places", -minRateExponent))
	}
	if d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return 0, invalidFormat(field, text, "must be at least 0 and below 1")
	}
	return d.InexactFloat64(), nil
}

// expand calls visit once per combination of axis values. Every axis holds
// at least one value.
func expand(axes map[Field][]value, visit func(map[Field]value) error) error {
	index := make([]int, len(Fields))
	for {
		pick := make(map[Field]value, len(Fields))
		for i, field := range Fields {
			pick[field] = axes[field][index[i]]
		}
		if err := visit(pick); err != nil {
			return err
		}

		i := len(Fields) - 1
		for ; i >= 0; i-- {
			index[i]++
			if index[i] < len(axes[Fields[i]]) {
				break
			}
			index[i] = 0
		}
		if i < 0 {
			return nil
		}
	}
}

// build resolves one combination into a Scenario.
func (r *Resolver) build(pick map[Field]value) (Scenario, []string, error) {
	defaults := r.opts.Defaults
	var notices []string

	s := Scenario{
		PurchasePrice:  pick[FieldPrice].integer,
		AnnualTaxes:    pick[FieldTaxes].integer,
		AvailableFunds: pick[FieldFunds].integer,
	}

	if v := pick[FieldAPR]; v.set {
		s.AnnualRate = v.rate
	} else {
		s.AnnualRate = defaults.AnnualRate
		s.Derived.AnnualRate = true
		notices = append(notices, fmt.Sprintf("No APR specified, assuming %s%%", percent(defaults.AnnualRate)))
	}

	var err error
	if v := pick[FieldClosingCosts]; v.set {
		s.ClosingCosts = v.integer
	} else {
		s.ClosingCosts, err = amount(FieldClosingCosts, share(defaults.ClosingCostRate, s.PurchasePrice))
		if err != nil {
			return Scenario{}, nil, err
		}
		s.Derived.ClosingCosts = true
		notices = append(notices, fmt.Sprintf("No closing costs specified, assuming %s%% of purchase price %d or %d",
			percent(defaults.ClosingCostRate), s.PurchasePrice, s.ClosingCosts))
	}

	if v := pick[FieldInsurance]; v.set {
		s.AnnualInsurance = v.integer
	} else {
		s.AnnualInsurance, err = amount(FieldInsurance, share(defaults.InsuranceRate, s.PurchasePrice))
		if err != nil {
			return Scenario{}, nil, err
		}
		s.Derived.AnnualInsurance = true
		notices = append(notices, fmt.Sprintf("No insurance specified, assuming %s%% of purchase price %d or %d per year",
			percent(defaults.InsuranceRate), s.PurchasePrice, s.AnnualInsurance))
	}

	if v := pick[FieldRenovations]; v.set {
		s.RenovationCosts = v.integer
	} else {
		s.Derived.RenovationCosts = true
		notices = append(notices, "Assuming no renovation costs")
	}

	if v := pick[FieldDownpayment]; v.set {
		s.Downpayment = v.integer
	} else {
		// May go negative; the policy decides whether that is acceptable.
		s.Downpayment, err = amount(FieldDownpayment, decimal.NewFromInt(s.AvailableFunds).
			Sub(decimal.NewFromInt(s.RenovationCosts)).
			Sub(decimal.NewFromInt(s.ClosingCosts)))
		if err != nil {
			return Scenario{}, nil, err
		}
		s.Derived.Downpayment = true
	}

	if v := pick[FieldYears]; v.set {
		s.LoanTermMonths = int(v.integer) * constants.MonthsPerYear
	} else {
		s.LoanTermMonths = defaults.LoanTermYears * constants.MonthsPerYear
		s.Derived.LoanTerm = true
		notices = append(notices, fmt.Sprintf("No loan term specified, assuming %d years", defaults.LoanTermYears))
	}

	if err := r.validate(s); err != nil {
		return Scenario{}, nil, err
	}
	return s, notices, nil
}

func (r *Resolver) validate(s Scenario) error {
	policy := r.opts.Policy
	if s.Downpayment > s.PurchasePrice && !policy.AllowDownpaymentAbovePrice {
		return invalidScenario(FieldDownpayment, fmt.Sprint(s.Downpayment),
			fmt.Sprintf("exceeds purchase price %d", s.PurchasePrice))
	}
	if s.Downpayment < 0 && policy.RejectNegativeDownpayment {
		return invalidScenario(FieldDownpayment, fmt.Sprint(s.Downpayment),
			fmt.Sprintf("is negative (funds %d - renovations %d - closing costs %d)",
				s.AvailableFunds, s.RenovationCosts, s.ClosingCosts))
	}
	principal := decimal.NewFromInt(s.PurchasePrice).Sub(decimal.NewFromInt(s.Downpayment))
	if !fitsAmount(principal) {
		return invalidScenario(FieldDownpayment, fmt.Sprint(s.Downpayment),
			fmt.Sprintf("leaves a principal of %s, which is out of range", principal))
	}
	return nil
}

// amount narrows a derived decimal value to int64.
func amount(field Field, d decimal.Decimal) (int64, error) {
	if !fitsAmount(d) {
		return 0, invalidScenario(field, d.String(), "is out of range")
	}
	return d.IntPart(), nil
}

func fitsAmount(d decimal.Decimal) bool {
	return !d.LessThan(minAmount) && !d.GreaterThan(maxAmount)
}

// share applies a rate to a price in decimal arithmetic and truncates toward zero.
func share(rate float64, price int64) decimal.Decimal {
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(price)).Truncate(0)
}

func percent(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).String()
}
