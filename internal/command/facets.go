package command

// WhiteSpace is the whiteSpace facet enumeration.
type WhiteSpace string

const (
	Preserve WhiteSpace = "preserve"
	Replace  WhiteSpace = "replace"
	Collapse WhiteSpace = "collapse"
)

// IsValid reports whether w names a known whitespace policy.
func (w WhiteSpace) IsValid() bool {
	switch w {
	case Preserve, Replace, Collapse:
		return true
	}
	return false
}

// Facets is an open record of optional restriction facets on a simple
// type. Bounds are kept as lexical strings since their interpretation
// depends on the base type; the record is a pure value with no behavior
// beyond emptiness.
type Facets struct {
	MinInclusive   *string     `json:"minInclusive,omitempty" yaml:"minInclusive,omitempty"`
	MaxInclusive   *string     `json:"maxInclusive,omitempty" yaml:"maxInclusive,omitempty"`
	MinExclusive   *string     `json:"minExclusive,omitempty" yaml:"minExclusive,omitempty"`
	MaxExclusive   *string     `json:"maxExclusive,omitempty" yaml:"maxExclusive,omitempty"`
	Length         *int        `json:"length,omitempty" yaml:"length,omitempty"`
	MinLength      *int        `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength      *int        `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern        *string     `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Enumeration    []string    `json:"enumeration,omitempty" yaml:"enumeration,omitempty"`
	WhiteSpace     *WhiteSpace `json:"whiteSpace,omitempty" yaml:"whiteSpace,omitempty"`
	TotalDigits    *int        `json:"totalDigits,omitempty" yaml:"totalDigits,omitempty"`
	FractionDigits *int        `json:"fractionDigits,omitempty" yaml:"fractionDigits,omitempty"`
}

// IsEmpty reports whether no facet is set.
func (f *Facets) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.MinInclusive == nil && f.MaxInclusive == nil &&
		f.MinExclusive == nil && f.MaxExclusive == nil &&
		f.Length == nil && f.MinLength == nil && f.MaxLength == nil &&
		f.Pattern == nil && len(f.Enumeration) == 0 &&
		f.WhiteSpace == nil && f.TotalDigits == nil && f.FractionDigits == nil
}
