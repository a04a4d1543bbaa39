// Package occurs models minOccurs/maxOccurs cardinality values.
//
// On the wire an occurrence bound is either a JSON number or the literal
// string "unbounded". Decoding is deliberately permissive about the number
// itself (fractional and negative values are representable) so the validate
// package, not the JSON layer, owns the diagnostics for them.
package occurs

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Occurs is one occurrence bound.
type Occurs struct {
	unbounded bool
	value     float64
}

// Unbounded is the maxOccurs sentinel for "no upper bound".
var Unbounded = Occurs{unbounded: true}

// FromInt returns a numeric bound.
func FromInt(n int) Occurs {
	return Occurs{value: float64(n)}
}

// IsUnbounded reports whether o is the unbounded sentinel.
func (o Occurs) IsUnbounded() bool {
	return o.unbounded
}

// Value returns the numeric value as decoded; meaningless when unbounded.
func (o Occurs) Value() float64 {
	return o.value
}

// Int returns the bound as an int. ok is false when the bound is unbounded
// or not an integer.
func (o Occurs) Int() (n int, ok bool) {
	if o.unbounded {
		return 0, false
	}
	if o.value != math.Trunc(o.value) || math.IsNaN(o.value) || math.IsInf(o.value, 0) {
		return 0, false
	}
	return int(o.value), true
}

// Equal reports whether two bounds are the same value.
func (o Occurs) Equal(other Occurs) bool {
	if o.unbounded || other.unbounded {
		return o.unbounded == other.unbounded
	}
	return o.value == other.value
}

func (o Occurs) String() string {
	if o.unbounded {
		return "unbounded"
	}
	if n, ok := o.Int(); ok {
		return strconv.Itoa(n)
	}
	return strconv.FormatFloat(o.value, 'g', -1, 64)
}

// MarshalJSON encodes the bound as a number, or as "unbounded".
func (o Occurs) MarshalJSON() ([]byte, error) {
	if o.unbounded {
		return json.Marshal("unbounded")
	}
	if n, ok := o.Int(); ok {
		return json.Marshal(n)
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON accepts a JSON number or the literal string "unbounded".
func (o *Occurs) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "unbounded" {
			return fmt.Errorf("invalid occurrence bound %q", s)
		}
		*o = Unbounded
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid occurrence bound %s", data)
	}
	*o = Occurs{value: f}
	return nil
}

// MarshalYAML mirrors the JSON form for fixture files.
func (o Occurs) MarshalYAML() (any, error) {
	if o.unbounded {
		return "unbounded", nil
	}
	if n, ok := o.Int(); ok {
		return n, nil
	}
	return o.value, nil
}

// UnmarshalYAML accepts a number or the literal string "unbounded".
func (o *Occurs) UnmarshalYAML(value *yaml.Node) error {
	var f float64
	if err := value.Decode(&f); err == nil {
		*o = Occurs{value: f}
		return nil
	}
	var s string
	if err := value.Decode(&s); err == nil && s == "unbounded" {
		*o = Unbounded
		return nil
	}
	return fmt.Errorf("invalid occurrence bound %q", value.Value)
}
