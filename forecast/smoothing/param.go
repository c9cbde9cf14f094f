package smoothing

import "strconv"

// Param is a model parameter that is either fixed to a concrete value or
// left for Fit to estimate.
type Param struct {
	value float64
	set   bool
}

// Fixed returns a parameter pinned to v.
func Fixed(v float64) Param { return Param{value: v, set: true} }

// Auto returns an unset parameter.
func Auto() Param { return Param{} }

// Value returns the concrete value and whether there is one.
func (p Param) Value() (float64, bool) { return p.value, p.set }

func (p Param) IsSet() bool { return p.set }

func (p Param) String() string {
	if !p.set {
		return "auto"
	}
	return strconv.FormatFloat(p.value, 'g', -1, 64)
}
